// Package options parses the free-form JSON objects passed on the command
// line, such as inspect filters and migrate column details.
package options

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNotObject is returned when the JSON text is valid but is not an object.
var ErrNotObject = errors.New("expected a JSON object")

// ParseError reports which flag carried the malformed JSON.
type ParseError struct {
	Flag string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON for --%s: %v", e.Flag, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Bag is a decoded JSON object. A nil Bag means the flag was not given.
type Bag map[string]any

// Parse decodes raw as a JSON object. Empty input yields a nil Bag.
func Parse(flag, raw string) (Bag, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &ParseError{Flag: flag, Err: err}
	}
	if dec.More() {
		return nil, &ParseError{Flag: flag, Err: errors.New("unexpected data after JSON object")}
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &ParseError{Flag: flag, Err: ErrNotObject}
	}
	return Bag(obj), nil
}

// String renders the bag as compact JSON with sorted keys, or null when nil.
func (b Bag) String() string {
	if b == nil {
		return "null"
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(map[string]any(b)); err != nil {
		return fmt.Sprintf("%v", map[string]any(b))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// Str returns the string stored under key.
func (b Bag) Str(key string) (string, bool) {
	v, ok := b[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Column is the column description used by add_column.
type Column struct {
	Name string
	Type string
}

// Column extracts the required name and type entries.
func (b Bag) Column() (Column, error) {
	if b == nil {
		return Column{}, errors.New("column details are required: pass --column_details '{\"name\": ..., \"type\": ...}'")
	}

	var errs []error
	name, ok := b.Str("name")
	if !ok || strings.TrimSpace(name) == "" {
		errs = append(errs, errors.New(`column details: "name" must be a non-empty string`))
	}
	typ, ok := b.Str("type")
	if !ok || strings.TrimSpace(typ) == "" {
		errs = append(errs, errors.New(`column details: "type" must be a non-empty string`))
	}
	if err := errors.Join(errs...); err != nil {
		return Column{}, err
	}
	return Column{Name: name, Type: strings.TrimSpace(typ)}, nil
}
