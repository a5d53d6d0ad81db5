// Package sqlgen builds migration statements for a profile's database type.
// Identifiers are left bare when the target dialect accepts them unquoted and
// are quoted otherwise; column types are checked against a small grammar and
// are never interpolated when they contain anything but words, precision and
// an array suffix.
package sqlgen

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

var (
	// ErrInvalidIdentifier is returned for an empty table or column name, or one containing NUL.
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrInvalidColumnType is returned when a column type is not a plain type literal.
	ErrInvalidColumnType = errors.New("invalid column type")
)

// Dialect captures the per-database rules used when rendering SQL.
type Dialect interface {
	Name() string
	QuoteIdentifier(name string) string
	Validate(stmt string) error
}

var (
	registry = make(map[string]func() Dialect)
	mu       sync.RWMutex
)

// Register associates one or more profile types with a dialect constructor.
func Register(fn func() Dialect, types ...string) {
	mu.Lock()
	defer mu.Unlock()
	for _, t := range types {
		registry[strings.ToLower(t)] = fn
	}
}

// ForType returns the dialect registered for a profile type, falling back to
// ANSI quoting for unknown types.
func ForType(profileType string) Dialect {
	mu.RLock()
	fn, ok := registry[strings.ToLower(strings.TrimSpace(profileType))]
	mu.RUnlock()
	if !ok {
		return NewANSI()
	}
	return fn()
}

var (
	plainIdentRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

	typeWord      = `[A-Za-z][A-Za-z0-9_]*`
	columnTypeRe  = regexp.MustCompile(`^` + typeWord + `(\s+` + typeWord + `)*` +
		`(\s*\(\s*\d+\s*(,\s*\d+\s*)?\))?` +
		`(\[\])?` +
		`(\s+` + typeWord + `)*$`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

func wordSet(words string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(words) {
		set[w] = true
	}
	return set
}

func isPlain(name string, reserved map[string]bool) bool {
	return plainIdentRe.MatchString(name) && !reserved[strings.ToLower(name)]
}

func checkIdentifier(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %s name is empty", ErrInvalidIdentifier, kind)
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: %s name contains a NUL byte", ErrInvalidIdentifier, kind)
	}
	return nil
}

// CheckColumnType reports whether typ is an acceptable column type literal.
func CheckColumnType(typ string) error {
	if !columnTypeRe.MatchString(strings.TrimSpace(typ)) {
		return fmt.Errorf("%w: %q", ErrInvalidColumnType, typ)
	}
	return nil
}

// QuoteTable quotes a possibly schema-qualified table name part by part.
func QuoteTable(d Dialect, table string) (string, error) {
	parts := strings.Split(table, ".")
	quoted := make([]string, 0, len(parts))
	for _, p := range parts {
		if err := checkIdentifier("table", p); err != nil {
			return "", err
		}
		quoted = append(quoted, d.QuoteIdentifier(p))
	}
	return strings.Join(quoted, "."), nil
}

// AddColumn renders ALTER TABLE ... ADD COLUMN for the dialect.
func AddColumn(d Dialect, table, column, columnType string) (string, error) {
	qt, err := QuoteTable(d, table)
	if err != nil {
		return "", err
	}
	if err := checkIdentifier("column", column); err != nil {
		return "", err
	}
	if err := CheckColumnType(columnType); err != nil {
		return "", err
	}

	typ := whitespaceRun.ReplaceAllString(strings.TrimSpace(columnType), " ")
	stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s;", qt, d.QuoteIdentifier(column), typ)
	if err := d.Validate(stmt); err != nil {
		return "", fmt.Errorf("%s rejected generated statement: %w", d.Name(), err)
	}
	return stmt, nil
}
