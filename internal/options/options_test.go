package options

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n"} {
		b, err := Parse("filter", raw)
		require.NoError(t, err)
		assert.Nil(t, b)
	}
}

func TestParseObject(t *testing.T) {
	b, err := Parse("filter", `{"status": "active", "age": 42, "tags": ["a"]}`)
	require.NoError(t, err)

	assert.Equal(t, "active", b["status"])
	assert.Equal(t, json.Number("42"), b["age"])
	assert.Len(t, b, 3)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		notObject bool
	}{
		{name: "malformed", raw: `{"status": `},
		{name: "single quotes", raw: `{'a': 1}`},
		{name: "array", raw: `[1, 2]`, notObject: true},
		{name: "scalar", raw: `"x"`, notObject: true},
		{name: "null", raw: `null`, notObject: true},
		{name: "trailing data", raw: `{"a": 1} {"b": 2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("column_details", tt.raw)
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, "column_details", pe.Flag)
			assert.Contains(t, err.Error(), "invalid JSON for --column_details")
			assert.Equal(t, tt.notObject, errors.Is(err, ErrNotObject))
		})
	}
}

func TestBagString(t *testing.T) {
	var nilBag Bag
	assert.Equal(t, "null", nilBag.String())

	b, err := Parse("filter", `{"z": 1, "a": "<b>", "m": true}`)
	require.NoError(t, err)
	assert.Equal(t, `{"a":"<b>","m":true,"z":1}`, b.String())
}

func TestBagColumn(t *testing.T) {
	b, err := Parse("column_details", `{"name": "c", "type": " TEXT "}`)
	require.NoError(t, err)

	col, err := b.Column()
	require.NoError(t, err)
	assert.Equal(t, Column{Name: "c", Type: "TEXT"}, col)
}

func TestBagColumnInvalid(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr []string
	}{
		{name: "missing bag", raw: "", wantErr: []string{"column details are required"}},
		{name: "missing both", raw: `{}`, wantErr: []string{`"name"`, `"type"`}},
		{name: "empty name", raw: `{"name": "", "type": "TEXT"}`, wantErr: []string{`"name"`}},
		{name: "numeric type", raw: `{"name": "c", "type": 5}`, wantErr: []string{`"type"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Parse("column_details", tt.raw)
			require.NoError(t, err)

			_, err = b.Column()
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
