package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jfoltran/schemapilot/internal/profile"
)

func sampleEntries() []Entry {
	return []Entry{
		{Name: "local", Profile: profile.Profile{Type: "sqlite", DBName: "app.db"}},
		{Name: "prod", Profile: profile.Profile{Type: "postgresql", Host: "db", Port: 5432, User: "app", Password: "secret", DBName: "orders"}},
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "TEXT": FormatText, "json": FormatJSON, " yaml ": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestMessagesArePlainOnNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, FormatText)

	p.Success("Profile '%s' added successfully.", "prod")
	p.Warn("No profile selected. Please use 'use' command first.")
	p.SQL("ALTER TABLE t ADD COLUMN c TEXT;")

	assert.Equal(t, "Profile 'prod' added successfully.\n"+
		"No profile selected. Please use 'use' command first.\n"+
		"Suggested SQL: ALTER TABLE t ADD COLUMN c TEXT;\n", buf.String())
}

func TestProfilesText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText).Profiles(sampleEntries()))

	out := buf.String()
	assert.Contains(t, out, "local  sqlite :0/app.db\n")
	assert.Contains(t, out, "prod   postgresql db:5432/orders\n")
	assert.NotContains(t, out, "secret")
}

func TestProfilesTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText).Profiles(nil))
	assert.Equal(t, "No profiles stored.\n", buf.String())
}

func TestProfilesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatJSON).Profiles(sampleEntries()))

	var got []Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "prod", got[1].Name)
	assert.Equal(t, "********", got[1].Profile.Password)
	assert.Equal(t, "orders", got[1].Profile.DBName)
}

func TestProfilesJSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatJSON).Profiles(nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestProfileYAML(t *testing.T) {
	var buf bytes.Buffer
	e := sampleEntries()[1]
	e.DSN = "postgres://app:xxxxx@db:5432/orders"
	require.NoError(t, New(&buf, FormatYAML).Profile(e))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "prod", got["name"])
	assert.Equal(t, e.DSN, got["dsn"])

	prof, ok := got["profile"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "orders", prof["db_name"])
	assert.Equal(t, 5432, prof["port"])
	assert.Equal(t, "********", prof["password"])
}

func TestProfileText(t *testing.T) {
	var buf bytes.Buffer
	e := sampleEntries()[1]
	e.DSN = "postgres://app:xxxxx@db:5432/orders"
	require.NoError(t, New(&buf, FormatText).Profile(e))

	out := buf.String()
	assert.Contains(t, out, "Profile prod\n")
	assert.Contains(t, out, "  Database: orders\n")
	assert.Contains(t, out, "  Password: ********\n")
	assert.Contains(t, out, "  DSN:      postgres://app:xxxxx@db:5432/orders\n")
	assert.NotContains(t, out, "secret")
}
