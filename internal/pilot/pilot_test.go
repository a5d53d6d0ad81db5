package pilot

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfoltran/schemapilot/internal/options"
	"github.com/jfoltran/schemapilot/internal/output"
	"github.com/jfoltran/schemapilot/internal/profile"
	"github.com/jfoltran/schemapilot/internal/sqlgen"
)

func newTestPilot(t *testing.T) (*Pilot, *bytes.Buffer) {
	t.Helper()
	store, err := profile.Load(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	var buf bytes.Buffer
	return New(store, output.New(&buf, output.FormatText), zerolog.Nop()), &buf
}

func seed(t *testing.T, p *Pilot, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, p.store.Add(name, profile.Profile{
			Type: "postgresql", Host: "localhost", Port: 5432, User: "u", Password: "p", DBName: name + "_db",
		}))
	}
}

func bag(t *testing.T, raw string) options.Bag {
	t.Helper()
	b, err := options.Parse("column_details", raw)
	require.NoError(t, err)
	return b
}

func TestAddProfile(t *testing.T) {
	p, buf := newTestPilot(t)
	ctx := context.Background()

	prof := profile.Profile{Type: "mysql", Host: "h", Port: 3306, User: "root", Password: "pw", DBName: "shop"}
	require.NoError(t, p.AddProfile(ctx, "shop", prof))
	assert.Equal(t, "Profile 'shop' added successfully.\n", buf.String())

	reloaded, err := profile.Load(p.Store().Path())
	require.NoError(t, err)
	got, ok := reloaded.Get("shop")
	require.True(t, ok)
	assert.Equal(t, prof, got)
}

func TestAddProfileCancelled(t *testing.T) {
	p, _ := newTestPilot(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.AddProfile(ctx, "x", profile.Profile{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, p.Store().Len())
}

func TestUse(t *testing.T) {
	p, buf := newTestPilot(t)
	seed(t, p, "a")
	sess := NewSession()

	assert.True(t, p.Use(context.Background(), sess, "a"))
	assert.Equal(t, "Using profile 'a'.\n", buf.String())

	name, ok := sess.Active()
	assert.True(t, ok)
	assert.Equal(t, "a", name)
}

func TestUseUnknownKeepsPreviousSelection(t *testing.T) {
	p, buf := newTestPilot(t)
	seed(t, p, "a")
	sess := NewSession()
	ctx := context.Background()

	require.True(t, p.Use(ctx, sess, "a"))
	buf.Reset()

	assert.False(t, p.Use(ctx, sess, "b"))
	assert.Equal(t, "Profile 'b' not found.\n", buf.String())

	name, ok := sess.Active()
	assert.True(t, ok)
	assert.Equal(t, "a", name)
}

func TestUseUnknownWithoutSelection(t *testing.T) {
	p, _ := newTestPilot(t)
	sess := NewSession()

	assert.False(t, p.Use(context.Background(), sess, "ghost"))
	_, ok := sess.Active()
	assert.False(t, ok)
}

func TestGatedOperationsDeclineWithoutSelection(t *testing.T) {
	p, buf := newTestPilot(t)
	seed(t, p, "a")
	ctx := context.Background()
	want := "No profile selected. Please use 'use' command first.\n"

	ops := map[string]func(*Session) error{
		"schema": func(s *Session) error { return p.ShowSchema(ctx, s) },
		"inspect": func(s *Session) error {
			return p.InspectData(ctx, s, InspectRequest{Table: "users", Limit: 5})
		},
		"migrate": func(s *Session) error {
			return p.SuggestMigration(ctx, s, MigrationRequest{
				Operation: OpAddColumn, Table: "t", Details: bag(t, `{"name":"c","type":"TEXT"}`),
			})
		},
		"migrate without details": func(s *Session) error {
			return p.SuggestMigration(ctx, s, MigrationRequest{Operation: OpAddColumn, Table: "t"})
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			buf.Reset()
			require.NoError(t, op(NewSession()))
			assert.Equal(t, want, buf.String())
		})
	}
}

func TestShowSchema(t *testing.T) {
	p, buf := newTestPilot(t)
	seed(t, p, "a")
	sess := NewSession()
	ctx := context.Background()
	p.Use(ctx, sess, "a")
	buf.Reset()

	require.NoError(t, p.ShowSchema(ctx, sess))
	assert.Equal(t, "Displaying schema for a_db (postgresql)...\n"+
		"Schema overview (placeholder): Tables, views, and column details.\n", buf.String())
}

func TestInspectData(t *testing.T) {
	p, buf := newTestPilot(t)
	seed(t, p, "a")
	sess := NewSession()
	ctx := context.Background()
	p.Use(ctx, sess, "a")

	tests := []struct {
		name string
		req  InspectRequest
		want string
	}{
		{
			name: "defaults",
			req:  InspectRequest{Table: "users", Limit: DefaultInspectLimit},
			want: "Inspecting data for table 'users' (limit: 10, filters: null)...\n" +
				"Sample data from 'users' (placeholder).\n",
		},
		{
			name: "zero limit is echoed",
			req:  InspectRequest{Table: "users", Limit: 0},
			want: "Inspecting data for table 'users' (limit: 0, filters: null)...\n" +
				"Sample data from 'users' (placeholder).\n",
		},
		{
			name: "negative limit is echoed",
			req:  InspectRequest{Table: "users", Limit: -5},
			want: "Inspecting data for table 'users' (limit: -5, filters: null)...\n" +
				"Sample data from 'users' (placeholder).\n",
		},
		{
			name: "limit and filters",
			req:  InspectRequest{Table: "orders", Limit: 3, Filters: bag(t, `{"status":"open","id":7}`)},
			want: "Inspecting data for table 'orders' (limit: 3, filters: {\"id\":7,\"status\":\"open\"})...\n" +
				"Sample data from 'orders' (placeholder).\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			require.NoError(t, p.InspectData(ctx, sess, tt.req))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestSuggestMigrationAddColumn(t *testing.T) {
	p, buf := newTestPilot(t)
	seed(t, p, "a")
	sess := NewSession()
	ctx := context.Background()
	p.Use(ctx, sess, "a")
	buf.Reset()

	err := p.SuggestMigration(ctx, sess, MigrationRequest{
		Operation: OpAddColumn,
		Table:     "t",
		Details:   bag(t, `{"name":"c","type":"TEXT"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "Suggesting migration for add_column on table 't'...\n"+
		"Suggested SQL: ALTER TABLE t ADD COLUMN c TEXT;\n", buf.String())
}

func TestSuggestMigrationOtherOperation(t *testing.T) {
	p, buf := newTestPilot(t)
	seed(t, p, "a")
	sess := NewSession()
	ctx := context.Background()
	p.Use(ctx, sess, "a")
	buf.Reset()

	err := p.SuggestMigration(ctx, sess, MigrationRequest{
		Operation: "drop_column",
		Table:     "t",
		Details:   bag(t, `{"name":"c","type":"TEXT"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "Suggesting migration for drop_column on table 't'...\n"+
		"Migration suggestion for 'drop_column' (placeholder).\n", buf.String())
	assert.NotContains(t, buf.String(), "ALTER TABLE")
}

func TestSuggestMigrationInvalidDetails(t *testing.T) {
	p, buf := newTestPilot(t)
	seed(t, p, "a")
	sess := NewSession()
	ctx := context.Background()
	p.Use(ctx, sess, "a")

	tests := []struct {
		name    string
		details options.Bag
		wantErr error
		wantMsg string
	}{
		{name: "missing", details: nil, wantMsg: "column details are required"},
		{name: "no type", details: bag(t, `{"name":"c"}`), wantMsg: `"type"`},
		{name: "injected type", details: bag(t, `{"name":"c","type":"TEXT; DROP TABLE t"}`), wantErr: sqlgen.ErrInvalidColumnType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			err := p.SuggestMigration(ctx, sess, MigrationRequest{Operation: OpAddColumn, Table: "t", Details: tt.details})
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			assert.NotContains(t, buf.String(), "Suggested SQL")
		})
	}
}

func TestSuggestMigrationUsesProfileDialect(t *testing.T) {
	p, buf := newTestPilot(t)
	require.NoError(t, p.store.Add("shop", profile.Profile{Type: "mysql", DBName: "shop"}))
	sess := NewSession()
	ctx := context.Background()
	p.Use(ctx, sess, "shop")
	buf.Reset()

	err := p.SuggestMigration(ctx, sess, MigrationRequest{
		Operation: OpAddColumn,
		Table:     "order",
		Details:   bag(t, `{"name":"key","type":"VARCHAR(32)"}`),
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Suggested SQL: ALTER TABLE `order` ADD COLUMN `key` VARCHAR(32);\n")
}
