// Package pilot implements the profile-gated operations. The active
// selection lives in a Session value created once per run and passed to
// every call; nothing about it is persisted.
package pilot

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jfoltran/schemapilot/internal/options"
	"github.com/jfoltran/schemapilot/internal/output"
	"github.com/jfoltran/schemapilot/internal/profile"
	"github.com/jfoltran/schemapilot/internal/sqlgen"
)

// DefaultInspectLimit is the default of the inspect --limit flag.
const DefaultInspectLimit = 10

// OpAddColumn is the only migration operation that produces SQL.
const OpAddColumn = "add_column"

const noSelectionMsg = "No profile selected. Please use 'use' command first."

// Session holds the profile selected by Use for the rest of the run.
type Session struct {
	name    string
	profile profile.Profile
	active  bool
}

// NewSession returns a session with no profile selected.
func NewSession() *Session {
	return &Session{}
}

// Active returns the selected profile name, if any.
func (s *Session) Active() (string, bool) {
	return s.name, s.active
}

// Profile returns the selected profile.
func (s *Session) Profile() (profile.Profile, bool) {
	return s.profile, s.active
}

// InspectRequest carries the arguments of the inspect operation.
type InspectRequest struct {
	Table   string
	Limit   int
	Filters options.Bag
}

// MigrationRequest carries the arguments of the migrate operation.
type MigrationRequest struct {
	Operation string
	Table     string
	Details   options.Bag
}

// Pilot runs operations against a profile store.
type Pilot struct {
	store  *profile.Store
	out    *output.Printer
	logger zerolog.Logger
}

// New creates a Pilot.
func New(store *profile.Store, out *output.Printer, logger zerolog.Logger) *Pilot {
	return &Pilot{
		store:  store,
		out:    out,
		logger: logger.With().Str("component", "pilot").Logger(),
	}
}

// Store returns the underlying profile store.
func (p *Pilot) Store() *profile.Store {
	return p.store
}

// Printer returns the printer used for command output.
func (p *Pilot) Printer() *output.Printer {
	return p.out
}

// AddProfile stores prof under name, replacing any existing entry.
func (p *Pilot) AddProfile(ctx context.Context, name string, prof profile.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, existed := p.store.Get(name)
	if err := p.store.Add(name, prof); err != nil {
		return err
	}
	p.logger.Debug().
		Str("profile", name).
		Str("type", prof.Type).
		Bool("replaced", existed).
		Str("path", p.store.Path()).
		Msg("profile saved")
	p.out.Success("Profile '%s' added successfully.", name)
	return nil
}

// Use selects name for the session. An unknown name is reported and leaves
// the current selection as it was.
func (p *Pilot) Use(_ context.Context, sess *Session, name string) bool {
	prof, ok := p.store.Get(name)
	if !ok {
		p.logger.Debug().Str("profile", name).Msg("profile not found")
		p.out.Warn("Profile '%s' not found.", name)
		return false
	}
	sess.name = name
	sess.profile = prof
	sess.active = true
	p.out.Success("Using profile '%s'.", name)
	return true
}

func (p *Pilot) selected(sess *Session) (profile.Profile, bool) {
	prof, ok := sess.Profile()
	if !ok {
		p.out.Warn(noSelectionMsg)
	}
	return prof, ok
}

// ShowSchema reports which database the schema would be read from.
func (p *Pilot) ShowSchema(ctx context.Context, sess *Session) error {
	prof, ok := p.selected(sess)
	if !ok {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	p.out.Info("Displaying schema for %s (%s)...", prof.DBName, prof.Type)
	p.out.Placeholder("Schema overview (placeholder): Tables, views, and column details.")
	return nil
}

// InspectData reports the table, limit and filters exactly as given.
func (p *Pilot) InspectData(ctx context.Context, sess *Session, req InspectRequest) error {
	if _, ok := p.selected(sess); !ok {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	p.out.Info("Inspecting data for table '%s' (limit: %d, filters: %s)...", req.Table, req.Limit, req.Filters)
	p.out.Placeholder("Sample data from '%s' (placeholder).", req.Table)
	return nil
}

// SuggestMigration prints a statement for add_column and a placeholder for
// every other operation.
func (p *Pilot) SuggestMigration(ctx context.Context, sess *Session, req MigrationRequest) error {
	prof, ok := p.selected(sess)
	if !ok {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	p.out.Info("Suggesting migration for %s on table '%s'...", req.Operation, req.Table)

	if req.Operation != OpAddColumn {
		p.out.Placeholder("Migration suggestion for '%s' (placeholder).", req.Operation)
		return nil
	}

	col, err := req.Details.Column()
	if err != nil {
		return err
	}
	d := sqlgen.ForType(prof.Type)
	stmt, err := sqlgen.AddColumn(d, req.Table, col.Name, col.Type)
	if err != nil {
		return err
	}
	p.logger.Debug().Str("dialect", d.Name()).Str("sql", stmt).Msg("generated migration")
	p.out.SQL(stmt)
	return nil
}
