// Package output renders command results for the terminal. Messages are
// always human text; profile listings can also be emitted as JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/jfoltran/schemapilot/internal/profile"
)

// Format is the rendering used for structured results.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a flag value to a Format. Empty means text.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s; use 'text', 'json', or 'yaml'", name)
	}
}

// Entry is a named profile as shown by list and show.
type Entry struct {
	Name    string          `json:"name" yaml:"name"`
	Profile profile.Profile `json:"profile" yaml:"profile"`
	DSN     string          `json:"dsn,omitempty" yaml:"dsn,omitempty"`
}

// Printer writes messages and results to one writer.
type Printer struct {
	w      io.Writer
	format Format
	st     styles
}

// New creates a Printer for w. Styling follows w's terminal capabilities.
func New(w io.Writer, format Format) *Printer {
	if format == "" {
		format = FormatText
	}
	return &Printer{
		w:      w,
		format: format,
		st:     newStyles(lipgloss.NewRenderer(w)),
	}
}

// Format returns the structured output format.
func (p *Printer) Format() Format {
	return p.format
}

func (p *Printer) line(style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(p.w, style.Render(fmt.Sprintf(format, args...)))
}

// Success prints a confirmation message.
func (p *Printer) Success(format string, args ...any) {
	p.line(p.st.success, format, args...)
}

// Info prints a progress or informational message.
func (p *Printer) Info(format string, args ...any) {
	p.line(p.st.info, format, args...)
}

// Warn prints a declined-operation message. It is not an error.
func (p *Printer) Warn(format string, args ...any) {
	p.line(p.st.warning, format, args...)
}

// Placeholder prints a line standing in for output that needs a live database.
func (p *Printer) Placeholder(format string, args ...any) {
	p.line(p.st.muted, format, args...)
}

// SQL prints a suggested statement.
func (p *Printer) SQL(stmt string) {
	fmt.Fprintf(p.w, "Suggested SQL: %s\n", p.st.sql.Render(stmt))
}

// Profiles prints the stored profiles, passwords redacted.
func (p *Printer) Profiles(entries []Entry) error {
	for i := range entries {
		entries[i].Profile = entries[i].Profile.Redacted()
	}

	switch p.format {
	case FormatJSON:
		if entries == nil {
			entries = []Entry{}
		}
		return p.json(entries)
	case FormatYAML:
		if entries == nil {
			entries = []Entry{}
		}
		return p.yaml(entries)
	}

	if len(entries) == 0 {
		p.Placeholder("No profiles stored.")
		return nil
	}
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Name))
	}
	for _, e := range entries {
		fmt.Fprintf(p.w, "%s  %s\n",
			p.st.value.Render(fmt.Sprintf("%-*s", width, e.Name)),
			p.st.label.Render(fmt.Sprintf("%s %s:%d/%s", e.Profile.Type, e.Profile.Host, e.Profile.Port, e.Profile.DBName)))
	}
	return nil
}

// Profile prints one profile in detail, password redacted.
func (p *Printer) Profile(e Entry) error {
	e.Profile = e.Profile.Redacted()

	switch p.format {
	case FormatJSON:
		return p.json(e)
	case FormatYAML:
		return p.yaml(e)
	}

	fmt.Fprintln(p.w, p.st.title.Render("Profile "+e.Name))
	rows := [][2]string{
		{"Type", e.Profile.Type},
		{"Host", e.Profile.Host},
		{"Port", fmt.Sprintf("%d", e.Profile.Port)},
		{"User", e.Profile.User},
		{"Password", e.Profile.Password},
		{"Database", e.Profile.DBName},
	}
	if e.DSN != "" {
		rows = append(rows, [2]string{"DSN", e.DSN})
	}
	for _, r := range rows {
		fmt.Fprintf(p.w, "  %s %s\n", p.st.label.Render(fmt.Sprintf("%-9s", r[0]+":")), r[1])
	}
	return nil
}

func (p *Printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *Printer) yaml(v any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
