package output

import "github.com/charmbracelet/lipgloss"

var (
	// Colors.
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSuccess   = lipgloss.Color("#10B981") // Green
	colorWarning   = lipgloss.Color("#F59E0B") // Amber
	colorInfo      = lipgloss.Color("#3B82F6") // Blue
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorHighlight = lipgloss.Color("#A78BFA") // Light purple
)

// styles are bound to the renderer of the writer they print to, so output
// piped to a file or a test buffer carries no escape sequences.
type styles struct {
	title   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	info    lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	sql     lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		success: r.NewStyle().
			Foreground(colorSuccess),
		warning: r.NewStyle().
			Foreground(colorWarning),
		info: r.NewStyle().
			Foreground(colorInfo),
		label: r.NewStyle().
			Foreground(colorMuted),
		value: r.NewStyle().
			Bold(true),
		sql: r.NewStyle().
			Foreground(colorHighlight),
		muted: r.NewStyle().
			Foreground(colorMuted),
	}
}
