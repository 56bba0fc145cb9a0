package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles of the wizard
type Styles struct {
	App      lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Error    lipgloss.Style
	Progress lipgloss.Style
	Card     lipgloss.Style
}

// DefaultStyles returns the green-and-cream palette of the app
func DefaultStyles() Styles {
	green := lipgloss.Color("#22C55E")
	muted := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"}).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(muted).
			MarginBottom(1),
		Body: lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle().
			Foreground(muted),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(green),
		Cursor: lipgloss.NewStyle().
			Foreground(green),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			MarginBottom(1),
		Progress: lipgloss.NewStyle().
			Foreground(green).
			MarginBottom(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(green).
			Padding(0, 1),
	}
}
