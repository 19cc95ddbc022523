package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")
	Mauve    = lipgloss.Color("#cba6f7")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	Title     = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted     = lipgloss.NewStyle().Foreground(Subtext0)
	Hot       = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Recording = lipgloss.NewStyle().Foreground(Red).Bold(true)
	Ok        = lipgloss.NewStyle().Foreground(Green)
)

// RoleBadge colours the role shown in the tab bar.
func RoleBadge(title string, judge bool) string {
	c := Green
	if judge {
		c = Mauve
	}
	return lipgloss.NewStyle().Foreground(Base).Background(c).Bold(true).Padding(0, 1).Render(title)
}
