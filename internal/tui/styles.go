package tui

import "github.com/charmbracelet/lipgloss"

// theme holds the style set for one color scheme.
type theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Selected lipgloss.Style
	Faint    lipgloss.Style
	Error    lipgloss.Style
	Notice   lipgloss.Style
	Box      lipgloss.Style
	Star     lipgloss.Style
	Bar      lipgloss.Style
}

func darkTheme() theme {
	return theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("#A599E9")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F4D35E")),
		Faint:    lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F87")),
		Notice:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6BCB77")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(1, 2),
		Star: lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D35E")),
		Bar:  lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")),
	}
}

func lightTheme() theme {
	return theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5A31C4")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("#6B4FD8")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("#1A1A1A")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B8860B")),
		Faint:    lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C0244B")),
		Notice:   lipgloss.NewStyle().Foreground(lipgloss.Color("#2E8540")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5A31C4")).
			Padding(1, 2),
		Star: lipgloss.NewStyle().Foreground(lipgloss.Color("#B8860B")),
		Bar:  lipgloss.NewStyle().Foreground(lipgloss.Color("#5A31C4")),
	}
}
