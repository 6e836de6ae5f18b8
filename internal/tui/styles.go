package tui

import "github.com/charmbracelet/lipgloss"

// Theme bundles every style the calculator draws with. Colors follow the
// dark default scheme: warm orange operators, pink equals, slate digits.
type Theme struct {
	Background   lipgloss.Color
	BorderColor  lipgloss.Color
	Meter        lipgloss.Style
	Display      lipgloss.Style
	Footer       lipgloss.Style
	NumButton    lipgloss.Style
	OpButton     lipgloss.Style
	EqualButton  lipgloss.Style
	ActiveButton lipgloss.Style
}

// DefaultTheme returns the built-in color scheme.
func DefaultTheme() Theme {
	var (
		background = lipgloss.Color("#14141E")
		displayBG  = lipgloss.Color("#32323C")
		borderFG   = lipgloss.Color("#50505A")
		text       = lipgloss.Color("#FFFFFF")
		darkText   = lipgloss.Color("#14141E")
		numBG      = lipgloss.Color("#3C4650")
		opBG       = lipgloss.Color("#FF9F43")
		equalBG    = lipgloss.Color("#FF6384")
		activeBG   = lipgloss.Color("#FFFFFF")
	)

	button := lipgloss.NewStyle().
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Border(lipgloss.NormalBorder()).
		BorderForeground(background)

	return Theme{
		Background:  background,
		BorderColor: borderFG,
		Meter: lipgloss.NewStyle().
			Foreground(borderFG).
			Align(lipgloss.Right),
		Display: lipgloss.NewStyle().
			Foreground(text).
			Background(displayBG).
			Border(lipgloss.NormalBorder()).
			BorderForeground(borderFG).
			Align(lipgloss.Right).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Foreground(borderFG),
		NumButton:    button.Foreground(text).Background(numBG),
		OpButton:     button.Foreground(darkText).Background(opBG),
		EqualButton:  button.Foreground(darkText).Background(equalBG),
		ActiveButton: button.Foreground(darkText).Background(activeBG),
	}
}
