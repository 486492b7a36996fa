package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	PrimaryColor = lipgloss.Color("39")  // Blue
	AccentColor  = lipgloss.Color("76")  // Green
	ErrorColor   = lipgloss.Color("196") // Red
	MutedColor   = lipgloss.Color("240") // Gray
	TextColor    = lipgloss.Color("252") // Light gray
	MatchColor   = lipgloss.Color("214") // Orange
)

// Styles
var (
	InputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 1)

	ScoreStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MatchStyle = lipgloss.NewStyle().
			Foreground(MatchColor).
			Bold(true)

	CursorLineStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)
)

// iconStyles maps an icon highlight group to its rendering style.
var iconStyles = map[string]lipgloss.Style{
	"FpickIconGo":       lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
	"FpickIconLua":      lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	"FpickIconPython":   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	"FpickIconJS":       lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	"FpickIconTS":       lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	"FpickIconRust":     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	"FpickIconC":        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	"FpickIconShell":    lipgloss.NewStyle().Foreground(lipgloss.Color("76")),
	"FpickIconMarkdown": lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	"FpickIconJSON":     lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
	"FpickIconYAML":     lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
	"FpickIconTOML":     lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
	"FpickIconFile":     lipgloss.NewStyle().Foreground(MutedColor),
}

// IconStyle returns the style for an icon highlight group.
func IconStyle(group string) lipgloss.Style {
	if s, ok := iconStyles[group]; ok {
		return s
	}
	return PathStyle
}
