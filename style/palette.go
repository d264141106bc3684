package style

import "github.com/charmbracelet/lipgloss"

// ANSI colors follow the terminal theme and are used by plain CLI output.
var (
	Red    = lipgloss.Color("1")
	Green  = lipgloss.Color("2")
	Yellow = lipgloss.Color("3")
	Blue   = lipgloss.Color("4")
	Purple = lipgloss.Color("5")
	Cyan   = lipgloss.Color("6")
	Gray   = lipgloss.Color("8")
)

// The now-playing view uses fixed accents.
var (
	Accent  = lipgloss.Color("#cba6f7")
	Subtle  = lipgloss.Color("#6c7086")
	Surface = lipgloss.Color("#313244")
	Warning = lipgloss.Color("#f9e2af")
	Danger  = lipgloss.Color("#f38ba8")
	Good    = lipgloss.Color("#a6e3a1")
)
