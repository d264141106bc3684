// Package style holds the lipgloss styles shared by the CLI and the now-playing view.
package style

import "github.com/charmbracelet/lipgloss"

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a renderer with foreground c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Title renders a padded banner.
func Title(s string) string {
	return New().Foreground(lipgloss.Color("230")).Background(Accent).Bold(true).Padding(0, 1).Render(s)
}

// ErrorTitle is Title in the danger color.
func ErrorTitle(s string) string {
	return New().Foreground(lipgloss.Color("230")).Background(Danger).Bold(true).Padding(0, 1).Render(s)
}

// Box frames s with a rounded border in color c.
func Box(c lipgloss.Color) func(string) string {
	return func(s string) string {
		return New().Border(lipgloss.RoundedBorder()).BorderForeground(c).Padding(0, 1).Render(s)
	}
}

// Truncate renders s within max columns.
func Truncate(max int) func(string) string {
	return func(s string) string { return New().MaxWidth(max).Render(s) }
}
