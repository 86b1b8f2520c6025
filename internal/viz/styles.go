package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles of one theme.
type Styles struct {
	Panel      lipgloss.Style
	Title      lipgloss.Style
	Heading    lipgloss.Style
	Hidden     lipgloss.Style
	Body       lipgloss.Style
	Dim        lipgloss.Style
	Card       lipgloss.Style
	CardTitle  lipgloss.Style
	Highlight  lipgloss.Style
	NavButton  lipgloss.Style
	NavActive  lipgloss.Style
	Button     lipgloss.Style
	Link       lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Graph      lipgloss.Style
	KeyHint    lipgloss.Style
	Running    lipgloss.Style
	Paused     lipgloss.Style
	Recording  lipgloss.Style
	StatusLine lipgloss.Style
}

func (t Theme) Styles() Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(0, 2),
		Title:      lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Heading:    lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Underline(true),
		Hidden:     lipgloss.NewStyle().Foreground(t.Muted).Faint(true),
		Body:       lipgloss.NewStyle().Foreground(t.Text),
		Dim:        lipgloss.NewStyle().Foreground(t.Muted),
		Card:       lipgloss.NewStyle().Border(lipgloss.ThickBorder(), false, false, false, true).BorderForeground(t.Secondary).PaddingLeft(1),
		CardTitle:  lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Highlight:  lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		NavButton:  lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 1),
		NavActive:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Underline(true).Padding(0, 1),
		Button:     lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Link:       lipgloss.NewStyle().Foreground(t.Secondary).Underline(true),
		Label:      lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		Value:      lipgloss.NewStyle().Foreground(t.Text),
		Graph:      lipgloss.NewStyle().Foreground(t.Accent),
		KeyHint:    lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Running:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Paused:     lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		Recording:  lipgloss.NewStyle().Bold(true).Foreground(t.Error).Blink(true),
		StatusLine: lipgloss.NewStyle().Foreground(t.Muted),
	}
}

// Separator renders a divider with a diamond in the middle.
func (s Styles) Separator(width int) string {
	if width < 8 {
		return s.Dim.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	return s.Dim.Render(strings.Repeat("─", mid-2) + " ◆ " + strings.Repeat("─", width-mid-1))
}
