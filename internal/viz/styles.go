package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

type styles struct {
	panel     lipgloss.Style
	title     lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	row       lipgloss.Style
	current   lipgloss.Style
	peak      lipgloss.Style
	graph     lipgloss.Style
	playing   lipgloss.Style
	paused    lipgloss.Style
	warning   lipgloss.Style
	errorText lipgloss.Style
	hint      lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		title:     lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		label:     lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		value:     lipgloss.NewStyle().Foreground(t.Text),
		row:       lipgloss.NewStyle().Foreground(t.Text),
		current:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(t.Highlight),
		peak:      lipgloss.NewStyle().Foreground(t.Accent),
		graph:     lipgloss.NewStyle().Foreground(t.Primary),
		playing:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88")),
		paused:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		errorText: lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		hint:      lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
	}
}

// GradientText colors each rune along a blend from start to end.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	from, err := colorful.Hex(string(start))
	if err != nil {
		return text
	}
	to, err := colorful.Hex(string(end))
	if err != nil {
		return text
	}

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := from.BlendHcl(to, t).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return b.String()
}
