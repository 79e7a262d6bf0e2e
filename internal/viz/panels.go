package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/collatz/internal/playback"
)

func (m *App) statsPanel() string {
	var s strings.Builder
	s.WriteString(m.styles.title.Render("STATISTICS") + "\n")
	if m.snap.Sequence.IsEmpty() {
		s.WriteString(m.styles.label.Render("start") + m.styles.value.Render("-"))
		return m.styles.panel.Width(leftWidth).Render(s.String())
	}
	st := m.stats
	s.WriteString(m.styles.label.Render("start") + m.styles.value.Render(groupDigits(st.Start)) + "\n")
	s.WriteString(m.styles.label.Render("length") + m.styles.value.Render(groupDigits(int64(st.Steps))) + "\n")
	s.WriteString(m.styles.label.Render("maximum") + m.styles.peak.Render(groupDigits(st.Max)) +
		m.styles.hint.Render(fmt.Sprintf(" @%d", st.MaxIndex)) + "\n")
	s.WriteString(m.styles.label.Render("odd/even") + m.styles.value.Render(fmt.Sprintf("%d/%d", st.OddCount, st.EvenCount)))
	if m.truncated {
		s.WriteString("\n" + m.styles.warning.Render(fmt.Sprintf("capped at %d steps", m.cfg.Cap)))
	}
	return m.styles.panel.Width(leftWidth).Render(s.String())
}

func (m *App) progressPanel() string {
	var s strings.Builder
	status := m.styles.paused.Render("■ IDLE")
	switch m.snap.State() {
	case playback.Playing:
		status = m.styles.playing.Render("▶ PLAYING")
	case playback.Empty:
		status = m.styles.hint.Render("no sequence")
	}
	s.WriteString(m.styles.title.Render("PROGRESS") + "  " + status + "\n")
	if m.snap.Sequence.IsEmpty() {
		return m.styles.panel.Width(leftWidth).Render(s.String())
	}

	s.WriteString(m.styles.label.Render("step") + m.styles.value.Render(fmt.Sprintf("%d/%d", m.snap.Cursor, m.snap.Sequence.Steps())) + "\n")
	s.WriteString(m.styles.label.Render("value") + m.styles.value.Render(groupDigits(m.snap.Current())) + "\n")
	if op, ok := m.snap.NextOp(); ok {
		s.WriteString(m.styles.value.Render(op.String()) + "\n")
	} else {
		s.WriteString(m.styles.hint.Render("reached the end") + "\n")
	}
	s.WriteString(m.styles.label.Render("speed") + m.styles.value.Render(fmt.Sprintf("%d ms/step", m.snap.IntervalMs)) + "\n")
	s.WriteString(m.bar.ViewAs(m.snap.Progress()))
	return m.styles.panel.Width(leftWidth).Render(s.String())
}

func (m *App) listPanel() string {
	return m.styles.panel.Width(leftWidth).Render(m.styles.title.Render("SEQUENCE") + "\n" + m.list.View())
}

// listContent renders one line per element, the cursor row highlighted.
func (m *App) listContent() string {
	seq := m.snap.Sequence
	if seq.IsEmpty() {
		return ""
	}
	width := len(fmt.Sprint(seq.Len() - 1))
	peak := m.stats.MaxIndex
	lines := make([]string, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		line := fmt.Sprintf("%*d: %s", width, i, groupDigits(seq.At(i)))
		switch {
		case i == m.snap.Cursor:
			lines[i] = m.styles.current.Render(line)
		case i == peak:
			lines[i] = m.styles.peak.Render(line)
		default:
			lines[i] = m.styles.row.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func (m *App) chartPanel() string {
	w := m.chartWidth()
	title := GradientText(fmt.Sprintf("COLLATZ SEQUENCE  N = %s", groupDigits(m.snap.Sequence.Start())), m.theme.Primary, m.theme.Secondary)
	chart := m.styles.graph.Render(renderChart(m.snap, w-2, m.chartHeight()))
	return m.styles.panel.Width(w).Render(title + "\n" + chart)
}

func (m *App) overviewPanel() string {
	w := m.chartWidth()
	if m.snap.Sequence.IsEmpty() {
		return m.styles.panel.Width(w).Render(m.styles.title.Render("OVERVIEW"))
	}
	canvas := NewCanvas(w-2, overviewRows)
	canvas.PlotOverview(m.snap.Sequence.Floats(m.snap.Sequence.Len()), m.snap.Scale, m.snap.Cursor)
	return m.styles.panel.Width(w).Render(m.styles.title.Render("OVERVIEW") + "  " +
		m.styles.hint.Render("click to seek") + "\n" + m.styles.graph.Render(canvas.String()))
}

func (m *App) inputLine() string {
	if m.editing {
		return m.styles.title.Render("NUMBER ") + m.input.View()
	}
	return m.styles.title.Render("NUMBER ") + m.styles.value.Render(m.input.Value()) +
		m.styles.hint.Render("  (i to edit, n for random)")
}

func (m *App) statusLine() string {
	switch m.statusKind {
	case statusWarning:
		return m.styles.warning.Render(m.status)
	case statusError:
		return m.styles.errorText.Render(m.status)
	default:
		return m.styles.hint.Render(m.status)
	}
}

// groupDigits formats n with thousands separators.
func groupDigits(n int64) string {
	s := fmt.Sprint(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
