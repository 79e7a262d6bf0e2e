package viz

import (
	"fmt"
	"math"
	"strconv"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/collatz/internal/playback"
)

// renderChart plots the visible prefix of the sequence. The y bounds come
// from the whole sequence so the axis stays put while the animation runs.
func renderChart(snap playback.Snapshot, width, height int) string {
	if snap.Sequence.IsEmpty() {
		return "no sequence"
	}
	data := snap.Visible()
	lower, upper := 1.0, float64(snap.Sequence.Max())
	caption := fmt.Sprintf("N = %d  step %d/%d  value (linear)", snap.Sequence.Start(), snap.Cursor, snap.Sequence.Steps())
	precision := uint(0)

	if snap.Scale == playback.Logarithmic {
		for i, v := range data {
			data[i] = math.Log10(v)
		}
		lower, upper = 0, math.Log10(upper)
		caption = fmt.Sprintf("N = %d  step %d/%d  log10(value)", snap.Sequence.Start(), snap.Cursor, snap.Sequence.Steps())
		precision = 2
	}
	if upper <= lower {
		upper = lower + 1
	}
	if len(data) == 1 {
		data = append(data, data[0])
	}

	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.LowerBound(lower),
		asciigraph.UpperBound(upper),
		asciigraph.Precision(precision),
		asciigraph.Caption(caption),
	}
	// Leave room for the y-axis labels.
	plotWidth := width - len(strconv.FormatFloat(upper, 'f', int(precision), 64)) - 3
	if plotWidth > 0 && len(data) > plotWidth {
		opts = append(opts, asciigraph.Width(plotWidth))
	}
	return asciigraph.Plot(data, opts...)
}
