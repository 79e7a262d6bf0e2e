package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/collatz/internal/collatz"
	"github.com/san-kum/collatz/internal/playback"
)

type ChartOptions struct {
	Width, Height int
	Scale         playback.ScaleMode
	// Cursor marks the current step; -1 draws no marker.
	Cursor     int
	StartColor string
	EndColor   string
}

func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		Width:      1200,
		Height:     600,
		Scale:      playback.Logarithmic,
		Cursor:     -1,
		StartColor: "#0078d7",
		EndColor:   "#f39c12",
	}
}

const chartMargin = 48.0

// ChartSVG plots the sequence as a step/value line chart.
func ChartSVG(seq collatz.Sequence, opts ChartOptions) string {
	if seq.IsEmpty() {
		return ""
	}
	width, height := float64(opts.Width), float64(opts.Height)
	plotW, plotH := width-2*chartMargin, height-2*chartMargin

	yOf := func(v int64) float64 {
		if opts.Scale == playback.Logarithmic {
			return math.Log10(float64(v))
		}
		return float64(v)
	}
	minY, maxY := yOf(1), yOf(seq.Max())
	if opts.Scale == playback.Linear {
		minY = 0
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	rangeX := float64(seq.Len() - 1)
	if rangeX == 0 {
		rangeX = 1
	}

	px := func(i int) float64 { return chartMargin + float64(i)/rangeX*plotW }
	py := func(v int64) float64 { return chartMargin + plotH - (yOf(v)-minY)/rangeY*plotH }

	start, err := colorful.Hex(opts.StartColor)
	if err != nil {
		start = colorful.Color{R: 0, G: 0.47, B: 0.84}
	}
	end, err := colorful.Hex(opts.EndColor)
	if err != nil {
		end = colorful.Color{R: 0.95, G: 0.61, B: 0.07}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#fafbfc"/>
<text x="%.0f" y="28" font-family="sans-serif" font-size="16" font-weight="bold" fill="#2c3e50">Collatz Sequence N = %d (%s scale)</text>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#bdc3c7"/>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#bdc3c7"/>
`,
		opts.Width, opts.Height, opts.Width, opts.Height,
		chartMargin, seq.Start(), opts.Scale,
		chartMargin, chartMargin+plotH, chartMargin+plotW, chartMargin+plotH,
		chartMargin, chartMargin, chartMargin, chartMargin+plotH))

	// One segment per step so the stroke can follow the gradient.
	sb.WriteString(`<g stroke-width="2" fill="none">` + "\n")
	for i := 0; i+1 < seq.Len(); i++ {
		c := start.BlendLab(end, float64(i)/rangeX).Clamped()
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>`+"\n",
			px(i), py(seq.At(i)), px(i+1), py(seq.At(i+1)), c.Hex()))
	}
	sb.WriteString("</g>\n")

	if seq.Len() <= 500 {
		sb.WriteString(`<g fill="#f39c12" fill-opacity="0.7">` + "\n")
		for i := 0; i < seq.Len(); i++ {
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3"><title>Step: %d Value: %d</title></circle>`+"\n",
				px(i), py(seq.At(i)), i, seq.At(i)))
		}
		sb.WriteString("</g>\n")
	}

	if opts.Cursor >= 0 && opts.Cursor < seq.Len() {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="6" fill="#e74c3c" stroke="#2c3e50" stroke-width="2"/>`+"\n",
			px(opts.Cursor), py(seq.At(opts.Cursor))))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func WriteSVG(w io.Writer, seq collatz.Sequence, opts ChartOptions) error {
	_, err := io.WriteString(w, ChartSVG(seq, opts))
	return err
}
