package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/walklab/internal/stats"
	"github.com/san-kum/walklab/internal/walk"
)

// LineRenderer is the extended variant: the bar chart with a line plot
// underneath comparing observed bucket counts against the normal
// reference curve N(0, steps).
type LineRenderer struct {
	cfg walk.Config
}

func NewLineRenderer(cfg walk.Config) LineRenderer {
	return LineRenderer{cfg: cfg}
}

func (r LineRenderer) Render(f walk.Frame, width, height int) string {
	if len(f) == 0 || height < 2 {
		return ""
	}

	lineH := height * 2 / 5
	if lineH < 4 {
		lineH = 4
	}
	barH := height - lineH - 2
	if barH < 2 {
		barH = 2
	}

	bars := BarRenderer{}.Render(f, width, barH)

	observed := make([]float64, len(f))
	for i, b := range f {
		observed[i] = float64(b.Count)
	}
	expected := stats.ExpectedCounts(r.cfg)

	plotW := width - 12
	if plotW < 20 {
		plotW = 20
	}
	plot := asciigraph.PlotMany(
		[][]float64{expected, observed},
		asciigraph.Height(lineH),
		asciigraph.Width(plotW),
		asciigraph.Caption("observed (green) vs normal (red)"),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green),
	)

	return bars + "\n\n" + plot
}
