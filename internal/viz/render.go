package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/walklab/internal/walk"
)

// Renderer turns the current frame into a drawable chart. The loop hands
// it a read-only view for the duration of one draw; implementations must
// not retain or mutate the frame.
type Renderer interface {
	Render(f walk.Frame, width, height int) string
}

// BarRenderer draws one column per bucket with a label row beneath. The
// column layout depends only on the bucket count, so the chart width is
// stable from frame to frame.
type BarRenderer struct{}

func (BarRenderer) Render(f walk.Frame, width, height int) string {
	if len(f) == 0 || height < 2 {
		return ""
	}

	colW := width / len(f)
	if colW < 4 {
		colW = 4
	}
	barW := colW - 1
	chartH := height - 1
	max := f.Max()

	bars := make([]int, len(f))
	for i, b := range f {
		if max == 0 {
			continue
		}
		h := b.Count * chartH / max
		if b.Count > 0 && h == 0 {
			h = 1
		}
		bars[i] = h
	}

	rows := make([]string, 0, height)
	for row := chartH; row >= 1; row-- {
		var sb strings.Builder
		for i := range f {
			if bars[i] >= row {
				sb.WriteString(strings.Repeat("█", barW))
			} else {
				sb.WriteString(strings.Repeat(" ", barW))
			}
			sb.WriteByte(' ')
		}
		rows = append(rows, barStyle.Render(sb.String()))
	}

	var lb strings.Builder
	for _, b := range f {
		lb.WriteString(fmt.Sprintf("%*d ", barW, b.Label))
	}
	rows = append(rows, axisStyle.Render(lb.String()))

	return strings.Join(rows, "\n")
}
