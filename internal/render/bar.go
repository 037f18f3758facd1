// Package render produces the styled status-bar documents: proportional
// usage bars, the bare status line, and the full terminal mockup frame.
// Every operation here is a pure function of its inputs; identical inputs
// yield byte-identical output.
package render

import (
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/NoobyGains/claude-pulse/internal/theme"
)

// Bar glyphs. Filled cells use a heavy horizontal line, empty cells a
// light one, so the fill boundary reads even without color.
const (
	BarFilled = "━" // U+2501
	BarEmpty  = "─" // U+2500
)

// BarWidth is the cell width of every status-line bar.
const BarWidth = 10

// ClampPercent clamps a percentage to the 0-100 range. Out-of-range
// values are never an error; callers with rounding noise get the
// boundary behavior instead.
func ClampPercent(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// FillCounts returns the number of filled and empty cells for a bar.
// The percentage is clamped first; filled is round(pct/100*width) clamped
// to [0, width], and filled+empty always equals width. Rounding is
// half-to-even, so 45% of a 10-cell bar fills 4 cells and 55% fills 6.
func FillCounts(pct float64, width int) (filled, empty int) {
	pct = ClampPercent(pct)
	filled = int(math.RoundToEven(pct / 100.0 * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	empty = width - filled
	return
}

// Bar renders one proportional usage bar as an HTML fragment.
//
// Tiered themes color the whole filled run with the tier color for pct.
// The rotating (rainbow) theme colors each filled cell independently as
// palette[(cell+offset) % len(palette)], so bars at different offsets
// shimmer out of phase. The empty run is always the fixed dim color.
func Bar(pct float64, th theme.Theme, width, offset int) template.HTML {
	if width <= 0 {
		return ""
	}

	pct = ClampPercent(pct)
	filled, empty := FillCounts(pct, width)

	var b strings.Builder
	if th.Rotating {
		for i := 0; i < filled; i++ {
			fmt.Fprintf(&b, `<span style="color:%s">%s</span>`, th.CellColor(i, offset), BarFilled)
		}
	} else if filled > 0 {
		fmt.Fprintf(&b, `<span style="color:%s">%s</span>`, th.TierColor(pct), strings.Repeat(BarFilled, filled))
	}
	if empty > 0 {
		fmt.Fprintf(&b, `<span style="color:%s">%s</span>`, theme.DimColor, strings.Repeat(BarEmpty, empty))
	}
	return template.HTML(b.String())
}
