// Package theme holds the fixed registry of status-bar color themes.
// Themes come in two shapes: tiered themes pick one color for the whole
// bar from the usage tier (low/mid/high), while the rainbow theme cycles
// each filled cell through an ordered ten-color palette.
package theme

import (
	"github.com/NoobyGains/claude-pulse/internal/errors"
	"github.com/charmbracelet/lipgloss"
)

// Tier identifies a usage severity band.
type Tier int

const (
	TierLow Tier = iota
	TierMid
	TierHigh
)

// Tier thresholds in percent. The breakpoints are exactly 50 and 80:
// pct >= 80 is high, pct >= 50 is mid, anything below is low.
const (
	MidThreshold  = 50
	HighThreshold = 80
)

// DimColor is the color of the empty region of every bar, in every theme.
const DimColor = "#3a3a3a"

// Theme is a named color scheme. Tiered themes carry Low/Mid/High; the
// rainbow theme instead carries an ordered Palette and sets Rotating.
// Callers must branch on Rotating rather than assume a uniform shape.
type Theme struct {
	Name     string
	Rotating bool

	// Tiered colors (Rotating == false)
	Low  string
	Mid  string
	High string

	// Rotating palette (Rotating == true)
	Palette []string
}

// TierFor returns the usage tier for a percentage.
func TierFor(pct float64) Tier {
	switch {
	case pct >= HighThreshold:
		return TierHigh
	case pct >= MidThreshold:
		return TierMid
	default:
		return TierLow
	}
}

// TierColor returns the tier color for a percentage. For a rotating theme
// this falls back to the first palette color, which only matters for the
// theme badge accent.
func (t Theme) TierColor(pct float64) string {
	if t.Rotating {
		return t.Palette[0]
	}
	switch TierFor(pct) {
	case TierHigh:
		return t.High
	case TierMid:
		return t.Mid
	default:
		return t.Low
	}
}

// CellColor returns the color of filled cell i when shifted by offset.
// Only meaningful for rotating themes; the cycle period is len(Palette).
func (t Theme) CellColor(i, offset int) string {
	return t.Palette[(i+offset)%len(t.Palette)]
}

// Accent returns the color used for the theme badge border and label.
func (t Theme) Accent() string {
	if t.Rotating {
		return t.Palette[0]
	}
	return t.Low
}

// ANSIStyle returns a lipgloss style rendering text in the given hex color,
// used by the terminal preview.
func ANSIStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// rainbowPalette is the ordered cycle used by the rainbow theme's shimmer.
var rainbowPalette = []string{
	"#ff0000", "#ff8800", "#ffff00", "#00ff00", "#00ccff",
	"#0066ff", "#8800ff", "#ff00ff", "#ff0066", "#ff4444",
}

// registryOrder is the fixed iteration order of the registry.
var registryOrder = []string{
	"default", "ocean", "sunset", "neon", "frost",
	"ember", "candy", "pride", "mono", "rainbow",
}

var registry = map[string]Theme{
	"default": {Name: "default", Low: "#22c55e", Mid: "#eab308", High: "#ef4444"},
	"ocean":   {Name: "ocean", Low: "#06b6d4", Mid: "#3b82f6", High: "#a855f7"},
	"sunset":  {Name: "sunset", Low: "#eab308", Mid: "#ff8800", High: "#ef4444"},
	"neon":    {Name: "neon", Low: "#4ade80", Mid: "#facc15", High: "#f87171"},
	"frost":   {Name: "frost", Low: "#afffff", Mid: "#5fafff", High: "#ffffff"},
	"ember":   {Name: "ember", Low: "#ffd700", Mid: "#ff5f00", High: "#f87171"},
	"candy":   {Name: "candy", Low: "#ff87ff", Mid: "#af87ff", High: "#00ffff"},
	"pride":   {Name: "pride", Low: "#af5fff", Mid: "#00ffaf", High: "#ff00af"},
	"mono":    {Name: "mono", Low: "#d1d5db", Mid: "#d1d5db", High: "#ffffff"},
	"rainbow": {Name: "rainbow", Rotating: true, Palette: rainbowPalette},
}

// Lookup returns the theme registered under name.
func Lookup(name string) (Theme, error) {
	t, ok := registry[name]
	if !ok {
		return Theme{}, errors.NewUnknownTheme(name)
	}
	return t, nil
}

// Names returns all registered theme names in registry order.
func Names() []string {
	out := make([]string, len(registryOrder))
	copy(out, registryOrder)
	return out
}

// Showcase returns the tiered themes cycled through by the demo GIFs,
// in registry order (rainbow is excluded; it gets its own shimmer tail).
func Showcase() []string {
	out := make([]string, 0, len(registryOrder)-1)
	for _, name := range registryOrder {
		if !registry[name].Rotating {
			out = append(out, name)
		}
	}
	return out
}
