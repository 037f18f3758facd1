package render

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/NoobyGains/claude-pulse/internal/errors"
	"github.com/NoobyGains/claude-pulse/internal/theme"
)

// Frame is the complete set of inputs needed to deterministically produce
// one output document. It is built by the scenario driver, consumed once
// by a composer, and never mutated.
type Frame struct {
	Theme      string // registry name
	SessionPct int
	WeeklyPct  int
	ContextPct int
	ResetIn    string // countdown like "4h 52m"; empty hides the field
	Plan       string
	Model      string
	Index      int // 1-based frame number
	Total      int
	Rainbow    bool
	Offset     int // rainbow rotation phase for the session bar

	// Optional extra-usage pair, currency-prefixed numeric strings
	// like "£3.10". Both must be set for the extra bar to render.
	ExtraUsed  string
	ExtraLimit string

	// Trailing status-line badges, independently toggled.
	ShowPulseUpdate  bool
	ShowClaudeUpdate bool
}

const (
	textColor = "#d1d5db"
	sepSpan   = `<span class="sep">|</span>`

	// Offset stride between the bars of one frame. In rainbow mode this
	// desynchronizes the shimmer of session/weekly/context/extra bars.
	offsetStride = 3

	// Countdown placeholder width when no reset time is shown, so the
	// concatenated segments keep their column alignment.
	resetPlaceholder = "       "

	badgeStyle = `color:#eab308;font-weight:bold`
)

// effectiveTheme applies the frame's Rainbow flag to the looked-up theme.
// The flag, not the registry entry, decides shimmer rendering: a rotating
// theme renders tiered when the frame does not ask for shimmer. Rotation
// still requires a palette to draw from.
func (f Frame) effectiveTheme(th theme.Theme) theme.Theme {
	th.Rotating = f.Rainbow && len(th.Palette) > 0
	return th
}

// ParseExtraUsage converts a currency-prefixed used/limit pair into a
// percentage. The currency marker is stripped before dividing.
func ParseExtraUsage(used, limit string) (float64, error) {
	u, err1 := strconv.ParseFloat(stripCurrency(used), 64)
	l, err2 := strconv.ParseFloat(stripCurrency(limit), 64)
	if err1 != nil || err2 != nil || l == 0 {
		return 0, errors.NewInvalidExtraUsage(used, limit)
	}
	return 100 * u / l, nil
}

// stripCurrency drops a leading currency marker (£, $, €) if present.
func stripCurrency(s string) string {
	return strings.TrimLeft(s, "£$€")
}

// statusLine assembles the status-line HTML fragment shared by both frame
// families. includeExtra enables the fourth bar (full mockup only);
// includeBadges enables the trailing update badges (status-line family).
func statusLine(f Frame, th theme.Theme, includeExtra, includeBadges bool) (template.HTML, error) {
	sessionBar := Bar(float64(f.SessionPct), th, BarWidth, f.Offset)
	weeklyBar := Bar(float64(f.WeeklyPct), th, BarWidth, f.Offset+offsetStride)
	ctxBar := Bar(float64(f.ContextPct), th, BarWidth, f.Offset+2*offsetStride)

	reset := resetPlaceholder
	if f.ResetIn != "" {
		reset = " " + f.ResetIn
	}

	var extra string
	if includeExtra && f.ExtraUsed != "" && f.ExtraLimit != "" {
		pct, err := ParseExtraUsage(f.ExtraUsed, f.ExtraLimit)
		if err != nil {
			return "", err
		}
		extraBar := Bar(pct, th, BarWidth, f.Offset+3*offsetStride)
		extra = fmt.Sprintf(`%s<span class="sl">Extra </span>%s<span class="sl"> %s/%s</span>`,
			sepSpan, extraBar, f.ExtraUsed, f.ExtraLimit)
	}

	var badges string
	if includeBadges {
		if f.ShowPulseUpdate {
			badges += fmt.Sprintf(`%s<span style="%s">&#x2191; Pulse Update</span>`, sepSpan, badgeStyle)
		}
		if f.ShowClaudeUpdate {
			badges += fmt.Sprintf(`%s<span style="%s">&#x2191; Claude Update</span>`, sepSpan, badgeStyle)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<span class="sl">Session </span>%s<span class="sl"> %3d%%%s</span>`,
		sessionBar, f.SessionPct, reset)
	b.WriteString(sepSpan)
	fmt.Fprintf(&b, `<span class="sl">Weekly </span>%s<span class="sl"> %3d%%</span>`,
		weeklyBar, f.WeeklyPct)
	b.WriteString(sepSpan)
	fmt.Fprintf(&b, `<span class="sl">Context </span>%s<span class="sl"> %3d%%</span>`,
		ctxBar, f.ContextPct)
	b.WriteString(extra)
	b.WriteString(badges)
	b.WriteString(sepSpan)
	fmt.Fprintf(&b, `<span class="sl">%s</span>`, f.Plan)
	b.WriteString(sepSpan)
	fmt.Fprintf(&b, `<span class="sl">%s</span>`, f.Model)

	return template.HTML(b.String()), nil
}
