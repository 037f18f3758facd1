package render

import (
	"fmt"
	"strings"

	"github.com/NoobyGains/claude-pulse/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// Terminal styles for the preview command. The separator and label colors
// mirror the HTML status line's .sep and .sl rules.
var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(textColor))
	sepStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.DimColor))
	badgeANSI  = lipgloss.NewStyle().Foreground(lipgloss.Color("#eab308")).Bold(true)
)

// BarANSI renders a usage bar with lipgloss styling for terminal display.
// Same fill algorithm as Bar, same tier and rainbow color rules.
func BarANSI(pct float64, th theme.Theme, width, offset int) string {
	if width <= 0 {
		return ""
	}

	pct = ClampPercent(pct)
	filled, empty := FillCounts(pct, width)

	var b strings.Builder
	if th.Rotating {
		for i := 0; i < filled; i++ {
			b.WriteString(theme.ANSIStyle(th.CellColor(i, offset)).Render(BarFilled))
		}
	} else if filled > 0 {
		b.WriteString(theme.ANSIStyle(th.TierColor(pct)).Render(strings.Repeat(BarFilled, filled)))
	}
	if empty > 0 {
		b.WriteString(dimStyle.Render(strings.Repeat(BarEmpty, empty)))
	}
	return b.String()
}

// StatusLineANSI renders the status line for the terminal preview,
// mirroring the HTML layout segment for segment.
func StatusLineANSI(f Frame) (string, error) {
	th, err := theme.Lookup(f.Theme)
	if err != nil {
		return "", err
	}
	th = f.effectiveTheme(th)

	sep := sepStyle.Render(" | ")
	reset := resetPlaceholder
	if f.ResetIn != "" {
		reset = " " + f.ResetIn
	}

	segments := []string{
		labelStyle.Render("Session ") +
			BarANSI(float64(f.SessionPct), th, BarWidth, f.Offset) +
			labelStyle.Render(fmt.Sprintf(" %3d%%%s", f.SessionPct, reset)),
		labelStyle.Render("Weekly ") +
			BarANSI(float64(f.WeeklyPct), th, BarWidth, f.Offset+offsetStride) +
			labelStyle.Render(fmt.Sprintf(" %3d%%", f.WeeklyPct)),
		labelStyle.Render("Context ") +
			BarANSI(float64(f.ContextPct), th, BarWidth, f.Offset+2*offsetStride) +
			labelStyle.Render(fmt.Sprintf(" %3d%%", f.ContextPct)),
	}

	if f.ExtraUsed != "" && f.ExtraLimit != "" {
		pct, err := ParseExtraUsage(f.ExtraUsed, f.ExtraLimit)
		if err != nil {
			return "", err
		}
		segments = append(segments,
			labelStyle.Render("Extra ")+
				BarANSI(pct, th, BarWidth, f.Offset+3*offsetStride)+
				labelStyle.Render(fmt.Sprintf(" %s/%s", f.ExtraUsed, f.ExtraLimit)))
	}

	if f.ShowPulseUpdate {
		segments = append(segments, badgeANSI.Render("↑ Pulse Update"))
	}
	if f.ShowClaudeUpdate {
		segments = append(segments, badgeANSI.Render("↑ Claude Update"))
	}

	segments = append(segments, labelStyle.Render(f.Plan), labelStyle.Render(f.Model))

	return strings.Join(segments, sep), nil
}
