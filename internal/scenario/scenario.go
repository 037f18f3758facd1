// Package scenario enumerates the demo frame sequences and writes them to
// disk. Each generation run crosses the showcase themes with a fixed set
// of usage scenarios, appends a rainbow shimmer tail, and persists every
// composed document plus an ordered JSON manifest.
package scenario

import (
	"github.com/NoobyGains/claude-pulse/internal/render"
	"github.com/NoobyGains/claude-pulse/internal/theme"
)

// Labels shared by every frame.
const (
	planLabel  = "Max 20x"
	modelLabel = "Opus 4.6"
)

// usage is one usage-scenario tuple. Extra usage values are only set for
// the demo family.
type usage struct {
	Session int
	Weekly  int
	Context int
	ResetIn string
	Label   string
	Used    string
	Limit   string
}

// demoScenarios drive the full-mockup family (demo.gif).
var demoScenarios = []usage{
	{12, 6, 8, "4h 52m", "low usage", "£3.10", "£37.00"},
	{38, 22, 30, "3h 14m", "warming up", "£8.20", "£37.00"},
	{62, 45, 55, "1h 48m", "active session", "£22.50", "£37.00"},
	{88, 68, 82, "0h 22m", "near limit", "£34.80", "£37.00"},
}

// updateScenarios drive the status-line family with the Pulse Update badge.
var updateScenarios = []usage{
	{42, 28, 35, "2h 40m", "with update", "", ""},
	{65, 50, 60, "1h 15m", "with update", "", ""},
	{85, 72, 78, "0h 30m", "with update", "", ""},
}

// claudeUpdateScenarios drive the status-line family with the Claude
// Update badge.
var claudeUpdateScenarios = []usage{
	{42, 28, 35, "2h 40m", "with claude update", "", ""},
	{65, 50, 60, "1h 15m", "with claude update", "", ""},
	{85, 72, 78, "0h 30m", "with claude update", "", ""},
}

// shimmer is the fixed usage snapshot for the rainbow tail.
var shimmer = usage{55, 38, 45, "2h 10m", "animated shimmer", "£18.50", "£37.00"}

// shimmerFrames is the number of rotation offsets in the rainbow tail.
const shimmerFrames = 10

// buildFrames crosses the showcase themes with the given scenarios (outer
// loop themes in registry order, inner loop scenarios in declaration
// order), then appends the rainbow shimmer tail with offsets 0..9.
// withExtra keeps the extra-usage pair on the produced frames.
func buildFrames(scenarios []usage, withExtra, pulseBadge, claudeBadge bool) []render.Frame {
	total := len(theme.Showcase())*len(scenarios) + shimmerFrames
	frames := make([]render.Frame, 0, total)

	for _, name := range theme.Showcase() {
		for _, sc := range scenarios {
			f := render.Frame{
				Theme:            name,
				SessionPct:       sc.Session,
				WeeklyPct:        sc.Weekly,
				ContextPct:       sc.Context,
				ResetIn:          sc.ResetIn,
				Plan:             planLabel,
				Model:            modelLabel,
				Index:            len(frames) + 1,
				Total:            total,
				ShowPulseUpdate:  pulseBadge,
				ShowClaudeUpdate: claudeBadge,
			}
			if withExtra {
				f.ExtraUsed = sc.Used
				f.ExtraLimit = sc.Limit
			}
			frames = append(frames, f)
		}
	}

	for offset := 0; offset < shimmerFrames; offset++ {
		f := render.Frame{
			Theme:            "rainbow",
			SessionPct:       shimmer.Session,
			WeeklyPct:        shimmer.Weekly,
			ContextPct:       shimmer.Context,
			ResetIn:          shimmer.ResetIn,
			Plan:             planLabel,
			Model:            modelLabel,
			Index:            len(frames) + 1,
			Total:            total,
			Rainbow:          true,
			Offset:           offset,
			ShowPulseUpdate:  pulseBadge,
			ShowClaudeUpdate: claudeBadge,
		}
		if withExtra {
			f.ExtraUsed = shimmer.Used
			f.ExtraLimit = shimmer.Limit
		}
		frames = append(frames, f)
	}

	return frames
}

// DemoFrames returns the descriptors for the full-mockup demo sequence.
func DemoFrames() []render.Frame {
	return buildFrames(demoScenarios, true, false, false)
}

// UpdateFrames returns the descriptors for the Pulse Update sequence.
func UpdateFrames() []render.Frame {
	return buildFrames(updateScenarios, false, true, false)
}

// ClaudeUpdateFrames returns the descriptors for the Claude Update sequence.
func ClaudeUpdateFrames() []render.Frame {
	return buildFrames(claudeUpdateScenarios, false, false, true)
}
