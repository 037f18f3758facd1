package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
)

// frameBarWidth is the terminal width of the frame progress bar.
const frameBarWidth = 30

// FrameProgress renders how many frames of a family have been written.
type FrameProgress struct {
	bar   progress.Model
	Total int
}

// NewFrameProgress creates a progress bar sized for total frames.
func NewFrameProgress(total int) FrameProgress {
	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(frameBarWidth),
		progress.WithoutPercentage(),
	)
	p.FullColor = string(ColorSuccess)
	p.EmptyColor = string(ColorMuted)

	return FrameProgress{bar: p, Total: total}
}

// View renders the bar at done of Total frames with a frame counter.
func (f FrameProgress) View(done int) string {
	pct := 0.0
	if f.Total > 0 {
		pct = float64(done) / float64(f.Total)
	}
	counter := MutedStyle.Render(fmt.Sprintf("%d/%d frames", done, f.Total))
	return f.bar.ViewAs(pct) + " " + counter
}
