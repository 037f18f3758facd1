package render

import (
	"html/template"
	"strings"
)

// Claude "Claw'd" pixel mascot as a 16x12 grid of category codes:
// R = coral body, D = dark eyes, N = secondary accent, . = transparent.
// Purely decorative; constant across all frames.
var mascotPixels = [12]string{
	"..RRRRRRRRRRRR..",
	"..RRRRRRRRRRRR..",
	"..RDDRRRRRRDDR..",
	"..RDDRRRRRRDDR..",
	"..RRRRRRRRRRRR..",
	"RRRRRRRRRRRRRRRR",
	"RRRRRRRRRRRRRRRR",
	"..RRRRRRRRRRRR..",
	"..RRRRRRRRRRRR..",
	"..RRRRRRRRRRRR..",
	"..RR.RR..RR.RR..",
	"..RR.RR..RR.RR..",
}

// mascotHTML expands the pixel grid into CSS grid cells. The joining
// indentation keeps the generated document readable under the template's
// nesting depth.
func mascotHTML() template.HTML {
	var cells []string
	for _, row := range mascotPixels {
		for _, ch := range row {
			switch ch {
			case 'R':
				cells = append(cells, `<span class="px pr"></span>`)
			case 'D':
				cells = append(cells, `<span class="px pd"></span>`)
			case 'N':
				cells = append(cells, `<span class="px pn"></span>`)
			default:
				cells = append(cells, `<span class="px"></span>`)
			}
		}
	}
	return template.HTML(strings.Join(cells, "\n            "))
}
