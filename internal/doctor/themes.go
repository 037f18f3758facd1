package doctor

import (
	"fmt"
	"strings"

	"github.com/NoobyGains/claude-pulse/internal/theme"
)

// NewThemeChecks builds one registry check per registered theme.
func NewThemeChecks() []Check {
	names := theme.Names()
	checks := make([]Check, 0, len(names))
	for _, name := range names {
		checks = append(checks, &ThemeCheck{Theme: name})
	}
	return checks
}

// ThemeCheck verifies that one registry entry has usable colors.
type ThemeCheck struct {
	Theme string
}

func (c *ThemeCheck) Name() string     { return "theme_" + c.Theme }
func (c *ThemeCheck) Category() string { return "THEMES" }

func (c *ThemeCheck) Run() CheckResult {
	th, err := theme.Lookup(c.Theme)
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: fmt.Sprintf("Theme %q missing from registry", c.Theme),
		}
	}

	if th.Rotating {
		if len(th.Palette) == 0 {
			return CheckResult{
				Name:    c.Name(),
				Status:  StatusFail,
				Message: fmt.Sprintf("Rotating theme %q has an empty palette", c.Theme),
			}
		}
		for _, color := range th.Palette {
			if !validHex(color) {
				return CheckResult{
					Name:    c.Name(),
					Status:  StatusFail,
					Message: fmt.Sprintf("Theme %q has invalid palette color %q", c.Theme, color),
				}
			}
		}
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: fmt.Sprintf("%s: %d-color cycle", c.Theme, len(th.Palette)),
		}
	}

	for _, color := range []string{th.Low, th.Mid, th.High} {
		if !validHex(color) {
			return CheckResult{
				Name:    c.Name(),
				Status:  StatusFail,
				Message: fmt.Sprintf("Theme %q has invalid tier color %q", c.Theme, color),
			}
		}
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%s: %s %s %s", c.Theme, th.Low, th.Mid, th.High),
	}
}

// validHex accepts #rrggbb color strings.
func validHex(s string) bool {
	if len(s) != 7 || !strings.HasPrefix(s, "#") {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
