package doctor

import (
	"fmt"
	"os"

	"github.com/NoobyGains/claude-pulse/internal/config"
	"github.com/muesli/termenv"
)

// OutDirCheck verifies the configured output root is writable.
type OutDirCheck struct {
	ConfigPath string
}

func (c *OutDirCheck) Name() string     { return "out_dir" }
func (c *OutDirCheck) Category() string { return "OUTPUT" }

func (c *OutDirCheck) Run() CheckResult {
	cfg, err := config.LoadOrDefault(c.ConfigPath)
	if err != nil {
		// Config checks report the details
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: "Cannot resolve output root: config failed to load",
		}
	}

	root := cfg.OutDir
	label := root
	if root == "" {
		label = os.TempDir() + " (system temp)"
	}

	dir, err := os.MkdirTemp(root, "pulsegif-doctor-")
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Output root not writable: %v", err),
			Suggestion: "Check permissions on out_dir, or remove it to use the system temp dir",
		}
	}
	_ = os.Remove(dir)

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Output root writable: " + label,
	}
}

// ColorProfileCheck reports the terminal's color capability. Frame HTML
// is unaffected; this only matters for 'pulsegif preview'.
type ColorProfileCheck struct{}

func (c *ColorProfileCheck) Name() string     { return "color_profile" }
func (c *ColorProfileCheck) Category() string { return "TERMINAL" }

func (c *ColorProfileCheck) Run() CheckResult {
	profile := termenv.NewOutput(os.Stdout).Profile

	switch profile {
	case termenv.TrueColor:
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "Terminal supports truecolor",
		}
	case termenv.ANSI256, termenv.ANSI:
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Terminal colors are limited, preview hues will be approximated",
			Suggestion: "Set COLORTERM=truecolor if your terminal supports it",
		}
	default:
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No color support detected, preview renders uncolored",
			Suggestion: "Run from an interactive terminal for colored previews",
		}
	}
}
