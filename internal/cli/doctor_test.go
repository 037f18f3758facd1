package cli

import (
	"testing"

	"github.com/NoobyGains/claude-pulse/internal/doctor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDoctorReport(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	checks := doctor.Collect("")
	results := doctor.RunAll(checks)
	report := buildDoctorReport(checks, results)

	require.NotEmpty(t, report.Categories)
	assert.Equal(t, "CONFIG", report.Categories[0].Name)

	total := report.Summary.Pass + report.Summary.Warn + report.Summary.Fail
	assert.Equal(t, len(results), total)

	// Theme registry always passes; no config file yields a warning
	assert.GreaterOrEqual(t, report.Summary.Pass, 10)
	assert.Zero(t, report.Summary.Fail)
}

func TestDoctorCommandCleanEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	assert.NoError(t, doctorCommand())
}
