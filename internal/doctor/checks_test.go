package doctor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStatusString(t *testing.T) {
	assert.Equal(t, "pass", StatusPass.String())
	assert.Equal(t, "warn", StatusWarn.String())
	assert.Equal(t, "fail", StatusFail.String())
	assert.Equal(t, "unknown", CheckStatus(99).String())
}

func TestCheckStatusJSON(t *testing.T) {
	data, err := StatusWarn.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"warn"`, string(data))
}

func TestCountByStatus(t *testing.T) {
	results := []CheckResult{
		{Status: StatusPass},
		{Status: StatusPass},
		{Status: StatusWarn},
		{Status: StatusFail},
	}

	counts := CountByStatus(results)
	assert.Equal(t, 2, counts[StatusPass])
	assert.Equal(t, 1, counts[StatusWarn])
	assert.Equal(t, 1, counts[StatusFail])
}

func TestHasFailuresAndIssues(t *testing.T) {
	clean := []CheckResult{{Status: StatusPass}}
	warned := []CheckResult{{Status: StatusPass}, {Status: StatusWarn}}
	failed := []CheckResult{{Status: StatusFail}}

	assert.False(t, HasFailures(clean))
	assert.False(t, HasFailures(warned))
	assert.True(t, HasFailures(failed))

	assert.False(t, HasIssues(clean))
	assert.True(t, HasIssues(warned))
	assert.True(t, HasIssues(failed))
}

func TestThemeChecksAllPass(t *testing.T) {
	checks := NewThemeChecks()
	require.Len(t, checks, 10)

	for _, result := range RunAll(checks) {
		assert.Equal(t, StatusPass, result.Status, result.Message)
	}
}

func TestThemeCheckUnknown(t *testing.T) {
	result := (&ThemeCheck{Theme: "lava"}).Run()
	assert.Equal(t, StatusFail, result.Status)
}

func TestValidHex(t *testing.T) {
	assert.True(t, validHex("#3a3a3a"))
	assert.True(t, validHex("#EF4444"))
	assert.False(t, validHex("3a3a3a"))
	assert.False(t, validHex("#3a3a3"))
	assert.False(t, validHex("#3a3a3g"))
}

func TestConfigFileCheckMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	result := (&ConfigFileCheck{}).Run()
	assert.Equal(t, StatusWarn, result.Status)
}

func TestConfigChecksWithFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(dir, ".pulsegif.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_theme: ocean\n"), 0o644))

	file := (&ConfigFileCheck{}).Run()
	assert.Equal(t, StatusPass, file.Status)
	assert.Contains(t, file.Message, ".pulsegif.yaml")

	valid := (&ConfigValidCheck{}).Run()
	assert.Equal(t, StatusPass, valid.Status)
	assert.Contains(t, valid.Message, "ocean")
}

func TestConfigValidCheckBadTheme(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(dir, ".pulsegif.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_theme: lava\n"), 0o644))

	result := (&ConfigValidCheck{}).Run()
	assert.Equal(t, StatusFail, result.Status)
}

func TestOutDirCheckWritable(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	result := (&OutDirCheck{}).Run()
	assert.Equal(t, StatusPass, result.Status)
}

func TestCollectCoversAllCategories(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	checks := Collect("")

	categories := make(map[string]bool)
	for _, check := range checks {
		categories[check.Category()] = true
	}
	assert.True(t, categories["CONFIG"])
	assert.True(t, categories["THEMES"])
	assert.True(t, categories["OUTPUT"])
	assert.True(t, categories["TERMINAL"])
}
