package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/NoobyGains/claude-pulse/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "default", cfg.DefaultTheme)
	assert.Empty(t, cfg.OutDir)
	assert.Equal(t, 62, cfg.Preview.Session)
	assert.Equal(t, "Max 20x", cfg.Preview.Plan)
	assert.Equal(t, "Opus 4.6", cfg.Preview.Model)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
default_theme: ocean
preview:
  session: 88
  weekly: 70
  context: 82
  reset_in: "0h 22m"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ocean", cfg.DefaultTheme)
	assert.Equal(t, 88, cfg.Preview.Session)
	assert.Equal(t, 70, cfg.Preview.Weekly)
	assert.Equal(t, "0h 22m", cfg.Preview.ResetIn)

	// Unset fields keep their defaults
	assert.Equal(t, "Max 20x", cfg.Preview.Plan)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), ConfigFileName))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "default_theme: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadUnknownTheme(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "default_theme: lava")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTheme))
}

func TestFindExplicit(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "default_theme: neon")

	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindExplicitMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	// Run from an empty directory with no global config reachable
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidateOutDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	err := Validate(&Config{OutDir: file})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	assert.NoError(t, Validate(&Config{OutDir: dir}))
	assert.NoError(t, Validate(&Config{}))
}

func TestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	cfg := Default()
	cfg.DefaultTheme = "candy"
	require.NoError(t, Write(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
