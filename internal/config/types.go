package config

// Config represents the optional .pulsegif.yaml configuration file.
// The rendering core never reads it; it only shapes the CLI surface
// (output location and terminal preview defaults).
type Config struct {
	// OutDir is the root under which scratch frame directories are
	// created. Empty means the system temp directory.
	OutDir string `yaml:"out_dir" mapstructure:"out_dir"`

	// DefaultTheme is the theme used by 'pulsegif preview' when no
	// --theme flag is given.
	DefaultTheme string `yaml:"default_theme" mapstructure:"default_theme"`

	// Preview holds default usage values for the preview command.
	Preview PreviewConfig `yaml:"preview" mapstructure:"preview"`
}

// PreviewConfig supplies the status-line values shown by 'pulsegif preview'.
type PreviewConfig struct {
	Session int    `yaml:"session" mapstructure:"session"`
	Weekly  int    `yaml:"weekly" mapstructure:"weekly"`
	Context int    `yaml:"context" mapstructure:"context"`
	ResetIn string `yaml:"reset_in" mapstructure:"reset_in"`
	Plan    string `yaml:"plan" mapstructure:"plan"`
	Model   string `yaml:"model" mapstructure:"model"`
}

// Default returns the built-in configuration used when no file exists.
func Default() *Config {
	return &Config{
		DefaultTheme: "default",
		Preview: PreviewConfig{
			Session: 62,
			Weekly:  45,
			Context: 55,
			ResetIn: "1h 48m",
			Plan:    "Max 20x",
			Model:   "Opus 4.6",
		},
	}
}
