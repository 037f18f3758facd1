package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Persistent flags shared by all commands
var (
	configFlag string
	jsonFlag   bool
	quietFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "pulsegif",
	Short: "Generate claude-pulse demo frames",
	Long: `pulsegif renders the claude-pulse status line into sequences of
self-contained HTML frames, ready for conversion into the demo GIFs
shown in the README.

Each run writes its frames plus a manifest.json into a fresh scratch
directory; external tooling turns the listed frames into an animation.

Examples:
  pulsegif generate
  pulsegif generate --family update --out ./frames
  pulsegif themes
  pulsegif preview --theme rainbow --animate`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if MachineMode() {
			WriteJSONFromError(os.Stderr, err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Config returns the --config flag value.
func Config() string {
	return configFlag
}

// Quiet returns true if progress output should be suppressed.
func Quiet() bool {
	return quietFlag
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress progress output")
}
