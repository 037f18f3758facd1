package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/NoobyGains/claude-pulse/internal/theme"
	"github.com/NoobyGains/claude-pulse/internal/ui"
	"github.com/spf13/cobra"
)

// themesCmd lists the registered themes with color swatches
var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Long: `List every registered theme with its color swatches.

Tiered themes show their low/mid/high usage colors; the rainbow theme
shows its full ten-color cycle.

Examples:
  pulsegif themes
  pulsegif themes --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return themesCommand()
	},
}

// themeInfo is the JSON shape for one registry entry.
type themeInfo struct {
	Name     string   `json:"name"`
	Rotating bool     `json:"rotating"`
	Low      string   `json:"low,omitempty"`
	Mid      string   `json:"mid,omitempty"`
	High     string   `json:"high,omitempty"`
	Palette  []string `json:"palette,omitempty"`
}

func themesCommand() error {
	names := theme.Names()

	if MachineMode() {
		infos := make([]themeInfo, 0, len(names))
		for _, name := range names {
			th, err := theme.Lookup(name)
			if err != nil {
				return err
			}
			infos = append(infos, themeInfo{
				Name:     th.Name,
				Rotating: th.Rotating,
				Low:      th.Low,
				Mid:      th.Mid,
				High:     th.High,
				Palette:  th.Palette,
			})
		}
		return WriteJSONSuccess(os.Stdout, infos)
	}

	for _, name := range names {
		th, err := theme.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Printf("  %-9s %s\n", th.Name, themeSwatch(th))
	}
	return nil
}

// themeSwatch renders the theme's colors as filled blocks.
func themeSwatch(th theme.Theme) string {
	const block = "██"

	if th.Rotating {
		var b strings.Builder
		for _, color := range th.Palette {
			b.WriteString(theme.ANSIStyle(color).Render(block))
		}
		return b.String()
	}

	return theme.ANSIStyle(th.Low).Render(block) +
		theme.ANSIStyle(th.Mid).Render(block) +
		theme.ANSIStyle(th.High).Render(block) +
		ui.MutedStyle.Render("  low/mid/high")
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
