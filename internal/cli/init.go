package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/NoobyGains/claude-pulse/internal/config"
	"github.com/NoobyGains/claude-pulse/internal/errors"
	"github.com/NoobyGains/claude-pulse/internal/theme"
	"github.com/NoobyGains/claude-pulse/internal/ui"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// init command flags
var (
	initForce   bool
	initNoInput bool
)

// initCmd creates a new .pulsegif.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .pulsegif.yaml configuration",
	Long: `Initialize a pulsegif configuration file in the current directory.

Writes a .pulsegif.yaml with the built-in defaults. On an interactive
terminal you are asked to pick the default preview theme first.

Examples:
  pulsegif init
  pulsegif init --force
  pulsegif init --no-input`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce, initNoInput)
	},
}

func initCommand(force, noInput bool) error {
	cwd, err := os.Getwd()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	path := filepath.Join(cwd, config.ConfigFileName)
	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.ErrConfig,
			config.ConfigFileName+" already exists",
			"Use --force to overwrite it")
	}

	cfg := config.Default()

	if !noInput && term.IsTerminal(int(os.Stdin.Fd())) {
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default preview theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&cfg.DefaultTheme),
		))
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Theme selection aborted", "")
		}
	}

	if err := config.Write(path, cfg); err != nil {
		return err
	}

	if !Quiet() {
		fmt.Printf("%s wrote %s\n", ui.SuccessStyle.Render(ui.SymbolSuccess), path)
	}
	return nil
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNoInput, "no-input", false, "skip interactive prompts")

	rootCmd.AddCommand(initCmd)
}
