package cli

import (
	"fmt"
	"os"

	"github.com/NoobyGains/claude-pulse/internal/config"
	"github.com/NoobyGains/claude-pulse/internal/logger"
	"github.com/NoobyGains/claude-pulse/internal/scenario"
	"github.com/NoobyGains/claude-pulse/internal/ui"
	"github.com/spf13/cobra"
)

// generate command flags
var (
	generateFamilyFlag string
	generateOutFlag    string
)

// generateCmd renders frame sequences and their manifests
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render demo frame sequences and manifests",
	Long: `Render the status-bar frame sequences to disk.

Three frame families exist:
  demo           full terminal mockup with all four usage bars
  update         bare status line with the Pulse Update badge
  claude-update  bare status line with the Claude Update badge

Each family is written into its own fresh scratch directory together
with a manifest.json listing the frame paths in order.

Examples:
  pulsegif generate
  pulsegif generate --family update
  pulsegif generate --out ./frames --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return generateCommand(generateFamilyFlag, generateOutFlag)
	},
}

func generateCommand(familyFlag, outFlag string) error {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return err
	}

	root := outFlag
	if root == "" {
		root = cfg.OutDir
	}

	log := logger.NewEnvLogger("[generate]")
	if Quiet() || MachineMode() {
		log = logger.Noop()
	}

	var results []*scenario.Result
	if familyFlag == "all" {
		if results, err = scenario.RunAll(root, log); err != nil {
			return err
		}
	} else {
		fam, err := scenario.FamilyByName(familyFlag)
		if err != nil {
			return err
		}
		res, err := scenario.Run(fam, root, log)
		if err != nil {
			return err
		}
		results = []*scenario.Result{res}
	}

	if MachineMode() {
		return WriteJSONSuccess(os.Stdout, results)
	}

	for _, res := range results {
		bar := ui.NewFrameProgress(res.FrameCount)
		fmt.Printf("%s %s  %s\n", ui.SuccessStyle.Render(ui.SymbolSuccess),
			res.Family, bar.View(res.FrameCount))
		fmt.Printf("  frames:   %s\n", ui.MutedStyle.Render(res.Dir))
		fmt.Printf("  manifest: %s\n", ui.MutedStyle.Render(res.Manifest))
		fmt.Printf("  target:   %s\n", ui.MutedStyle.Render(res.OutputGIF))
	}

	return nil
}

func init() {
	generateCmd.Flags().StringVar(&generateFamilyFlag, "family", "all", "frame family to render (demo, update, claude-update, all)")
	generateCmd.Flags().StringVar(&generateOutFlag, "out", "", "root directory for scratch output (default: system temp)")

	rootCmd.AddCommand(generateCmd)
}
