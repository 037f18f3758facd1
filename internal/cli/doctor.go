package cli

import (
	"fmt"
	"os"

	"github.com/NoobyGains/claude-pulse/internal/doctor"
	"github.com/NoobyGains/claude-pulse/internal/errors"
	"github.com/NoobyGains/claude-pulse/internal/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// doctorCmd diagnoses the pulsegif environment
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration and environment issues",
	Long: `Run diagnostic checks over the pulsegif environment.

Checks the effective configuration, the theme registry, the output
root, and the terminal's color capability.

Examples:
  pulsegif doctor
  pulsegif doctor --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand()
	},
}

// doctorReport is the JSON output shape for the doctor command.
type doctorReport struct {
	Categories []doctorCategory `json:"categories"`
	Summary    doctorSummary    `json:"summary"`
}

type doctorCategory struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

type doctorSummary struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	AllClear bool `json:"all_clear"`
}

// doctorCategoryOrder fixes the report's section order.
var doctorCategoryOrder = []string{"CONFIG", "THEMES", "OUTPUT", "TERMINAL"}

func doctorCommand() error {
	checks := doctor.Collect(Config())
	results := doctor.RunAll(checks)

	if MachineMode() {
		if err := WriteJSONSuccess(os.Stdout, buildDoctorReport(checks, results)); err != nil {
			return err
		}
	} else {
		printDoctorReport(checks, results)
	}

	if doctor.HasFailures(results) {
		return errors.New(errors.ErrConfig,
			"Diagnostics found failures",
			"Fix the failed checks listed above")
	}
	return nil
}

func buildDoctorReport(checks []doctor.Check, results []doctor.CheckResult) doctorReport {
	grouped := make(map[string][]doctor.CheckResult)
	for i, check := range checks {
		grouped[check.Category()] = append(grouped[check.Category()], results[i])
	}

	report := doctorReport{}
	for _, cat := range doctorCategoryOrder {
		if len(grouped[cat]) == 0 {
			continue
		}
		report.Categories = append(report.Categories, doctorCategory{
			Name:    cat,
			Results: grouped[cat],
		})
	}

	counts := doctor.CountByStatus(results)
	report.Summary = doctorSummary{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		AllClear: !doctor.HasIssues(results),
	}
	return report
}

func printDoctorReport(checks []doctor.Check, results []doctor.CheckResult) {
	warnStyle := lipgloss.NewStyle().Foreground(ui.ColorWarning)
	headerStyle := lipgloss.NewStyle().Bold(true)

	grouped := make(map[string][]int)
	for i, check := range checks {
		grouped[check.Category()] = append(grouped[check.Category()], i)
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("pulsegif Diagnostic Report"))

	for _, cat := range doctorCategoryOrder {
		indices := grouped[cat]
		if len(indices) == 0 {
			continue
		}

		fmt.Println()
		fmt.Println(headerStyle.Render(cat))
		for _, i := range indices {
			r := results[i]

			symbol := ui.SuccessStyle.Render(ui.SymbolSuccess)
			switch r.Status {
			case doctor.StatusWarn:
				symbol = warnStyle.Render("!")
			case doctor.StatusFail:
				symbol = ui.ErrorStyle.Render(ui.SymbolFail)
			}

			fmt.Printf("  %s %s\n", symbol, r.Message)
			if r.Suggestion != "" && r.Status != doctor.StatusPass {
				fmt.Printf("    %s\n", ui.MutedStyle.Render(r.Suggestion))
			}
		}
	}

	counts := doctor.CountByStatus(results)
	fmt.Println()
	fmt.Printf("%d passed, %d warnings, %d failed\n",
		counts[doctor.StatusPass], counts[doctor.StatusWarn], counts[doctor.StatusFail])
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
