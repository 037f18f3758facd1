package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/NoobyGains/claude-pulse/internal/config"
	"github.com/NoobyGains/claude-pulse/internal/errors"
	"github.com/NoobyGains/claude-pulse/internal/render"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// preview command flags
var (
	previewThemeFlag   string
	previewSessionFlag int
	previewWeeklyFlag  int
	previewContextFlag int
	previewResetFlag   string
	previewPlanFlag    string
	previewModelFlag   string
	previewPulseFlag   bool
	previewClaudeFlag  bool
	previewAnimateFlag bool
)

// previewCmd renders the status line in the terminal
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the status line in your terminal",
	Long: `Render one status-line snapshot with ANSI colors instead of HTML.

Flags override the preview defaults from .pulsegif.yaml. With --animate
the rainbow shimmer cycles live until you quit with q.

Examples:
  pulsegif preview
  pulsegif preview --theme ocean --session 88
  pulsegif preview --theme rainbow --animate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return previewCommand(cmd)
	},
}

func previewCommand(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return err
	}

	f := previewFrame(cmd, cfg)

	if previewAnimateFlag {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New(errors.ErrConfig,
				"--animate needs an interactive terminal",
				"Run without --animate, or from a real TTY")
		}
		return animatePreview(f)
	}

	line, err := render.StatusLineANSI(f)
	if err != nil {
		return err
	}
	fmt.Println(line)
	return nil
}

// previewFrame builds the descriptor from config defaults overlaid with
// any explicitly set flags.
func previewFrame(cmd *cobra.Command, cfg *config.Config) render.Frame {
	f := render.Frame{
		Theme:            cfg.DefaultTheme,
		SessionPct:       cfg.Preview.Session,
		WeeklyPct:        cfg.Preview.Weekly,
		ContextPct:       cfg.Preview.Context,
		ResetIn:          cfg.Preview.ResetIn,
		Plan:             cfg.Preview.Plan,
		Model:            cfg.Preview.Model,
		Index:            1,
		Total:            1,
		ShowPulseUpdate:  previewPulseFlag,
		ShowClaudeUpdate: previewClaudeFlag,
	}

	if cmd.Flags().Changed("theme") {
		f.Theme = previewThemeFlag
	}
	if cmd.Flags().Changed("session") {
		f.SessionPct = previewSessionFlag
	}
	if cmd.Flags().Changed("weekly") {
		f.WeeklyPct = previewWeeklyFlag
	}
	if cmd.Flags().Changed("context") {
		f.ContextPct = previewContextFlag
	}
	if cmd.Flags().Changed("reset") {
		f.ResetIn = previewResetFlag
	}
	if cmd.Flags().Changed("plan") {
		f.Plan = previewPlanFlag
	}
	if cmd.Flags().Changed("model") {
		f.Model = previewModelFlag
	}
	f.Rainbow = f.Theme == "rainbow"

	return f
}

// runPreviewProgram starts the animated preview loop. A variable so tests
// can substitute the terminal program.
var runPreviewProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}

// animatePreview runs the shimmer loop until the user quits.
func animatePreview(f render.Frame) error {
	if err := runPreviewProgram(newPreviewModel(f)); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Animated preview failed",
			"Run without --animate to print a single snapshot")
	}
	return nil
}

// shimmerInterval is the delay between rotation steps in animated previews.
const shimmerInterval = 120 * time.Millisecond

type shimmerTickMsg time.Time

func shimmerTick() tea.Cmd {
	return tea.Tick(shimmerInterval, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

// previewModel cycles the rotation offset to animate the shimmer.
type previewModel struct {
	frame render.Frame
}

func newPreviewModel(f render.Frame) previewModel {
	return previewModel{frame: f}
}

func (m previewModel) Init() tea.Cmd {
	return shimmerTick()
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case shimmerTickMsg:
		m.frame.Offset = (m.frame.Offset + 1) % 10
		return m, shimmerTick()
	}
	return m, nil
}

func (m previewModel) View() string {
	line, err := render.StatusLineANSI(m.frame)
	if err != nil {
		return err.Error()
	}
	return line + "\n\n  q to quit\n"
}

func init() {
	previewCmd.Flags().StringVar(&previewThemeFlag, "theme", "", "theme name (see 'pulsegif themes')")
	previewCmd.Flags().IntVar(&previewSessionFlag, "session", 0, "session usage percent")
	previewCmd.Flags().IntVar(&previewWeeklyFlag, "weekly", 0, "weekly usage percent")
	previewCmd.Flags().IntVar(&previewContextFlag, "context", 0, "context usage percent")
	previewCmd.Flags().StringVar(&previewResetFlag, "reset", "", "reset countdown, e.g. '1h 48m'")
	previewCmd.Flags().StringVar(&previewPlanFlag, "plan", "", "plan label")
	previewCmd.Flags().StringVar(&previewModelFlag, "model", "", "model label")
	previewCmd.Flags().BoolVar(&previewPulseFlag, "pulse-update", false, "show the Pulse Update badge")
	previewCmd.Flags().BoolVar(&previewClaudeFlag, "claude-update", false, "show the Claude Update badge")
	previewCmd.Flags().BoolVar(&previewAnimateFlag, "animate", false, "cycle the rainbow shimmer until quit")

	rootCmd.AddCommand(previewCmd)
}
