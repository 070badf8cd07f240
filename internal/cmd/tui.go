package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cheerioskun/regexninja/internal/config"
	"github.com/cheerioskun/regexninja/ui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive TUI interface",
	Long: `Start the interactive terminal tester.

The TUI provides:
- Pattern and test string inputs
- Match status, explanation, generated example and diagram link
- Session history with recall
- Export of the history as a batch case file

Examples:
  regexninja tui
  regexninja tui --engine ecmascript --sanitize`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	verbose := viper.GetBool(config.KeyVerbose)
	if verbose {
		fmt.Fprintf(os.Stderr, "Engine: %s\n", s.Analyzer().Engine().Name())
		fmt.Fprintf(os.Stderr, "Starting TUI...\n")
	}

	model := ui.NewAppModel(s, appFs)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
