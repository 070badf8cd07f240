package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cheerioskun/regexninja/internal/batch"
	"github.com/cheerioskun/regexninja/internal/export"
	"github.com/cheerioskun/regexninja/internal/utils"
)

var (
	reportPath      string
	reportFormat    string
	reportOverwrite bool
	batchOutput     string
)

// errCasesFailed makes the process exit non-zero without repeating the summary
var errCasesFailed = errors.New("one or more cases failed")

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Run every case in a YAML case file",
	Long: `Run every case in a YAML case file and report the outcome.

A case file looks like:

  version: 1
  cases:
    - name: email
      pattern: '^[a-z]+@[a-z]+\.com$'
      subject: 'user@example.com'
      expect_match: true

A case fails when its pattern does not compile or when expect_match is set
and disagrees with the outcome. The command exits non-zero if any case fails.

Examples:
  regexninja batch cases.yaml
  regexninja batch cases.yaml --report out/report.json
  regexninja batch cases.yaml --report report.yaml --overwrite`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&reportPath, "report", "", "write the full report to this file")
	batchCmd.Flags().StringVar(&reportFormat, "format", "", "report format: json or yaml (default from the file extension)")
	batchCmd.Flags().BoolVar(&reportOverwrite, "overwrite", false, "replace an existing report file")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", OutputPretty, "summary output format: pretty, json, yaml")
}

func runBatch(cmd *cobra.Command, args []string) error {
	if err := validateOutput(batchOutput); err != nil {
		return err
	}

	cf, err := batch.NewLoader(appFs).Load(args[0])
	if err != nil {
		return err
	}

	s, err := newSession()
	if err != nil {
		return err
	}

	report, err := batch.NewRunner(s).Run(cmd.Context(), args[0], cf)
	if err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}
	utils.Debug("batch %s: %d passed, %d failed", args[0], report.Passed, report.Failed)

	if reportPath != "" {
		opts := export.ExportOptions{
			DestinationPath: reportPath,
			Format:          reportFormat,
			Overwrite:       reportOverwrite,
		}
		if err := export.NewService(appFs).WriteReport(report, opts); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if err := WriteReport(batchOutput, report, cmd.OutOrStdout()); err != nil {
		return err
	}

	if !report.OK() {
		return errCasesFailed
	}
	return nil
}
