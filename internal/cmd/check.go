package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cheerioskun/regexninja/internal/utils"
)

var checkOutput string

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check PATTERN [SUBJECT]",
	Short: "Validate a pattern and test a subject string against it",
	Long: `Validate a pattern and test a subject string against it.

The result includes the match status, a plain-language explanation, a
generated example the pattern accepts and a railroad diagram link. An
invalid pattern is reported, not treated as an error.

Examples:
  regexninja check '\d+' abc123
  regexninja check '^[a-z]+@[a-z]+\.com$' user@example.com --output json
  regexninja check 'foo(?=bar)' foobar --engine ecmascript`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", OutputPretty, "output format: pretty, json, yaml")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := validateOutput(checkOutput); err != nil {
		return err
	}

	s, err := newSession()
	if err != nil {
		return err
	}

	var subject string
	if len(args) > 1 {
		subject = args[1]
	}

	res := s.Test(args[0], subject)
	utils.Debug("check: valid=%t matched=%t", res.Valid, res.Matched)

	return WriteResult(checkOutput, res, cmd.OutOrStdout())
}
