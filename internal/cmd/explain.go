package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cheerioskun/regexninja/internal/analyzer"
)

var exampleCount int

var explainCmd = &cobra.Command{
	Use:   "explain PATTERN",
	Short: "Explain the syntax used in a pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := args[0]
		if appConfig != nil && appConfig.Sanitize {
			pattern = analyzer.SanitizePattern(pattern)
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), analyzer.Explain(pattern))
		return err
	},
}

var exampleCmd = &cobra.Command{
	Use:   "example PATTERN",
	Short: "Generate strings the pattern accepts",
	Long: `Generate strings the pattern accepts.

Every printed example is verified against the selected engine. When no
example can be produced "Invalid regex" is printed instead.

Examples:
  regexninja example '[a-f0-9]{8}' -n 5
  regexninja example '(ab)+c' --repeat-limit 3`,
	Args: cobra.ExactArgs(1),
	RunE: runExample,
}

var visualizeCmd = &cobra.Command{
	Use:   "visualize PATTERN",
	Short: "Print a railroad diagram link for the pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), analyzer.VisualizationURL(args[0]))
		return err
	},
}

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize",
	Short: "Clean up patterns or test strings",
}

var sanitizePatternCmd = &cobra.Command{
	Use:   "pattern VALUE",
	Short: "Keep only letters, digits and regex metacharacters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), analyzer.SanitizePattern(args[0]))
		return err
	},
}

var sanitizeTextCmd = &cobra.Command{
	Use:   "text VALUE",
	Short: "Remove HTML-like tags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), analyzer.SanitizeTestString(args[0]))
		return err
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(visualizeCmd)
	rootCmd.AddCommand(sanitizeCmd)
	sanitizeCmd.AddCommand(sanitizePatternCmd)
	sanitizeCmd.AddCommand(sanitizeTextCmd)

	exampleCmd.Flags().IntVarP(&exampleCount, "count", "n", 1, "number of examples to generate")
}

func runExample(cmd *cobra.Command, args []string) error {
	if exampleCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", exampleCount)
	}

	s, err := newSession()
	if err != nil {
		return err
	}
	pattern := args[0]
	if s.Sanitizing() {
		pattern = analyzer.SanitizePattern(pattern)
	}

	out := cmd.OutOrStdout()
	for i := 0; i < exampleCount; i++ {
		example := s.Analyzer().GenerateExample(pattern)
		if _, err := fmt.Fprintln(out, example); err != nil {
			return err
		}
		// Every attempt failing once means the pattern has no usable examples
		if example == analyzer.InvalidExample {
			break
		}
	}
	return nil
}
