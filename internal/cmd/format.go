package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cheerioskun/regexninja/internal/export"
	"github.com/cheerioskun/regexninja/internal/models"
)

// Output formats accepted by --output
const (
	OutputPretty = "pretty"
	OutputJSON   = export.FormatJSON
	OutputYAML   = export.FormatYAML
)

// ValidOutputs lists all valid output formats.
var ValidOutputs = map[string]bool{
	OutputPretty: true,
	OutputJSON:   true,
	OutputYAML:   true,
}

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func validateOutput(format string) error {
	if !ValidOutputs[format] {
		return fmt.Errorf("unknown output format %q (use pretty, json or yaml)", format)
	}
	return nil
}

// WriteResult writes a single test result in the given format
func WriteResult(format string, res models.Result, out io.Writer) error {
	if format != OutputPretty {
		return writeEncoded(format, res, out)
	}

	var sb strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-9s", label+":")), value)
	}

	row("Pattern", res.Pattern)
	row("Subject", res.Subject)
	row("Engine", res.Engine)
	if res.Valid {
		status := passStyle.Render(res.Status)
		if !res.Matched {
			status = failStyle.Render(res.Status)
		}
		row("Status", status)
	} else {
		row("Status", failStyle.Render(models.InvalidPatternNotice))
	}
	row("Example", res.Example)
	if res.VisualizationURL != "" {
		row("Diagram", res.VisualizationURL)
	}
	sb.WriteString("\n")
	sb.WriteString(res.Explanation)
	sb.WriteString("\n")

	_, err := io.WriteString(out, sb.String())
	return err
}

// WriteReport writes a batch report summary in the given format
func WriteReport(format string, report *models.Report, out io.Writer) error {
	if format != OutputPretty {
		return writeEncoded(format, report, out)
	}

	var sb strings.Builder
	for _, c := range report.Cases {
		mark := passStyle.Render("PASS")
		if !c.Passed {
			mark = failStyle.Render("FAIL")
		}
		fmt.Fprintf(&sb, "%s %s %s", mark, c.Name, mutedStyle.Render(c.Result.Pattern))
		if c.Reason != "" {
			fmt.Fprintf(&sb, " (%s)", c.Reason)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "\n%d passed, %d failed (%s engine)\n", report.Passed, report.Failed, report.Engine)

	_, err := io.WriteString(out, sb.String())
	return err
}

func writeEncoded(format string, v any, out io.Writer) error {
	data, err := export.Encode(v, format)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
