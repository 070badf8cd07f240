package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/cheerioskun/regexninja/internal/batch"
	"github.com/cheerioskun/regexninja/internal/models"
)

// Output formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Service writes reports and session histories to a filesystem
type Service struct {
	fs afero.Fs
}

// NewService creates a new export service
func NewService(fs afero.Fs) *Service {
	return &Service{
		fs: fs,
	}
}

// ExportOptions contains configuration for export operations
type ExportOptions struct {
	DestinationPath string
	Format          string // FormatJSON or FormatYAML; empty infers from the extension
	Overwrite       bool
}

// ExportSummary describes what a history export would write
type ExportSummary struct {
	CaseCount       int
	DestinationPath string
}

// GetExportSummary calculates what would be exported without actually exporting
func (s *Service) GetExportSummary(history []string, destPath string) *ExportSummary {
	return &ExportSummary{
		CaseCount:       len(history),
		DestinationPath: destPath,
	}
}

// WriteReport encodes report in the requested format and writes it
func (s *Service) WriteReport(report *models.Report, opts ExportOptions) error {
	if report == nil {
		return fmt.Errorf("invalid report")
	}
	data, err := Encode(report, resolveFormat(opts))
	if err != nil {
		return err
	}
	return s.writeFile(opts, data)
}

// ExportHistory writes the session history as a batch case file, which can be
// replayed with the batch command. Case files are always YAML.
func (s *Service) ExportHistory(history []string, opts ExportOptions) error {
	if len(history) == 0 {
		return fmt.Errorf("history is empty, nothing to export")
	}
	data, err := yaml.Marshal(batch.FromHistory(history))
	if err != nil {
		return fmt.Errorf("failed to encode case file: %w", err)
	}
	return s.writeFile(opts, data)
}

// Encode serializes v as JSON (indented) or YAML
func Encode(v any, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported format %q (use %s or %s)", format, FormatJSON, FormatYAML)
	}
}

func resolveFormat(opts ExportOptions) string {
	if opts.Format != "" {
		return opts.Format
	}
	switch strings.ToLower(filepath.Ext(opts.DestinationPath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// writeFile creates parent directories and writes data, honoring Overwrite
func (s *Service) writeFile(opts ExportOptions, data []byte) error {
	if err := ValidateExportPath(opts.DestinationPath); err != nil {
		return err
	}

	destDir := filepath.Dir(opts.DestinationPath)
	if err := s.fs.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", destDir, err)
	}

	if !opts.Overwrite {
		if exists, err := afero.Exists(s.fs, opts.DestinationPath); err != nil {
			return fmt.Errorf("failed to check if destination exists: %w", err)
		} else if exists {
			return fmt.Errorf("destination file exists and overwrite is disabled: %s", opts.DestinationPath)
		}
	}

	if err := afero.WriteFile(s.fs, opts.DestinationPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.DestinationPath, err)
	}
	return nil
}

// GetDefaultExportPath returns <cwd>/<name>.<ext>
func GetDefaultExportPath(name, format string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	if strings.TrimSpace(name) == "" {
		name = "regexninja"
	}
	if format == "" {
		format = FormatYAML
	}
	return filepath.Join(cwd, name+"."+format), nil
}

// ValidateExportPath performs basic validation on the export path
func ValidateExportPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("export path cannot be empty")
	}
	if strings.HasSuffix(path, string(filepath.Separator)) {
		return fmt.Errorf("export path must name a file, not a directory: %s", path)
	}
	return nil
}
