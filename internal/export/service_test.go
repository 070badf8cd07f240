package export

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cheerioskun/regexninja/internal/batch"
	"github.com/cheerioskun/regexninja/internal/models"
)

func sampleReport() *models.Report {
	r := models.NewReport("cases.yaml", "go")
	r.AddCase(models.CaseResult{
		Name:   "digits",
		Result: models.Result{Pattern: `\d+`, Subject: "a1", Valid: true, Matched: true, Status: models.StatusMatch},
		Passed: true,
	})
	r.History = []string{`\d+`}
	return r
}

func TestWriteReport_Formats(t *testing.T) {
	fs := afero.NewMemMapFs()
	svc := NewService(fs)

	require.NoError(t, svc.WriteReport(sampleReport(), ExportOptions{DestinationPath: "/out/report.json"}))
	data, err := afero.ReadFile(fs, "/out/report.json")
	require.NoError(t, err)

	var decoded models.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 1, decoded.Passed)
	assert.Equal(t, "digits", decoded.Cases[0].Name)

	require.NoError(t, svc.WriteReport(sampleReport(), ExportOptions{DestinationPath: "/out/report.yml"}))
	data, err = afero.ReadFile(fs, "/out/report.yml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "source: cases.yaml")

	// Explicit format wins over the extension
	require.NoError(t, svc.WriteReport(sampleReport(), ExportOptions{DestinationPath: "/out/report.txt", Format: FormatYAML}))
	data, err = afero.ReadFile(fs, "/out/report.txt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "source:"))
}

func TestWriteReport_Overwrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	svc := NewService(fs)
	opts := ExportOptions{DestinationPath: "/r.json"}

	require.NoError(t, svc.WriteReport(sampleReport(), opts))
	err := svc.WriteReport(sampleReport(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overwrite is disabled")

	opts.Overwrite = true
	assert.NoError(t, svc.WriteReport(sampleReport(), opts))
}

func TestWriteReport_Errors(t *testing.T) {
	svc := NewService(afero.NewMemMapFs())

	assert.Error(t, svc.WriteReport(nil, ExportOptions{DestinationPath: "/r.json"}))
	assert.Error(t, svc.WriteReport(sampleReport(), ExportOptions{DestinationPath: "  "}))

	err := svc.WriteReport(sampleReport(), ExportOptions{DestinationPath: "/r.json", Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestExportHistory_ReplaysAsCaseFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	svc := NewService(fs)
	history := []string{`^[a-z]+$`, `\d{3}`}

	require.NoError(t, svc.ExportHistory(history, ExportOptions{DestinationPath: "/h/history.yaml"}))

	cf, err := batch.NewLoader(fs).Load("/h/history.yaml")
	require.NoError(t, err)
	require.Len(t, cf.Cases, 2)
	assert.Equal(t, history[0], cf.Cases[0].Pattern)
	assert.Equal(t, history[1], cf.Cases[1].Pattern)

	var raw map[string]any
	data, _ := afero.ReadFile(fs, "/h/history.yaml")
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Equal(t, 1, raw["version"])
}

func TestExportHistory_Empty(t *testing.T) {
	err := NewService(afero.NewMemMapFs()).ExportHistory(nil, ExportOptions{DestinationPath: "/x.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history is empty")
}

func TestGetExportSummary(t *testing.T) {
	s := NewService(afero.NewMemMapFs()).GetExportSummary([]string{"a", "b"}, "/x.yaml")
	assert.Equal(t, 2, s.CaseCount)
	assert.Equal(t, "/x.yaml", s.DestinationPath)
}

func TestGetDefaultExportPath(t *testing.T) {
	p, err := GetDefaultExportPath("", "")
	require.NoError(t, err)
	assert.Equal(t, "regexninja.yaml", filepath.Base(p))

	p, err = GetDefaultExportPath("report", FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "report.json", filepath.Base(p))
}
