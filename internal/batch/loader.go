package batch

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// stripPath drops the file path from fs.PathError so messages do not leak it
func stripPath(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("%s: %w", pathErr.Op, pathErr.Err)
	}
	return err
}

// Loader reads case files from a filesystem
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a loader over fsys
func NewLoader(fsys afero.Fs) *Loader {
	return &Loader{fs: fsys}
}

// Load opens, size-checks, parses and validates the case file at path.
// Only regular files are accepted.
func (l *Loader) Load(path string) (*CaseFile, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open case file: %w", stripPath(err))
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat case file: %w", stripPath(err))
	}
	if !info.Mode().IsRegular() {
		return nil, errors.New("case file must be a regular file")
	}
	if info.Size() == 0 {
		return nil, errors.New("case file is empty")
	}
	if info.Size() > MaxCaseFileSize {
		return nil, fmt.Errorf("case file too large: %d bytes (max %d)", info.Size(), MaxCaseFileSize)
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxCaseFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", stripPath(err))
	}

	return Parse(data)
}

// Parse decodes and validates a case file held in memory
func Parse(data []byte) (*CaseFile, error) {
	if len(data) == 0 {
		return nil, errors.New("case file is empty")
	}
	if len(data) > MaxCaseFileSize {
		return nil, fmt.Errorf("case file too large: %d bytes (max %d)", len(data), MaxCaseFileSize)
	}

	var cf CaseFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cf.Validate(); err != nil {
		return nil, err
	}
	return &cf, nil
}

// Validate checks the structure of the file. Patterns are not compiled here;
// an uncompilable pattern is a failing case, not a broken file.
func (cf *CaseFile) Validate() error {
	if cf.Version != SupportedVersion {
		return &ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (only version %d is supported)", cf.Version, SupportedVersion),
		}
	}
	if len(cf.Cases) == 0 {
		return &ValidationError{Field: "cases", Message: "at least one case is required"}
	}
	if len(cf.Cases) > MaxCaseCount {
		return &ValidationError{
			Field:   "cases",
			Message: fmt.Sprintf("too many cases (%d), maximum allowed is %d", len(cf.Cases), MaxCaseCount),
		}
	}

	seen := make(map[string]int, len(cf.Cases))
	for i, c := range cf.Cases {
		if c.Name == "" {
			return &CaseError{Index: i, Field: "name", Message: "name is required"}
		}
		if prev, ok := seen[c.Name]; ok {
			return &CaseError{
				Index:   i,
				Name:    c.Name,
				Field:   "name",
				Message: fmt.Sprintf("duplicate name (previously defined at cases[%d])", prev),
			}
		}
		seen[c.Name] = i

		if len(c.Pattern) > MaxPatternLength {
			return &CaseError{
				Index:   i,
				Name:    c.Name,
				Field:   "pattern",
				Message: fmt.Sprintf("pattern too long: %d bytes (max %d)", len(c.Pattern), MaxPatternLength),
			}
		}
	}
	return nil
}
