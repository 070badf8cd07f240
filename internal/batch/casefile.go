// Package batch loads YAML case files and runs every case through a session.
package batch

import "fmt"

// SupportedVersion is the only case file format version understood
const SupportedVersion = 1

// Limits applied while loading a case file
const (
	MaxCaseFileSize  = 1 * 1024 * 1024 // 1 MB
	MaxCaseCount     = 1000
	MaxPatternLength = 512
)

// CaseFile is the on-disk representation of a batch of tests
type CaseFile struct {
	Version int    `yaml:"version"`
	Cases   []Case `yaml:"cases"`
}

// Case is a single pattern/subject pair with an optional expectation
type Case struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Subject     string `yaml:"subject"`
	ExpectMatch *bool  `yaml:"expect_match,omitempty"`
}

// FromHistory builds a case file with one case per pattern, named by position.
// Subjects are left empty and no expectation is set.
func FromHistory(patterns []string) *CaseFile {
	cf := &CaseFile{
		Version: SupportedVersion,
		Cases:   make([]Case, 0, len(patterns)),
	}
	for i, p := range patterns {
		cf.Cases = append(cf.Cases, Case{
			Name:    caseName(i),
			Pattern: p,
		})
	}
	return cf
}

func caseName(i int) string {
	return fmt.Sprintf("history-%d", i+1)
}
