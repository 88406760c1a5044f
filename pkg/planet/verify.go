package planet

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Report is the outcome of verifying a planet file on disk.
type Report struct {
	Path     string
	Missing  []string // sections absent from the file, back-filled on load
	Problems []error
}

// OK reports whether the file loads cleanly and satisfies every invariant.
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

// Err joins every problem into one error, or nil.
func (r *Report) Err() error {
	return errors.Join(r.Problems...)
}

// VerifyFile checks that the file at path parses, lists sections the game would otherwise
// see defaulted, and checks the export invariants.
func VerifyFile(path string, logger hclog.Logger) *Report {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	report := &Report{Path: path}
	logger.Info("Verifying planet file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		report.Problems = append(report.Problems, &IOError{Op: "read", Path: path, Err: err})
		logger.Error("Failed to read planet file", "error", err)
		return report
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		report.Problems = append(report.Problems, &ParseError{Path: path, Err: err})
		logger.Error("Planet file is not valid JSON", "error", err)
		return report
	}
	for _, section := range Sections {
		if section == SectionPostProcessing || section == SectionHeightmap {
			continue
		}
		if _, ok := raw[section]; !ok {
			report.Missing = append(report.Missing, section)
			logger.Warn("⚠️ Section missing, defaults apply", "section", section)
		} else {
			logger.Info("✓ Section present", "section", section)
		}
	}
	if pp, ok := raw[SectionPostProcessing]; ok {
		var p PostProcessing
		if err := json.Unmarshal(pp, &p); err == nil && len(p.Keys) == 0 {
			report.Problems = append(report.Problems, &ValidationError{
				Section: SectionPostProcessing,
				Field:   "keys",
				Reason:  "section must be omitted when it has no keys",
			})
		}
	}

	doc, err := Parse(data)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Path = path
		}
		report.Problems = append(report.Problems, err)
		logger.Error("Planet file does not fit the schema", "error", err)
		return report
	}
	if err := Validate(doc); err != nil {
		report.Problems = append(report.Problems, err)
		logger.Error("Invariant violated", "error", err)
	}

	if report.OK() {
		logger.Info("✓ Planet file verification passed")
	} else {
		logger.Error("✗ Planet file verification failed", "error_count", len(report.Problems))
		for _, p := range report.Problems {
			logger.Error("  Verification error", "details", fmt.Sprint(p))
		}
	}
	return report
}
