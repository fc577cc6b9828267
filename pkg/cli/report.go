package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ValidationRun captures everything a single pass over one manifest
// produced: the findings plus the counts shown in the report footer.
type ValidationRun struct {
	Path     string
	ModCount int
	Errors   []string
	Warnings []string
}

// Valid reports whether the run found no errors. Warnings never make a
// run invalid.
func (r *ValidationRun) Valid() bool {
	return len(r.Errors) == 0
}

const (
	reportTitle = "FM Reloaded Trusted Store Validator"
	rulerWidth  = 50
)

// writeHeader writes the report banner and the "Validating:" line.
func writeHeader(b *strings.Builder, path string) {
	b.WriteString(reportTitle + "\n")
	b.WriteString(strings.Repeat("=", rulerWidth) + "\n")
	fmt.Fprintf(b, "Validating: %s\n\n", path)
}

// renderReport renders the plain-text validation report for a completed
// run. The layout is stable and uncolored so it can be piped or diffed.
func renderReport(run *ValidationRun) string {
	var b strings.Builder
	writeHeader(&b, run.Path)

	b.WriteString("✓ JSON syntax valid\n")
	b.WriteString("\nValidation Results:\n")
	b.WriteString(strings.Repeat("-", rulerWidth) + "\n")

	if len(run.Errors) > 0 {
		fmt.Fprintf(&b, "\n❌ ERRORS (%d):\n", len(run.Errors))
		for _, msg := range run.Errors {
			fmt.Fprintf(&b, "  - %s\n", msg)
		}
	}

	if len(run.Warnings) > 0 {
		fmt.Fprintf(&b, "\n⚠️  WARNINGS (%d):\n", len(run.Warnings))
		for _, msg := range run.Warnings {
			fmt.Fprintf(&b, "  - %s\n", msg)
		}
	}

	switch {
	case len(run.Errors) == 0 && len(run.Warnings) == 0:
		b.WriteString("\n✅ All validations passed!\n")
		fmt.Fprintf(&b, "\nMods in store: %d\n", run.ModCount)
	case len(run.Errors) == 0:
		b.WriteString("\n✅ No errors found (warnings can be ignored)\n")
		fmt.Fprintf(&b, "\nMods in store: %d\n", run.ModCount)
	default:
		fmt.Fprintf(&b, "\n❌ Validation failed with %d error(s)\n", len(run.Errors))
	}

	return b.String()
}

// renderFatal renders the report for a run that never reached the
// checks: the file was missing or its JSON did not parse.
func renderFatal(path string, fatal error) string {
	var b strings.Builder
	writeHeader(&b, path)
	fmt.Fprintf(&b, "❌ %s\n", fatal)
	return b.String()
}

// jsonResult is the machine-readable result emitted with --json.
type jsonResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	ModCount int      `json:"mod_count"`
}

// printJSONResult writes the run as one JSON object. Fatal failures
// surface as a single error so CI consumers see a uniform shape.
func printJSONResult(w io.Writer, run *ValidationRun, fatal error) error {
	result := jsonResult{
		Valid:    fatal == nil && run.Valid(),
		Errors:   run.Errors,
		Warnings: run.Warnings,
		ModCount: run.ModCount,
	}
	if fatal != nil {
		result.Errors = []string{fatal.Error()}
	}
	if result.Errors == nil {
		result.Errors = []string{}
	}
	if result.Warnings == nil {
		result.Warnings = []string{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func baseName(path string) string {
	return filepath.Base(path)
}
