// This file provides the diagnostics collector used by all validators.
//
// Validation problems come in exactly two severities: errors, which fail
// the run, and warnings, which are advisory. Every check appends plain
// message strings to one of the two lists; nothing here styles or prints
// them. Messages keep their insertion order so reports are stable.

package store

import (
	"fmt"

	"github.com/fmreloaded/storelint/pkg/logger"
)

var diagnosticsLog = logger.New("store:diagnostics")

// Diagnostics collects validation errors and warnings across a run.
type Diagnostics struct {
	errors   []string
	warnings []string
}

// NewDiagnostics creates an empty diagnostics collector.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

// Errorf records a formatted error.
func (d *Diagnostics) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	diagnosticsLog.Printf("error: %s", msg)
	d.errors = append(d.errors, msg)
}

// Warningf records a formatted warning.
func (d *Diagnostics) Warningf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	diagnosticsLog.Printf("warning: %s", msg)
	d.warnings = append(d.warnings, msg)
}

// Errors returns recorded errors in insertion order.
func (d *Diagnostics) Errors() []string {
	return d.errors
}

// Warnings returns recorded warnings in insertion order.
func (d *Diagnostics) Warnings() []string {
	return d.warnings
}

// HasErrors returns true if any errors have been recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.errors) > 0
}

// ErrorCount returns the number of recorded errors.
func (d *Diagnostics) ErrorCount() int {
	return len(d.errors)
}

// WarningCount returns the number of recorded warnings.
func (d *Diagnostics) WarningCount() int {
	return len(d.warnings)
}
