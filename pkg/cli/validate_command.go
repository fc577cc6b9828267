// Package cli implements the storelint command surface: the root
// validation run, the schema and new subcommands, release verification
// and report output.
package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fmreloaded/storelint/pkg/console"
	"github.com/fmreloaded/storelint/pkg/fileutil"
	"github.com/fmreloaded/storelint/pkg/logger"
	"github.com/fmreloaded/storelint/pkg/store"
)

var validateLog = logger.New("cli:validate_command")

// ErrValidationFailed reports that the manifest did not validate. The
// findings have already been printed, so main exits non-zero without
// printing this error again.
var ErrValidationFailed = errors.New("validation failed")

// ValidateConfig holds configuration for a validation run.
type ValidateConfig struct {
	StorePath       string
	VerifyDownloads bool
	JSONOutput      bool
	Watch           bool
	Verbose         bool
	Timeout         time.Duration

	// Client overrides the release client used when VerifyDownloads is
	// set. Tests inject stubs here; nil selects the GitHub client.
	Client ReleaseClient
}

// RunValidate executes a validation run (or a watch loop) with the
// given configuration.
func RunValidate(config ValidateConfig) error {
	validateLog.Printf("Running validate: store=%s, verify=%v, watch=%v", config.StorePath, config.VerifyDownloads, config.Watch)

	if config.Watch {
		return RunWatch(config)
	}
	return validateAndReport(config)
}

// validateAndReport runs one validation pass and prints its report.
// A manifest with errors returns ErrValidationFailed; fatal problems
// (missing file, malformed JSON) are printed in the report body and
// also return ErrValidationFailed.
func validateAndReport(config ValidateConfig) error {
	run, fatal := runValidation(config)

	if config.JSONOutput {
		if err := printJSONResult(os.Stdout, run, fatal); err != nil {
			return err
		}
	} else if fatal != nil {
		fmt.Print(renderFatal(config.StorePath, fatal))
	} else {
		fmt.Print(renderReport(run))
	}

	if fatal != nil || len(run.Errors) > 0 {
		return ErrValidationFailed
	}
	return nil
}

// runValidation performs the full check sequence against one manifest.
// The returned error is fatal (file missing, JSON malformed): no
// entry-level findings exist in that case.
func runValidation(config ValidateConfig) (*ValidationRun, error) {
	run := &ValidationRun{Path: config.StorePath}

	if !fileutil.FileExists(config.StorePath) {
		return run, fmt.Errorf("Error: %s not found at %s", baseName(config.StorePath), config.StorePath)
	}

	data, err := store.Load(config.StorePath)
	if err != nil {
		return run, err
	}

	diag := store.NewDiagnostics()
	store.ValidateStructure(data, diag)

	mods := store.Mods(data)
	run.ModCount = len(mods)
	for i, mod := range mods {
		store.ValidateEntry(mod, i+1, diag)
	}
	store.CheckDuplicates(mods, diag)

	if config.VerifyDownloads {
		client := config.Client
		if client == nil {
			client, err = NewGitHubReleaseClient(config.Timeout)
			if err != nil {
				return run, err
			}
		}
		VerifyReleases(client, mods, diag, config.Verbose)
	}

	run.Errors = diag.Errors()
	run.Warnings = diag.Warnings()
	validateLog.Printf("Validation finished: %d errors, %d warnings", len(run.Errors), len(run.Warnings))
	return run, nil
}

// verboseMessage prints a verbose-only progress note to stderr.
func verboseMessage(verbose bool, msg string) {
	if verbose {
		fmt.Fprintln(os.Stderr, console.FormatVerboseMessage(msg))
	}
}
