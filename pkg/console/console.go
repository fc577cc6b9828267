// Package console formats operational messages for terminal output.
//
// Formatting is split from content: validation logic produces plain
// message strings, and the CLI layer wraps them with these helpers right
// before printing to stderr. The validation report itself is plain text
// and never passes through this package.
//
// When the ACCESSIBLE environment variable is set, icons are replaced
// with word prefixes and colors are dropped so output works well with
// screen readers.
package console

import (
	"fmt"
	"os"
)

// IsAccessibleMode reports whether accessible output was requested via
// the ACCESSIBLE environment variable.
func IsAccessibleMode() bool {
	return os.Getenv("ACCESSIBLE") != ""
}

// FormatErrorMessage formats an error message for stderr.
func FormatErrorMessage(msg string) string {
	if IsAccessibleMode() {
		return fmt.Sprintf("Error: %s", msg)
	}
	return errorStyle.Render(fmt.Sprintf("✗ %s", msg))
}

// FormatWarningMessage formats a warning message for stderr.
func FormatWarningMessage(msg string) string {
	if IsAccessibleMode() {
		return fmt.Sprintf("Warning: %s", msg)
	}
	return warningStyle.Render(fmt.Sprintf("⚠ %s", msg))
}

// FormatSuccessMessage formats a success message for stderr.
func FormatSuccessMessage(msg string) string {
	if IsAccessibleMode() {
		return fmt.Sprintf("Success: %s", msg)
	}
	return successStyle.Render(fmt.Sprintf("✓ %s", msg))
}

// FormatInfoMessage formats an informational message for stderr.
func FormatInfoMessage(msg string) string {
	if IsAccessibleMode() {
		return fmt.Sprintf("Info: %s", msg)
	}
	return infoStyle.Render(fmt.Sprintf("ℹ %s", msg))
}

// FormatProgressMessage formats a progress update for stderr.
func FormatProgressMessage(msg string) string {
	if IsAccessibleMode() {
		return fmt.Sprintf("Progress: %s", msg)
	}
	return progressStyle.Render(fmt.Sprintf("→ %s", msg))
}

// FormatVerboseMessage formats a verbose-only message for stderr.
// Verbose messages carry no icon so they read as secondary detail.
func FormatVerboseMessage(msg string) string {
	if IsAccessibleMode() {
		return msg
	}
	return verboseStyle.Render(msg)
}
