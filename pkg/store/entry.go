package store

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fmreloaded/storelint/pkg/constants"
	"github.com/fmreloaded/storelint/pkg/logger"
	"github.com/fmreloaded/storelint/pkg/stringutil"
)

var entryLog = logger.New("store:entry")

var validTypeNames = func() string {
	names := make([]string, len(ValidModTypes))
	for i, t := range ValidModTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}()

// ValidateEntry checks one mod entry at its 1-based catalog position.
// Every rule is evaluated independently; one bad field never hides
// another. Messages are tagged "Mod #<index> (<name>)" so they stay
// readable once aggregated across the whole store.
func ValidateEntry(v any, index int, diag *Diagnostics) {
	prefix := fmt.Sprintf("Mod #%d (%s)", index, EntryName(v))
	entryLog.Printf("Validating %s", stringutil.Truncate(prefix, 80))

	entry, ok := AsEntry(v)
	if !ok {
		diag.Errorf("%s: Entry must be a JSON object", prefix)
		return
	}

	for _, field := range RequiredFields {
		if _, present := entry[field]; !present {
			diag.Errorf("%s: Missing required field '%s'", prefix, field)
		}
	}

	if typeValue, present := entry["type"]; present && !isValidModType(typeValue) {
		diag.Errorf("%s: Invalid type '%s'. Must be one of: %s", prefix, FormatValue(typeValue), validTypeNames)
	}

	if version, present := entry["version"]; present && !isSemVerValue(version) {
		diag.Errorf("%s: Invalid version format '%s'. Must be semantic versioning (X.Y.Z)", prefix, FormatValue(version))
	}

	if homepage, present := entry["homepage"]; present && !isURLValue(homepage) {
		diag.Errorf("%s: Invalid homepage URL '%s'", prefix, FormatValue(homepage))
	}

	if changelog, present := entry["changelog_url"]; present && changelog != nil && changelog != "" && !isURLValue(changelog) {
		diag.Warningf("%s: Invalid changelog_url '%s'", prefix, FormatValue(changelog))
	}

	if _, present := entry["download_url"]; present {
		diag.Errorf("%s: 'download_url' is deprecated. Use the 'download' object instead", prefix)
	}

	if description, ok := stringField(entry, "description"); ok {
		if length := utf8.RuneCountInString(description); length > constants.MaxDescriptionLength {
			diag.Warningf("%s: Description too long (%d chars, max %d)", prefix, length, constants.MaxDescriptionLength)
		}
	}

	for _, field := range RequiredFields {
		if s, ok := stringField(entry, field); ok && strings.TrimSpace(s) == "" {
			diag.Errorf("%s: Field '%s' cannot be empty", prefix, field)
		}
	}

	for _, field := range []string{"dependencies", "conflicts"} {
		if v, present := entry[field]; present {
			if _, ok := v.([]any); !ok {
				diag.Errorf("%s: '%s' must be an array", prefix, field)
			}
		}
	}

	if notes, present := entry["install_notes"]; present {
		if _, ok := notes.(string); !ok {
			diag.Errorf("%s: 'install_notes' must be a string", prefix)
		}
	}

	validateDownload(entry, prefix, diag)

	if manifestURL, present := entry["manifest_url"]; present && !isURLValue(manifestURL) {
		diag.Errorf("%s: Invalid manifest_url '%s'", prefix, FormatValue(manifestURL))
	}

	if asset, ok := releaseAssetName(entry); ok && !strings.HasSuffix(asset, ".zip") {
		if _, present := entry["manifest_url"]; !present {
			diag.Errorf("%s: non-zip release assets require a valid manifest_url", prefix)
		}
	}
}

// isValidModType accepts the fixed type enum, compared case-insensitively.
func isValidModType(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	lowered := ModType(strings.ToLower(s))
	for _, t := range ValidModTypes {
		if lowered == t {
			return true
		}
	}
	return false
}

func isSemVerValue(v any) bool {
	s, ok := v.(string)
	return ok && stringutil.IsSemVer(s)
}

func isURLValue(v any) bool {
	s, ok := v.(string)
	return ok && stringutil.IsURL(s)
}
