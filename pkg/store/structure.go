package store

import "github.com/fmreloaded/storelint/pkg/logger"

var structureLog = logger.New("store:structure")

// ValidateStructure checks the top-level manifest shape. A missing or
// mistyped mods array makes entry-level validation impossible, so those
// two cases return immediately.
func ValidateStructure(data map[string]any, diag *Diagnostics) {
	structureLog.Print("Validating store structure")

	if _, present := data["version"]; !present {
		diag.Warningf("Missing 'version' field in store metadata")
	}

	modsValue, present := data["mods"]
	if !present {
		diag.Errorf("Missing 'mods' array in store")
		return
	}

	mods, ok := modsValue.([]any)
	if !ok {
		diag.Errorf("'mods' must be an array")
		return
	}

	if count, present := data["mod_count"]; present && !countMatches(count, len(mods)) {
		diag.Warningf("mod_count (%s) doesn't match actual count (%d)", FormatValue(count), len(mods))
	}
}

// Mods returns the manifest's entry list, or nil when mods is absent or
// not an array. Callers iterate the result directly; structural problems
// were already reported by ValidateStructure.
func Mods(data map[string]any) []any {
	mods, _ := data["mods"].([]any)
	return mods
}

// countMatches compares the advisory mod_count value against the actual
// entry count. Non-numeric values never match.
func countMatches(v any, actual int) bool {
	f, ok := v.(float64)
	return ok && f == float64(actual)
}
