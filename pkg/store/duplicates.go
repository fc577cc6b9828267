package store

import "github.com/fmreloaded/storelint/pkg/logger"

var duplicatesLog = logger.New("store:duplicates")

// CheckDuplicates flags entries reusing a name seen earlier in the
// store. Indices in the message are 0-based file positions. Entries
// without a usable name share the empty string, so several nameless
// entries collide with each other.
func CheckDuplicates(mods []any, diag *Diagnostics) {
	duplicatesLog.Printf("Checking %d entries for duplicate names", len(mods))

	firstSeen := make(map[string]int, len(mods))
	for i, v := range mods {
		name := duplicateKey(v)
		if first, seen := firstSeen[name]; seen {
			diag.Errorf("Duplicate mod name '%s' found at indices %d and %d", name, first, i)
			continue
		}
		firstSeen[name] = i
	}
}

func duplicateKey(v any) string {
	entry, ok := AsEntry(v)
	if !ok {
		return ""
	}
	name, present := entry["name"]
	if !present {
		return ""
	}
	if s, ok := name.(string); ok {
		return s
	}
	return FormatValue(name)
}
