package store

import (
	"fmt"
	"strconv"
)

// AsEntry narrows a raw mods element to an object. Non-object entries
// fail every structural check, so callers emit a single error instead.
func AsEntry(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// EntryName returns the display name used to tag an entry's messages:
// the name field when usable, "Unknown" when absent.
func EntryName(v any) string {
	entry, ok := AsEntry(v)
	if !ok {
		return "Unknown"
	}
	name, present := entry["name"]
	if !present {
		return "Unknown"
	}
	if s, ok := name.(string); ok {
		return s
	}
	return FormatValue(name)
}

// FormatValue renders a raw JSON value for inclusion in a message.
// Numbers print without an exponent so counts read naturally.
func FormatValue(v any) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}

// stringField returns the value of key when it is present and a string.
func stringField(m map[string]any, key string) (string, bool) {
	v, present := m[key]
	if !present {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
