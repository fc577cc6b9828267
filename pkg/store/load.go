package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fmreloaded/storelint/pkg/logger"
)

var loadLog = logger.New("store:load")

// Load reads and parses a store manifest. A file that cannot be read,
// contains malformed JSON, or whose top-level value is not an object is
// fatal for the whole run, so Load is the only place a validation
// failure surfaces as an error value rather than a diagnostic.
func Load(path string) (map[string]any, error) {
	loadLog.Printf("Loading store manifest: %s", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		loadLog.Printf("JSON parse failed: %v", err)
		return nil, fmt.Errorf("JSON syntax error: %v", err)
	}

	data, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("JSON syntax error: top-level value is not an object")
	}

	loadLog.Printf("Parsed manifest: %d top-level keys", len(data))
	return data, nil
}
