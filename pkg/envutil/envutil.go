// Package envutil reads typed configuration values from environment
// variables with range validation and logged fallbacks.
package envutil

import (
	"os"
	"strconv"

	"github.com/fmreloaded/storelint/pkg/logger"
)

// GetIntFromEnv reads an integer from the named environment variable.
// Unset, unparsable, or out-of-range values fall back to defaultValue.
// The range check is inclusive on both ends. log may be nil.
func GetIntFromEnv(envVar string, defaultValue, minValue, maxValue int, log *logger.Logger) int {
	raw := os.Getenv(envVar)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		if log != nil {
			log.Printf("Invalid %s value %q, using default %d", envVar, raw, defaultValue)
		}
		return defaultValue
	}

	if value < minValue || value > maxValue {
		if log != nil {
			log.Printf("%s value %d outside range [%d, %d], using default %d", envVar, value, minValue, maxValue, defaultValue)
		}
		return defaultValue
	}

	return value
}
