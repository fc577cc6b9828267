package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/fmreloaded/storelint/pkg/constants"
	"github.com/fmreloaded/storelint/pkg/envutil"
	"github.com/fmreloaded/storelint/pkg/logger"
)

var settingsLog = logger.New("cli:settings")

// Settings are per-directory defaults read from .storelint.yml.
// Command-line flags override these; these override built-in defaults.
type Settings struct {
	Store           string `yaml:"store"`
	VerifyDownloads bool   `yaml:"verify_downloads"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
}

// LoadSettings reads .storelint.yml from dir. A missing file yields
// empty settings and no error; a file that will not parse is an error
// so a broken config never silently degrades to defaults.
func LoadSettings(dir string) (*Settings, error) {
	path := filepath.Join(dir, string(constants.ConfigFileName))

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			settingsLog.Printf("No config file at %s, using defaults", path)
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var settings Settings
	if err := yaml.UnmarshalWithOptions(raw, &settings, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	settingsLog.Printf("Loaded config from %s: store=%q, verify=%v, timeout=%ds", path, settings.Store, settings.VerifyDownloads, settings.TimeoutSeconds)
	return &settings, nil
}

// RequestTimeout resolves the per-request timeout for release API
// calls: the STORELINT_TIMEOUT environment variable wins over the
// config file, which wins over the built-in default. Out-of-range
// values fall back to the next source down.
func (s *Settings) RequestTimeout() time.Duration {
	fallback := constants.DefaultRequestTimeout
	if s.TimeoutSeconds > 0 {
		configured := time.Duration(s.TimeoutSeconds) * time.Second
		if configured >= constants.MinRequestTimeout && configured <= constants.MaxRequestTimeout {
			fallback = configured
		} else {
			settingsLog.Printf("timeout_seconds %d outside range, using default", s.TimeoutSeconds)
		}
	}

	seconds := envutil.GetIntFromEnv(
		string(constants.TimeoutEnvVar),
		int(fallback/time.Second),
		int(constants.MinRequestTimeout/time.Second),
		int(constants.MaxRequestTimeout/time.Second),
		settingsLog,
	)
	return time.Duration(seconds) * time.Second
}
