// Package constants defines shared constant values used across storelint.
package constants

import "time"

// FileName names a well-known file that storelint reads or writes.
type FileName string

const (
	// DefaultStoreFile is the manifest validated when no path is given.
	DefaultStoreFile FileName = "mods.json"

	// ConfigFileName is the optional per-directory defaults file.
	ConfigFileName FileName = ".storelint.yml"
)

// EnvVar names an environment variable consumed by storelint.
type EnvVar string

const (
	// TokenEnvVar carries the access token attached to release API requests.
	TokenEnvVar EnvVar = "GITHUB_TOKEN"

	// TimeoutEnvVar overrides the per-request timeout, in seconds.
	TimeoutEnvVar EnvVar = "STORELINT_TIMEOUT"
)

// TagPrefix is a string prepended to a semantic version to form a release tag.
type TagPrefix string

// DefaultTagPrefix is assumed when a download block does not set tag_prefix.
const DefaultTagPrefix TagPrefix = "v"

const (
	// MaxDescriptionLength is the advisory cap on mod description length.
	// Longer descriptions produce a warning, not an error.
	MaxDescriptionLength = 200

	// DefaultRequestTimeout bounds each release API request. There are no
	// retries; a timed-out request is reported once for its entry.
	DefaultRequestTimeout = 30 * time.Second

	// MinRequestTimeout and MaxRequestTimeout bound user-supplied timeout
	// overrides from the environment or config file.
	MinRequestTimeout = 1 * time.Second
	MaxRequestTimeout = 5 * time.Minute
)
