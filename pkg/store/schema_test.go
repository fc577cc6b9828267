//go:build !integration

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckSchema(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		valid    bool
	}{
		{
			name:     "empty store",
			manifest: `{"version": "1.0", "mods": []}`,
			valid:    true,
		},
		{
			name: "complete entry",
			manifest: `{
				"version": "1.0",
				"mods": [{
					"name": "Tactical Vision",
					"version": "1.4.0",
					"type": "tactics",
					"author": "fmreloaded",
					"description": "Pressing tactics pack.",
					"homepage": "https://example.com/tv",
					"download": {"type": "github_release", "repo": "fmreloaded/tv", "asset": "TV.zip"}
				}]
			}`,
			valid: true,
		},
		{
			name:     "missing mods",
			manifest: `{"version": "1.0"}`,
			valid:    false,
		},
		{
			name: "bad version format",
			manifest: `{
				"mods": [{
					"name": "A", "version": "1.4", "type": "ui", "author": "x",
					"description": "d", "homepage": "https://example.com",
					"download": {"type": "direct", "url": "https://example.com/a.zip"}
				}]
			}`,
			valid: false,
		},
		{
			name: "deprecated download_url rejected",
			manifest: `{
				"mods": [{
					"name": "A", "version": "1.4.0", "type": "ui", "author": "x",
					"description": "d", "homepage": "https://example.com",
					"download": {"type": "direct", "url": "https://example.com/a.zip"},
					"download_url": "https://example.com/a.zip"
				}]
			}`,
			valid: false,
		},
		{
			name: "unknown download variant rejected",
			manifest: `{
				"mods": [{
					"name": "A", "version": "1.4.0", "type": "ui", "author": "x",
					"description": "d", "homepage": "https://example.com",
					"download": {"type": "torrent"}
				}]
			}`,
			valid: false,
		},
		{
			name:     "malformed JSON",
			manifest: `{"mods": [`,
			valid:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSchema([]byte(tt.manifest))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestSchemaJSON(t *testing.T) {
	assert.NotEmpty(t, SchemaJSON())
}
