package store

import (
	"github.com/fmreloaded/storelint/pkg/constants"
	"github.com/fmreloaded/storelint/pkg/repoutil"
	"github.com/fmreloaded/storelint/pkg/stringutil"
)

// validateDownload checks the nested download descriptor. An absent
// download was already reported as a missing required field, so only
// present-but-wrong shapes are flagged here. A non-object value or an
// unknown variant stops the sub-checks.
func validateDownload(entry map[string]any, prefix string, diag *Diagnostics) {
	v, present := entry["download"]
	if !present {
		return
	}

	download, ok := v.(map[string]any)
	if !ok {
		diag.Errorf("%s: 'download' must be an object", prefix)
		return
	}

	var typeName string
	if t, present := download["type"]; present {
		typeName = FormatValue(t)
	}

	switch DownloadType(typeName) {
	case DownloadTypeGitHubRelease:
		validateReleaseDownload(download, prefix, diag)
	case DownloadTypeDirect:
		validateDirectDownload(download, prefix, diag)
	default:
		diag.Errorf("%s: Invalid download type '%s'. Must be one of: %s, %s", prefix, typeName, DownloadTypeGitHubRelease, DownloadTypeDirect)
	}
}

func validateReleaseDownload(download map[string]any, prefix string, diag *Diagnostics) {
	if repo, present := download["repo"]; !present {
		diag.Errorf("%s: download.repo is required for github_release downloads", prefix)
	} else if s, ok := repo.(string); !ok || !repoutil.IsSlug(s) {
		diag.Errorf("%s: Invalid repo format '%s'. Expected format: owner/repo", prefix, FormatValue(repo))
	}

	if asset, present := download["asset"]; !present {
		diag.Errorf("%s: download.asset is required for github_release downloads", prefix)
	} else if _, ok := asset.(string); !ok {
		diag.Errorf("%s: download.asset must be a string", prefix)
	}

	latest := false
	if v, present := download["latest"]; present {
		b, ok := v.(bool)
		if !ok {
			diag.Errorf("%s: download.latest must be a boolean", prefix)
		}
		latest = ok && b
	}

	// tag and tag_prefix only matter when a specific release will be
	// resolved; with latest they are ignored entirely.
	if !latest {
		if tag, present := download["tag"]; present {
			if _, ok := tag.(string); !ok {
				diag.Errorf("%s: download.tag must be a string", prefix)
			}
		}
		if tagPrefix, present := download["tag_prefix"]; present {
			if _, ok := tagPrefix.(string); !ok {
				diag.Errorf("%s: download.tag_prefix must be a string", prefix)
			}
		}
	}
}

func validateDirectDownload(download map[string]any, prefix string, diag *Diagnostics) {
	url, present := download["url"]
	if !present {
		diag.Errorf("%s: download.url is required for direct downloads", prefix)
		return
	}
	s, ok := url.(string)
	if !ok {
		diag.Errorf("%s: download.url must be a string", prefix)
		return
	}
	if !stringutil.IsURL(s) {
		diag.Errorf("%s: Invalid download URL '%s'", prefix, s)
	}
}

// DownloadBlock returns the entry's download descriptor when present and
// an object.
func DownloadBlock(entry map[string]any) (map[string]any, bool) {
	download, ok := entry["download"].(map[string]any)
	return download, ok
}

// releaseAssetName resolves the declared asset filename for
// github_release downloads. Direct downloads have no asset name.
func releaseAssetName(entry map[string]any) (string, bool) {
	download, ok := DownloadBlock(entry)
	if !ok {
		return "", false
	}
	if t, _ := stringField(download, "type"); t != string(DownloadTypeGitHubRelease) {
		return "", false
	}
	return stringField(download, "asset")
}

// ReleaseDownload carries the resolved coordinates needed to verify one
// github_release entry against the hosting API.
type ReleaseDownload struct {
	Index     int    // 1-based catalog position
	Name      string // display name for messages
	Repo      string
	Asset     string
	Version   string // declared mod version
	Latest    bool
	Tag       string // explicit tag, empty when not given
	TagPrefix string
}

// ReleaseDownloadFor extracts verification coordinates from a raw entry.
// Entries that are not github_release downloads, or whose coordinates
// are too broken to build a request from, return false; static
// validation has already reported whatever is wrong with those.
func ReleaseDownloadFor(v any, index int) (ReleaseDownload, bool) {
	var rd ReleaseDownload

	entry, ok := AsEntry(v)
	if !ok {
		return rd, false
	}
	download, ok := DownloadBlock(entry)
	if !ok {
		return rd, false
	}
	if t, _ := stringField(download, "type"); t != string(DownloadTypeGitHubRelease) {
		return rd, false
	}

	repo, ok := stringField(download, "repo")
	if !ok || !repoutil.IsSlug(repo) {
		return rd, false
	}
	asset, ok := stringField(download, "asset")
	if !ok {
		return rd, false
	}
	version, ok := stringField(entry, "version")
	if !ok || version == "" {
		return rd, false
	}

	rd = ReleaseDownload{
		Index:     index,
		Name:      EntryName(v),
		Repo:      repo,
		Asset:     asset,
		Version:   version,
		TagPrefix: string(constants.DefaultTagPrefix),
	}
	if latest, ok := download["latest"].(bool); ok {
		rd.Latest = latest
	}
	if tag, ok := stringField(download, "tag"); ok {
		rd.Tag = tag
	}
	if tagPrefix, ok := stringField(download, "tag_prefix"); ok {
		rd.TagPrefix = tagPrefix
	}
	return rd, true
}
