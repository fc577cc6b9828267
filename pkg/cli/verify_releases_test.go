//go:build !integration

package cli

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/stretchr/testify/assert"

	"github.com/fmreloaded/storelint/pkg/store"
)

// stubReleaseClient serves canned releases and counts lookups.
type stubReleaseClient struct {
	releases map[string]*Release // keyed "repo@tag"
	latest   map[string]*Release // keyed by repo
	errs     map[string]error    // keyed like releases/latest lookups

	releaseCalls int
	latestCalls  int
}

func (c *stubReleaseClient) Release(repo, tag string) (*Release, error) {
	c.releaseCalls++
	key := repo + "@" + tag
	if err, ok := c.errs[key]; ok {
		return nil, err
	}
	if release, ok := c.releases[key]; ok {
		return release, nil
	}
	return nil, notFoundErr()
}

func (c *stubReleaseClient) LatestRelease(repo string) (*Release, error) {
	c.latestCalls++
	if err, ok := c.errs[repo]; ok {
		return nil, err
	}
	if release, ok := c.latest[repo]; ok {
		return release, nil
	}
	return nil, notFoundErr()
}

func notFoundErr() error {
	return &api.HTTPError{StatusCode: http.StatusNotFound, Message: "Not Found"}
}

func zipAsset(name string) ReleaseAsset {
	return ReleaseAsset{
		Name:               name,
		BrowserDownloadURL: "https://github.com/owner/repo/releases/download/" + name,
	}
}

// releaseEntry builds a raw mod entry with a github_release download.
func releaseEntry(name string, download map[string]any) map[string]any {
	return map[string]any{
		"name":        name,
		"version":     "1.2.0",
		"type":        "ui",
		"author":      "fmreloaded",
		"description": "d",
		"homepage":    "https://example.com",
		"download":    download,
	}
}

func verifyOne(client ReleaseClient, entry map[string]any) *store.Diagnostics {
	diag := store.NewDiagnostics()
	VerifyReleases(client, []any{entry}, diag, false)
	return diag
}

func TestVerifyReleases_AssetPresentAndCurrent(t *testing.T) {
	client := &stubReleaseClient{
		releases: map[string]*Release{
			"owner/repo@v1.2.0": {TagName: "v1.2.0", Assets: []ReleaseAsset{zipAsset("Mod.zip")}},
		},
		latest: map[string]*Release{
			"owner/repo": {TagName: "v1.2.0", Assets: []ReleaseAsset{zipAsset("Mod.zip")}},
		},
	}

	diag := verifyOne(client, releaseEntry("Mod", map[string]any{
		"type": "github_release", "repo": "owner/repo", "asset": "Mod.zip",
	}))

	assert.Empty(t, diag.Errors())
	assert.Empty(t, diag.Warnings())
	assert.Equal(t, 1, client.releaseCalls)
	assert.Equal(t, 1, client.latestCalls)
}

func TestVerifyReleases_AssetMissing(t *testing.T) {
	client := &stubReleaseClient{
		releases: map[string]*Release{
			"owner/repo@v1.2.0": {TagName: "v1.2.0", Assets: []ReleaseAsset{zipAsset("Other.zip")}},
		},
		latest: map[string]*Release{
			"owner/repo": {TagName: "v1.2.0"},
		},
	}

	diag := verifyOne(client, releaseEntry("Mod", map[string]any{
		"type": "github_release", "repo": "owner/repo", "asset": "Mod.zip",
	}))

	assert.Equal(t, []string{"Mod #1 (Mod): Asset 'Mod.zip' not found in release v1.2.0 of 'owner/repo'"}, diag.Errors())
}

func TestVerifyReleases_AssetWithoutDownloadURL(t *testing.T) {
	client := &stubReleaseClient{
		releases: map[string]*Release{
			"owner/repo@v1.2.0": {TagName: "v1.2.0", Assets: []ReleaseAsset{{Name: "Mod.zip"}}},
		},
		latest: map[string]*Release{
			"owner/repo": {TagName: "v1.2.0"},
		},
	}

	diag := verifyOne(client, releaseEntry("Mod", map[string]any{
		"type": "github_release", "repo": "owner/repo", "asset": "Mod.zip",
	}))

	assert.Empty(t, diag.Errors())
	assert.Equal(t, []string{"Mod #1 (Mod): Asset 'Mod.zip' in release v1.2.0 has no download URL"}, diag.Warnings())
}

func TestVerifyReleases_TagNotFound(t *testing.T) {
	client := &stubReleaseClient{}

	diag := verifyOne(client, releaseEntry("Mod", map[string]any{
		"type": "github_release", "repo": "owner/repo", "asset": "Mod.zip",
	}))

	assert.Equal(t, []string{"Mod #1 (Mod): Release 'v1.2.0' not found in repo 'owner/repo'"}, diag.Errors())
	assert.Empty(t, diag.Warnings(), "verification stops for the entry after a fetch failure")
	assert.Zero(t, client.latestCalls, "no comparison fetch after the tag lookup fails")
}

func TestVerifyReleases_LatestRequested(t *testing.T) {
	client := &stubReleaseClient{
		latest: map[string]*Release{
			"owner/repo": {TagName: "v1.2.0", Assets: []ReleaseAsset{zipAsset("Mod.zip")}},
		},
	}

	diag := verifyOne(client, releaseEntry("Mod", map[string]any{
		"type": "github_release", "repo": "owner/repo", "asset": "Mod.zip", "latest": true,
	}))

	assert.Empty(t, diag.Errors())
	assert.Empty(t, diag.Warnings())
	assert.Zero(t, client.releaseCalls)
	assert.Equal(t, 1, client.latestCalls, "the latest payload doubles as the comparison baseline")
}

func TestVerifyReleases_LatestRequestedNoReleases(t *testing.T) {
	client := &stubReleaseClient{}

	diag := verifyOne(client, releaseEntry("Mod", map[string]any{
		"type": "github_release", "repo": "owner/repo", "asset": "Mod.zip", "latest": true,
	}))

	assert.Equal(t, []string{"Mod #1 (Mod): No releases found for repo 'owner/repo'"}, diag.Errors())
}

func TestVerifyReleases_ExplicitTag(t *testing.T) {
	client := &stubReleaseClient{
		releases: map[string]*Release{
			"owner/repo@release-7": {TagName: "release-7", Assets: []ReleaseAsset{zipAsset("Mod.zip")}},
		},
		latest: map[string]*Release{
			"owner/repo": {TagName: "v1.2.0"},
		},
	}

	diag := verifyOne(client, releaseEntry("Mod", map[string]any{
		"type": "github_release", "repo": "owner/repo", "asset": "Mod.zip", "tag": "release-7",
	}))

	assert.Empty(t, diag.Errors(), "explicit tag wins over tag_prefix+version")
}

func TestVerifyReleases_CustomTagPrefix(t *testing.T) {
	client := &stubReleaseClient{
		releases: map[string]*Release{
			"owner/repo@mod-1.2.0": {TagName: "mod-1.2.0", Assets: []ReleaseAsset{zipAsset("Mod.zip")}},
		},
		latest: map[string]*Release{
			"owner/repo": {TagName: "mod-1.2.0"},
		},
	}

	diag := verifyOne(client, releaseEntry("Mod", map[string]any{
		"type": "github_release", "repo": "owner/repo", "asset": "Mod.zip", "tag_prefix": "mod-",
	}))

	assert.Empty(t, diag.Errors())
	assert.Empty(t, diag.Warnings(), "prefix is stripped before comparing versions")
}

func TestVerifyReleases_StoreBehindUpstream(t *testing.T) {
	client := &stubReleaseClient{
		releases: map[string]*Release{
			"owner/repo@v1.2.0": {TagName: "v1.2.0", Assets: []ReleaseAsset{zipAsset("Mod.zip")}},
		},
		latest: map[string]*Release{
			"owner/repo": {TagName: "v2.0.0"},
		},
	}

	diag := verifyOne(client, releaseEntry("Mod", map[string]any{
		"type": "github_release", "repo": "owner/repo", "asset": "Mod.zip",
	}))

	assert.Empty(t, diag.Errors())
	assert.Equal(t, []string{"Mod #1 (Mod): Version 1.2.0 doesn't match latest release v2.0.0 (store is behind upstream)"}, diag.Warnings())
}

func TestVerifyReleases_StoreAheadOfUpstream(t *testing.T) {
	client := &stubReleaseClient{
		releases: map[string]*Release{
			"owner/repo@v1.2.0": {TagName: "v1.2.0", Assets: []ReleaseAsset{zipAsset("Mod.zip")}},
		},
		latest: map[string]*Release{
			"owner/repo": {TagName: "v1.0.0"},
		},
	}

	diag := verifyOne(client, releaseEntry("Mod", map[string]any{
		"type": "github_release", "repo": "owner/repo", "asset": "Mod.zip",
	}))

	assert.Equal(t, []string{"Mod #1 (Mod): Version 1.2.0 doesn't match latest release v1.0.0 (store is ahead of upstream)"}, diag.Warnings())
}

func TestVerifyReleases_NonSemverLatestTagNoHint(t *testing.T) {
	client := &stubReleaseClient{
		releases: map[string]*Release{
			"owner/repo@v1.2.0": {TagName: "v1.2.0", Assets: []ReleaseAsset{zipAsset("Mod.zip")}},
		},
		latest: map[string]*Release{
			"owner/repo": {TagName: "nightly"},
		},
	}

	diag := verifyOne(client, releaseEntry("Mod", map[string]any{
		"type": "github_release", "repo": "owner/repo", "asset": "Mod.zip",
	}))

	assert.Equal(t, []string{"Mod #1 (Mod): Version 1.2.0 doesn't match latest release nightly"}, diag.Warnings())
}

func TestVerifyReleases_LatestComparisonFetchFailureIsSoft(t *testing.T) {
	client := &stubReleaseClient{
		releases: map[string]*Release{
			"owner/repo@v1.2.0": {TagName: "v1.2.0", Assets: []ReleaseAsset{zipAsset("Mod.zip")}},
		},
		errs: map[string]error{
			"owner/repo": fmt.Errorf("network unreachable"),
		},
	}

	diag := verifyOne(client, releaseEntry("Mod", map[string]any{
		"type": "github_release", "repo": "owner/repo", "asset": "Mod.zip",
	}))

	assert.Empty(t, diag.Errors(), "the tag itself verified; comparison failure stays advisory")
	assert.Equal(t, []string{"Mod #1 (Mod): Could not fetch latest release for 'owner/repo' to compare versions"}, diag.Warnings())
}

func TestVerifyReleases_HTTPErrorIsGeneric(t *testing.T) {
	client := &stubReleaseClient{
		errs: map[string]error{
			"owner/repo@v1.2.0": &api.HTTPError{StatusCode: http.StatusForbidden, Message: "rate limit exceeded"},
		},
	}

	diag := verifyOne(client, releaseEntry("Mod", map[string]any{
		"type": "github_release", "repo": "owner/repo", "asset": "Mod.zip",
	}))

	assert.Len(t, diag.Errors(), 1)
	assert.Contains(t, diag.Errors()[0], "Failed to fetch release for repo 'owner/repo'")
}

func TestVerifyReleases_SkipsNonReleaseEntries(t *testing.T) {
	client := &stubReleaseClient{}
	mods := []any{
		releaseEntry("Direct", map[string]any{"type": "direct", "url": "https://example.com/a.zip"}),
		releaseEntry("Broken", map[string]any{"type": "github_release", "repo": "not a slug", "asset": "A.zip"}),
		"not even an object",
	}

	diag := store.NewDiagnostics()
	VerifyReleases(client, mods, diag, false)

	assert.Empty(t, diag.Errors(), "static validation already covers these entries")
	assert.Zero(t, client.releaseCalls+client.latestCalls)
}

func TestVerifyReleases_FailureScopedToOneEntry(t *testing.T) {
	client := &stubReleaseClient{
		releases: map[string]*Release{
			"owner/good@v1.2.0": {TagName: "v1.2.0", Assets: []ReleaseAsset{zipAsset("Good.zip")}},
		},
		latest: map[string]*Release{
			"owner/good": {TagName: "v1.2.0"},
		},
	}
	mods := []any{
		releaseEntry("Bad", map[string]any{"type": "github_release", "repo": "owner/bad", "asset": "Bad.zip"}),
		releaseEntry("Good", map[string]any{"type": "github_release", "repo": "owner/good", "asset": "Good.zip"}),
	}

	diag := store.NewDiagnostics()
	VerifyReleases(client, mods, diag, false)

	assert.Len(t, diag.Errors(), 1)
	assert.Contains(t, diag.Errors()[0], "Mod #1 (Bad)")
	assert.Empty(t, diag.Warnings(), "the second entry still verified cleanly")
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(notFoundErr()))
	assert.True(t, isNotFound(fmt.Errorf("wrapped: %w", notFoundErr())))
	assert.False(t, isNotFound(&api.HTTPError{StatusCode: http.StatusForbidden}))
	assert.False(t, isNotFound(errors.New("plain error")))
}
