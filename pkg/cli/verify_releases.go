package cli

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"
	"golang.org/x/mod/semver"

	"github.com/fmreloaded/storelint/pkg/console"
	"github.com/fmreloaded/storelint/pkg/constants"
	"github.com/fmreloaded/storelint/pkg/logger"
	"github.com/fmreloaded/storelint/pkg/store"
)

var verifyLog = logger.New("cli:verify_releases")

// ReleaseAsset is one downloadable file attached to a release.
type ReleaseAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// Release is the subset of the GitHub release payload the verifier
// reads.
type Release struct {
	TagName string         `json:"tag_name"`
	Assets  []ReleaseAsset `json:"assets"`
}

// ReleaseClient fetches release metadata for a repository. The
// production implementation talks to the GitHub REST API; tests
// substitute stubs.
type ReleaseClient interface {
	// Release fetches the release published under the given tag.
	Release(repo, tag string) (*Release, error)
	// LatestRelease fetches the repository's latest published release.
	LatestRelease(repo string) (*Release, error)
}

type githubReleaseClient struct {
	rest *api.RESTClient
}

// NewGitHubReleaseClient creates a ReleaseClient backed by the GitHub
// REST API. A GITHUB_TOKEN from the environment is attached as the
// request credential; without one, requests are anonymous and subject
// to the API's unauthenticated rate limits.
func NewGitHubReleaseClient(timeout time.Duration) (ReleaseClient, error) {
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}
	opts := api.ClientOptions{Timeout: timeout}
	if token := os.Getenv(string(constants.TokenEnvVar)); token != "" {
		opts.AuthToken = token
	}

	rest, err := api.NewRESTClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	return &githubReleaseClient{rest: rest}, nil
}

func (c *githubReleaseClient) Release(repo, tag string) (*Release, error) {
	verifyLog.Printf("Fetching release %s for %s", tag, repo)
	var release Release
	if err := c.rest.Get(fmt.Sprintf("repos/%s/releases/tags/%s", repo, url.PathEscape(tag)), &release); err != nil {
		return nil, err
	}
	return &release, nil
}

func (c *githubReleaseClient) LatestRelease(repo string) (*Release, error) {
	verifyLog.Printf("Fetching latest release for %s", repo)
	var release Release
	if err := c.rest.Get(fmt.Sprintf("repos/%s/releases/latest", repo), &release); err != nil {
		return nil, err
	}
	return &release, nil
}

// isNotFound reports whether err is a 404 from the release API.
func isNotFound(err error) bool {
	var httpErr *api.HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound
}

// VerifyReleases cross-checks every github_release entry against the
// hosting API, one entry at a time in catalog order. Entries whose
// download block already failed shape validation are skipped; their
// defects were reported by the static checks.
func VerifyReleases(client ReleaseClient, mods []any, diag *store.Diagnostics, verbose bool) {
	verifyLog.Printf("Verifying downloads for %d entries", len(mods))

	spinner := console.NewSpinner("Verifying downloads...")
	if !verbose {
		spinner.Start()
		defer spinner.Stop()
	}

	for i, mod := range mods {
		rd, ok := store.ReleaseDownloadFor(mod, i+1)
		if !ok {
			continue
		}
		spinner.UpdateMessage(fmt.Sprintf("Checking release for %s...", rd.Repo))
		verboseMessage(verbose, fmt.Sprintf("Checking release for %s (%s)", rd.Repo, rd.Name))
		verifyRelease(client, rd, diag)
	}
}

// verifyRelease resolves one entry's release, confirms the declared
// asset exists, and compares the declared version against the latest
// published tag.
func verifyRelease(client ReleaseClient, rd store.ReleaseDownload, diag *store.Diagnostics) {
	prefix := fmt.Sprintf("Mod #%d (%s)", rd.Index, rd.Name)

	tagName := rd.Tag
	if tagName == "" {
		tagName = rd.TagPrefix + rd.Version
	}

	var release *Release
	var err error
	if rd.Latest {
		release, err = client.LatestRelease(rd.Repo)
	} else {
		release, err = client.Release(rd.Repo, tagName)
	}
	if err != nil {
		switch {
		case rd.Latest && isNotFound(err):
			diag.Errorf("%s: No releases found for repo '%s'", prefix, rd.Repo)
		case isNotFound(err):
			diag.Errorf("%s: Release '%s' not found in repo '%s'", prefix, tagName, rd.Repo)
		default:
			diag.Errorf("%s: Failed to fetch release for repo '%s': %v", prefix, rd.Repo, err)
		}
		return
	}
	if rd.Latest {
		tagName = release.TagName
	}

	if asset, found := findAsset(release, rd.Asset); !found {
		diag.Errorf("%s: Asset '%s' not found in release %s of '%s'", prefix, rd.Asset, tagName, rd.Repo)
	} else if asset.BrowserDownloadURL == "" {
		diag.Warningf("%s: Asset '%s' in release %s has no download URL", prefix, rd.Asset, tagName)
	}

	// When the entry already asked for the latest release, its payload
	// doubles as the comparison baseline and no second fetch is made.
	latest := release
	if !rd.Latest {
		latest, err = client.LatestRelease(rd.Repo)
		if err != nil {
			diag.Warningf("%s: Could not fetch latest release for '%s' to compare versions", prefix, rd.Repo)
			return
		}
	}

	latestVersion := strings.TrimPrefix(latest.TagName, rd.TagPrefix)
	if latestVersion != rd.Version {
		diag.Warningf("%s: Version %s doesn't match latest release %s%s", prefix, rd.Version, latest.TagName, staleHint(rd.Version, latestVersion))
	}
}

func findAsset(release *Release, name string) (ReleaseAsset, bool) {
	for _, asset := range release.Assets {
		if asset.Name == name {
			return asset, true
		}
	}
	return ReleaseAsset{}, false
}

// staleHint says which side is ahead when both versions parse as
// semantic versions. The mismatch warning itself never depends on this.
func staleHint(declared, latest string) string {
	v1, v2 := "v"+declared, "v"+latest
	if !semver.IsValid(v1) || !semver.IsValid(v2) {
		return ""
	}
	switch semver.Compare(v1, v2) {
	case -1:
		return " (store is behind upstream)"
	case 1:
		return " (store is ahead of upstream)"
	}
	return ""
}
