// Package repoutil provides helpers for working with GitHub repository
// slugs and URLs.
package repoutil

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fmreloaded/storelint/pkg/logger"
)

var log = logger.New("repoutil:repoutil")

// Repo slugs are owner/repo where both sides use word characters, dots
// and dashes.
var slugPattern = regexp.MustCompile(`^[\w.-]+/[\w.-]+$`)

// IsSlug reports whether s is a well-formed owner/repo slug.
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// SplitRepoSlug splits a repository slug (owner/repo) into owner and repo parts.
// Returns an error if the slug format is invalid.
func SplitRepoSlug(slug string) (owner, repo string, err error) {
	log.Printf("Splitting repo slug: %s", slug)
	parts := strings.Split(slug, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		log.Printf("Invalid repo slug format: %s", slug)
		return "", "", fmt.Errorf("invalid repo format: %s", slug)
	}
	return parts[0], parts[1], nil
}

// ParseGitHubURL extracts the owner/repo slug from a GitHub URL.
// Handles both SSH (git@github.com:owner/repo.git) and HTTPS
// (https://github.com/owner/repo.git) formats.
func ParseGitHubURL(url string) (string, error) {
	log.Printf("Parsing GitHub URL: %s", url)
	var repoPath string

	if after, ok := strings.CutPrefix(url, "git@github.com:"); ok {
		repoPath = after
	} else if _, after, ok := strings.Cut(url, "github.com/"); ok {
		repoPath = after
	} else {
		return "", fmt.Errorf("URL does not appear to be a GitHub repository: %s", url)
	}

	repoPath = strings.TrimSuffix(repoPath, ".git")
	repoPath = strings.TrimSuffix(repoPath, "/")

	// Keep only the owner/repo part of deeper URLs such as
	// github.com/owner/repo/releases.
	parts := strings.Split(repoPath, "/")
	if len(parts) > 2 {
		repoPath = parts[0] + "/" + parts[1]
	}

	owner, repo, err := SplitRepoSlug(repoPath)
	if err != nil {
		return "", err
	}
	return owner + "/" + repo, nil
}
