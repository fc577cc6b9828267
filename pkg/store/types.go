// Package store validates mod store manifests.
//
// A manifest (conventionally mods.json) is decoded as raw JSON values so
// validators can tell an absent field from a wrongly-typed one from an
// empty one. The typed Mod and Download structs exist for code that
// produces entries rather than checks them.
package store

// ModType classifies what a mod changes in the game.
type ModType string

const (
	ModTypeUI         ModType = "ui"
	ModTypeBundle     ModType = "bundle"
	ModTypeCamera     ModType = "camera"
	ModTypeSkins      ModType = "skins"
	ModTypeGraphics   ModType = "graphics"
	ModTypeTactics    ModType = "tactics"
	ModTypeDatabase   ModType = "database"
	ModTypeRuleset    ModType = "ruleset"
	ModTypeEditorData ModType = "editor-data"
	ModTypeAudio      ModType = "audio"
	ModTypeMisc       ModType = "misc"
)

// ValidModTypes lists every accepted mod type, in the order used when an
// error message spells out the valid set.
var ValidModTypes = []ModType{
	ModTypeUI,
	ModTypeBundle,
	ModTypeCamera,
	ModTypeSkins,
	ModTypeGraphics,
	ModTypeTactics,
	ModTypeDatabase,
	ModTypeRuleset,
	ModTypeEditorData,
	ModTypeAudio,
	ModTypeMisc,
}

// DownloadType selects a variant of the download descriptor.
type DownloadType string

const (
	DownloadTypeGitHubRelease DownloadType = "github_release"
	DownloadTypeDirect        DownloadType = "direct"
)

// RequiredFields are the fields every mod entry must carry.
var RequiredFields = []string{
	"name",
	"version",
	"type",
	"author",
	"description",
	"homepage",
	"download",
}

// Download describes where a mod's payload lives. For github_release
// downloads Repo and Asset identify the release asset; for direct
// downloads URL points at the file.
type Download struct {
	Type      DownloadType `json:"type"`
	Repo      string       `json:"repo,omitempty"`
	Asset     string       `json:"asset,omitempty"`
	Latest    bool         `json:"latest,omitempty"`
	Tag       string       `json:"tag,omitempty"`
	TagPrefix string       `json:"tag_prefix,omitempty"`
	URL       string       `json:"url,omitempty"`
}

// Mod is one catalog entry in the produced (not validated) direction.
type Mod struct {
	Name         string    `json:"name"`
	Version      string    `json:"version"`
	Type         ModType   `json:"type"`
	Author       string    `json:"author"`
	Description  string    `json:"description"`
	Homepage     string    `json:"homepage"`
	Download     *Download `json:"download"`
	ChangelogURL string    `json:"changelog_url,omitempty"`
	Dependencies []string  `json:"dependencies,omitempty"`
	Conflicts    []string  `json:"conflicts,omitempty"`
	InstallNotes string    `json:"install_notes,omitempty"`
	ManifestURL  string    `json:"manifest_url,omitempty"`
}
