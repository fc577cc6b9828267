package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/fmreloaded/storelint/pkg/console"
	"github.com/fmreloaded/storelint/pkg/logger"
	"github.com/fmreloaded/storelint/pkg/repoutil"
	"github.com/fmreloaded/storelint/pkg/store"
	"github.com/fmreloaded/storelint/pkg/stringutil"
)

var newLog = logger.New("cli:new_command")

// NewNewCommand creates the new command, an interactive builder for a
// single mod entry.
func NewNewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Interactively build a new mod entry",
		Long: `Interactively build a new mod entry ready to paste into the store.

The wizard applies the same field checks as validation while you type,
then prints the finished entry as JSON on stdout.

Examples:
  storelint new                # Build an entry interactively
  storelint new > entry.json   # Save the entry to a file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunNew()
		},
	}
}

// RunNew drives the interactive entry builder and prints the result.
func RunNew() error {
	newLog.Print("Starting interactive entry builder")

	mod, err := collectModEntry()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errors.New("entry creation canceled")
		}
		return err
	}

	raw, err := json.MarshalIndent(mod, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode entry: %w", err)
	}

	// The finished entry still goes through the real validator so any
	// advisory findings (such as description length) reach the author.
	reportEntryFindings(raw)

	fmt.Println(string(raw))
	return nil
}

// collectModEntry runs the huh form and returns the assembled entry.
func collectModEntry() (*store.Mod, error) {
	mod := &store.Mod{Download: &store.Download{}}

	typeOptions := make([]huh.Option[store.ModType], len(store.ValidModTypes))
	for i, t := range store.ValidModTypes {
		typeOptions[i] = huh.NewOption(string(t), t)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Mod name").
				Value(&mod.Name).
				Validate(requireNonEmpty("name")),
			huh.NewInput().
				Title("Version").
				Description("Semantic versioning, for example 1.2.0").
				Value(&mod.Version).
				Validate(func(s string) error {
					if !stringutil.IsSemVer(s) {
						return errors.New("must be semantic versioning (X.Y.Z)")
					}
					return nil
				}),
			huh.NewSelect[store.ModType]().
				Title("Mod type").
				Options(typeOptions...).
				Value(&mod.Type),
			huh.NewInput().
				Title("Author").
				Value(&mod.Author).
				Validate(requireNonEmpty("author")),
			huh.NewInput().
				Title("Description").
				Description("Up to 200 characters").
				Value(&mod.Description).
				Validate(requireNonEmpty("description")),
			huh.NewInput().
				Title("Homepage URL").
				Value(&mod.Homepage).
				Validate(requireURL),
		),
		huh.NewGroup(
			huh.NewSelect[store.DownloadType]().
				Title("Download type").
				Options(
					huh.NewOption("GitHub release asset", store.DownloadTypeGitHubRelease),
					huh.NewOption("Direct URL", store.DownloadTypeDirect),
				).
				Value(&mod.Download.Type),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Repository").
				Description("owner/repo, or paste a GitHub URL").
				Value(&mod.Download.Repo).
				Validate(func(s string) error {
					if _, err := normalizeRepoInput(s); err != nil {
						return errors.New("please enter 'owner/repo' or a GitHub URL")
					}
					return nil
				}),
			huh.NewInput().
				Title("Asset filename").
				Description("Non-zip assets require a manifest_url on the entry").
				Value(&mod.Download.Asset).
				Validate(requireNonEmpty("asset")),
		).WithHideFunc(func() bool {
			return mod.Download.Type != store.DownloadTypeGitHubRelease
		}),
		huh.NewGroup(
			huh.NewInput().
				Title("Download URL").
				Value(&mod.Download.URL).
				Validate(requireURL),
		).WithHideFunc(func() bool {
			return mod.Download.Type != store.DownloadTypeDirect
		}),
		huh.NewGroup(
			huh.NewInput().
				Title("Manifest URL (optional)").
				Description("Required when the release asset is not a .zip").
				Value(&mod.ManifestURL).
				Validate(optionalURL),
			huh.NewInput().
				Title("Changelog URL (optional)").
				Value(&mod.ChangelogURL).
				Validate(optionalURL),
		),
	).WithAccessible(console.IsAccessibleMode())

	if err := form.Run(); err != nil {
		return nil, err
	}

	if mod.Download.Type == store.DownloadTypeGitHubRelease {
		slug, err := normalizeRepoInput(mod.Download.Repo)
		if err != nil {
			return nil, err
		}
		mod.Download.Repo = slug
	}
	return mod, nil
}

// normalizeRepoInput accepts either an owner/repo slug or a pasted
// GitHub repository URL and returns the slug.
func normalizeRepoInput(s string) (string, error) {
	s = strings.TrimSpace(s)
	if repoutil.IsSlug(s) {
		return s, nil
	}
	return repoutil.ParseGitHubURL(s)
}

// reportEntryFindings runs the produced entry through the validator and
// prints any findings to stderr. The wizard already blocks hard format
// mistakes, so this mostly surfaces advisory warnings.
func reportEntryFindings(raw []byte) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return
	}

	diag := store.NewDiagnostics()
	store.ValidateEntry(value, 1, diag)
	for _, msg := range diag.Errors() {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(msg))
	}
	for _, msg := range diag.Warnings() {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage(msg))
	}
}

func requireNonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

func requireURL(s string) error {
	if !stringutil.IsURL(s) {
		return errors.New("must be a URL with a scheme and host")
	}
	return nil
}

func optionalURL(s string) error {
	if s == "" {
		return nil
	}
	return requireURL(s)
}
