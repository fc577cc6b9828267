// Command storelint validates FM Reloaded Trusted Store manifests.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fmreloaded/storelint/pkg/cli"
	"github.com/fmreloaded/storelint/pkg/console"
	"github.com/fmreloaded/storelint/pkg/constants"
	"github.com/fmreloaded/storelint/pkg/logger"
)

var mainLog = logger.New("cmd:main")

var rootCmd = &cobra.Command{
	Use:   "storelint [path]",
	Short: "Validate FM Reloaded Trusted Store manifests",
	Long: `storelint validates a Trusted Store manifest (mods.json): structure,
field formats, cross-field consistency, and optionally whether declared
GitHub release assets actually exist upstream.

Exit status is 0 when the manifest has no errors (warnings are allowed)
and 1 when the file is missing, malformed, or fails validation.

Examples:
  storelint                          # Validate mods.json in the current directory
  storelint path/to/mods.json        # Validate a specific manifest
  storelint --verify-downloads       # Also check release assets on GitHub
  storelint --json                   # Machine-readable result for CI
  storelint --watch                  # Re-validate whenever the manifest changes`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		storeFlag, _ := cmd.Flags().GetString("store")
		verifyDownloads, _ := cmd.Flags().GetBool("verify-downloads")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		watch, _ := cmd.Flags().GetBool("watch")
		verbose, _ := cmd.Flags().GetBool("verbose")

		settings, err := cli.LoadSettings(".")
		if err != nil {
			return err
		}

		// Precedence for the manifest path: positional argument, then
		// the --store flag, then the config file, then mods.json.
		storePath := string(constants.DefaultStoreFile)
		if settings.Store != "" {
			storePath = settings.Store
		}
		if storeFlag != "" {
			storePath = storeFlag
		}
		if len(args) > 0 {
			storePath = args[0]
		}

		if !cmd.Flags().Changed("verify-downloads") {
			verifyDownloads = settings.VerifyDownloads
		}

		mainLog.Printf("Resolved store path: %s", storePath)

		return cli.RunValidate(cli.ValidateConfig{
			StorePath:       storePath,
			VerifyDownloads: verifyDownloads,
			JSONOutput:      jsonOutput,
			Watch:           watch,
			Verbose:         verbose,
			Timeout:         settings.RequestTimeout(),
		})
	},
}

func init() {
	rootCmd.Flags().StringP("store", "s", "", "Path to the store manifest (default: mods.json)")
	rootCmd.Flags().Bool("verify-downloads", false, "Verify release assets against the GitHub API")
	rootCmd.Flags().BoolP("json", "j", false, "Output the result in JSON format")
	rootCmd.Flags().Bool("watch", false, "Re-validate whenever the manifest changes")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(cli.NewSchemaCommand())
	rootCmd.AddCommand(cli.NewNewCommand())
	rootCmd.AddCommand(cli.NewVersionCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Validation findings were already printed in the report body.
		if !errors.Is(err, cli.ErrValidationFailed) {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		}
		os.Exit(1)
	}
}
