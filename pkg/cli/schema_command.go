package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fmreloaded/storelint/pkg/console"
	"github.com/fmreloaded/storelint/pkg/constants"
	"github.com/fmreloaded/storelint/pkg/logger"
	"github.com/fmreloaded/storelint/pkg/store"
)

var schemaLog = logger.New("cli:schema_command")

// SchemaConfig holds configuration for the schema command.
type SchemaConfig struct {
	StorePath   string
	PrintSchema bool
	Verbose     bool
}

// NewSchemaCommand creates the schema command.
func NewSchemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema [path]",
		Short: "Validate the store manifest against the embedded JSON Schema",
		Long: `Validate the store manifest against the embedded JSON Schema.

The schema check is a stricter, all-at-once complement to the rule
checklist the root command runs: one pass rejects structural problems
wholesale, with JSON-pointer locations instead of per-mod messages.

Examples:
  storelint schema                 # Validate mods.json in the current directory
  storelint schema path/mods.json  # Validate a specific manifest
  storelint schema --print         # Print the embedded schema document`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printSchema, _ := cmd.Flags().GetBool("print")
			verbose, _ := cmd.Flags().GetBool("verbose")

			path := string(constants.DefaultStoreFile)
			if len(args) > 0 {
				path = args[0]
			}

			return RunSchema(SchemaConfig{
				StorePath:   path,
				PrintSchema: printSchema,
				Verbose:     verbose,
			})
		},
	}

	cmd.Flags().Bool("print", false, "Print the embedded schema document instead of validating")

	return cmd
}

// RunSchema executes the schema command with the given configuration.
func RunSchema(config SchemaConfig) error {
	if config.PrintSchema {
		fmt.Print(string(store.SchemaJSON()))
		return nil
	}

	schemaLog.Printf("Schema-validating %s", config.StorePath)
	verboseMessage(config.Verbose, fmt.Sprintf("Validating %s against the store schema", config.StorePath))

	raw, err := os.ReadFile(config.StorePath)
	if err != nil {
		return err
	}

	if err := store.CheckSchema(raw); err != nil {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		return ErrValidationFailed
	}

	fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(fmt.Sprintf("%s conforms to the store schema", config.StorePath)))
	return nil
}
