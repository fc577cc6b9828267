//go:build !integration

package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCommandDescriptions verifies every command carries a Short
// description that starts with a capital letter and does not end with
// a period, so `storelint help` reads consistently.
func TestCommandDescriptions(t *testing.T) {
	commands := append([]*cobra.Command{rootCmd}, rootCmd.Commands()...)
	for _, cmd := range commands {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			continue
		}
		t.Run(cmd.Name(), func(t *testing.T) {
			require.NotEmpty(t, cmd.Short, "command %q has no Short description", cmd.Name())
			first := cmd.Short[:1]
			assert.Equal(t, strings.ToUpper(first), first, "Short description should start with a capital: %q", cmd.Short)
			assert.False(t, strings.HasSuffix(cmd.Short, "."), "Short description should not end with a period: %q", cmd.Short)
		})
	}
}

// TestArgumentSyntaxConsistency verifies that each command's Use line
// matches its Args validator: optional arguments in square brackets,
// and validators that actually enforce the advertised arity.
func TestArgumentSyntaxConsistency(t *testing.T) {
	tests := []struct {
		name        string
		command     *cobra.Command
		expectedUse string
		acceptArgs  []string
		rejectArgs  []string
	}{
		{
			name:        "root takes an optional path",
			command:     rootCmd,
			expectedUse: "storelint [path]",
			acceptArgs:  []string{"mods.json"},
			rejectArgs:  []string{"a.json", "b.json"},
		},
		{
			name:        "schema takes an optional path",
			command:     findCommand(t, "schema"),
			expectedUse: "schema [path]",
			acceptArgs:  []string{"mods.json"},
			rejectArgs:  []string{"a.json", "b.json"},
		},
		{
			name:        "new takes no arguments",
			command:     findCommand(t, "new"),
			expectedUse: "new",
			acceptArgs:  nil,
			rejectArgs:  []string{"extra"},
		},
		{
			name:        "version takes no arguments",
			command:     findCommand(t, "version"),
			expectedUse: "version",
			acceptArgs:  nil,
			rejectArgs:  []string{"extra"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedUse, tt.command.Use)
			assert.NoError(t, tt.command.Args(tt.command, tt.acceptArgs))
			assert.Error(t, tt.command.Args(tt.command, tt.rejectArgs))
		})
	}
}

// TestRootFlags verifies the advertised command surface exists.
func TestRootFlags(t *testing.T) {
	for _, name := range []string{"store", "verify-downloads", "json", "watch"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "root command should define --%s", name)
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))

	// Shorthands consistent with the documented surface.
	assert.Equal(t, "s", rootCmd.Flags().Lookup("store").Shorthand)
	assert.Equal(t, "j", rootCmd.Flags().Lookup("json").Shorthand)
}

// TestRootSilencesCobraNoise verifies validation failures do not
// trigger cobra's usage dump; the report already explained the failure.
func TestRootSilencesCobraNoise(t *testing.T) {
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func findCommand(t *testing.T, name string) *cobra.Command {
	t.Helper()
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == name {
			return cmd
		}
	}
	t.Fatalf("command %q not registered on root", name)
	return nil
}
