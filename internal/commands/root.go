package commands

import (
	"github.com/cppsmith/cppsmith"
	"github.com/cppsmith/cppsmith/internal/output"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the cppsmith CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "cppsmith",
		Short: "Interactive scaffolding tool for C++ projects",
		Long: `cppsmith builds a C++ project layout interactively and generates it to disk.

Describe your project as modules, classes, functions and member variables,
then let cppsmith create the directory structure with header and source
boilerplate:
• One directory per module, mapped to a nested namespace
• A .h/.cpp pair per class, declarations in insertion order
• Non-interactive generation from YAML blueprints`,
		Version: cppsmith.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
