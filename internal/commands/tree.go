package commands

import (
	"fmt"
	"os"

	"github.com/cppsmith/cppsmith/internal/blueprint"
	"github.com/cppsmith/cppsmith/internal/builder"
	"github.com/cppsmith/cppsmith/internal/output"
	"github.com/spf13/cobra"
)

// TreeCmd creates and returns the 'tree' command for previewing the
// directory layout a blueprint would generate
func TreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree [blueprint.yml]",
		Short: "Preview the directory layout of a blueprint",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			bp, err := blueprint.Parse(args[0])
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			rendered, err := builder.DirectoryTree(bp.Project())
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			fmt.Print(rendered)
		},
	}

	return cmd
}
