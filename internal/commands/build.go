package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/cppsmith/cppsmith/internal/blueprint"
	"github.com/cppsmith/cppsmith/internal/builder"
	"github.com/cppsmith/cppsmith/internal/codegen"
	"github.com/cppsmith/cppsmith/internal/config"
	"github.com/cppsmith/cppsmith/internal/gen"
	"github.com/cppsmith/cppsmith/internal/output"
	"github.com/spf13/cobra"
)

// BuildCmd creates and returns the 'build' command for non-interactive
// generation from a blueprint
func BuildCmd() *cobra.Command {
	var target string
	var dryRun, legacy bool

	cmd := &cobra.Command{
		Use:   "build [blueprint.yml]",
		Short: "Generate a project from a blueprint file",
		Long: `Generates a C++ project directly from a YAML blueprint, skipping the
interactive session.

The blueprint is validated first; generation refuses to touch a target that
already contains a directory named after the project.

Examples:
  cppsmith build app.yml
  cppsmith build app.yml --target ~/src
  cppsmith build app.yml --dry-run`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			bp, err := blueprint.Parse(args[0])
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			if target == "" {
				target = cfg.TargetDir
			}

			g := codegen.New()
			g.LegacyPrivateSections = legacy || cfg.LegacyPrivateSections

			p := bp.Project()
			output.Verbose(fmt.Sprintf("Building project %q into %s", p.Name, target))

			b := builder.New(g)
			if err := b.Build(context.Background(), p, target, gen.ExecuteOptions{DryRun: dryRun}); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			if !dryRun {
				output.Success(fmt.Sprintf("Generated project: %s", p.Name))
			}
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Target directory (defaults to cppsmith.yml target_dir)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be created without writing")
	cmd.Flags().BoolVar(&legacy, "legacy-private-sections", false, "Emit cbuilder-parity private sections")

	return cmd
}
