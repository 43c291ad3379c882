package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/cppsmith/cppsmith/internal/blueprint"
	"github.com/cppsmith/cppsmith/internal/builder"
	"github.com/cppsmith/cppsmith/internal/codegen"
	"github.com/cppsmith/cppsmith/internal/config"
	"github.com/cppsmith/cppsmith/internal/input"
	"github.com/cppsmith/cppsmith/internal/output"
	"github.com/cppsmith/cppsmith/internal/project"
	"github.com/cppsmith/cppsmith/internal/session"
	"github.com/spf13/cobra"
)

// NewCmd creates and returns the 'new' command for interactive sessions
func NewCmd() *cobra.Command {
	var demo bool
	var blueprintPath string

	cmd := &cobra.Command{
		Use:   "new [project-name]",
		Short: "Start an interactive project editing session",
		Long: `Starts an interactive session for a new C++ project.

Navigate the project, module and class menus to shape the tree, then
generate it into a target directory. Nothing is persisted between sessions
unless you start from a blueprint.

Examples:
  cppsmith new myapp
  cppsmith new myapp --demo
  cppsmith new --blueprint app.yml`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			p, err := initialProject(args, demo, blueprintPath)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			output.Verbose(fmt.Sprintf("Starting session for project: %s", p.Name))

			gen := codegen.New()
			gen.LegacyPrivateSections = cfg.LegacyPrivateSections

			nav := session.NewNavigator(p, session.NewTerminal(), builder.New(gen), cfg.TargetDir)
			if err := nav.Run(context.Background()); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "Seed the project with sample modules and classes")
	cmd.Flags().StringVar(&blueprintPath, "blueprint", "", "Seed the project from a blueprint file")

	return cmd
}

// initialProject builds the tree the session starts from: a blueprint when
// given, otherwise a fresh (or demo-seeded) project named on the command
// line or via a prompt.
func initialProject(args []string, demo bool, blueprintPath string) (*project.Project, error) {
	if blueprintPath != "" {
		bp, err := blueprint.Parse(blueprintPath)
		if err != nil {
			return nil, err
		}
		return bp.Project(), nil
	}

	var raw string
	if len(args) > 0 {
		raw = args[0]
	} else {
		raw = input.Prompt("Project name", "project1")
	}

	name := project.Sanitize(raw)
	if name == "" {
		return nil, fmt.Errorf("%q is not a valid project name", raw)
	}

	if demo {
		return project.Demo(name), nil
	}
	return project.NewProject(name, ""), nil
}
