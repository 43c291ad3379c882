// Package builder materializes a project tree as directories and generated
// C++ files. It plans explicit file operations against composed paths (no
// working-directory changes) and hands them to the gen executor.
package builder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cppsmith/cppsmith/internal/codegen"
	"github.com/cppsmith/cppsmith/internal/gen"
	"github.com/cppsmith/cppsmith/internal/project"
)

var (
	// ErrTargetMissing means the target directory does not exist.
	ErrTargetMissing = errors.New("target directory does not exist")

	// ErrProjectExists means a directory named after the project already
	// exists inside the target. Existing content is never overwritten or
	// merged.
	ErrProjectExists = errors.New("project directory already exists")
)

// Builder plans and executes the on-disk realization of a project.
type Builder struct {
	gen *codegen.Generator
}

// New creates a builder that emits files through the given generator.
func New(g *codegen.Generator) *Builder {
	return &Builder{gen: g}
}

// Plan resolves the target directory and returns the ordered operations that
// would realize the project: the project directory, then per module (in
// insertion order) the module directory followed by one header and one
// source file per class. Precondition failures return ErrTargetMissing or
// ErrProjectExists with nothing planned.
func (b *Builder) Plan(p *project.Project, targetDir string) ([]gen.Operation, error) {
	target, err := filepath.Abs(targetDir)
	if err != nil {
		return nil, fmt.Errorf("resolving target directory: %w", err)
	}

	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrTargetMissing, target)
	}

	projectDir := filepath.Join(target, p.Name)
	if info, err := os.Stat(projectDir); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrProjectExists, projectDir)
	}

	var ops []gen.Operation
	ops = append(ops, &gen.MkdirOp{Path: projectDir})

	for _, m := range p.Modules {
		moduleDir := filepath.Join(projectDir, m.Name)
		ops = append(ops, &gen.MkdirOp{Path: moduleDir})

		for _, c := range m.Classes {
			ops = append(ops,
				&gen.WriteFileOp{
					Path:    filepath.Join(moduleDir, codegen.HeaderFileName(c.Name)),
					Content: b.gen.HeaderFile(p.Namespace, m.Name, c),
					Mode:    0644,
				},
				&gen.WriteFileOp{
					Path:    filepath.Join(moduleDir, codegen.SourceFileName(c.Name)),
					Content: b.gen.SourceFile(p.Namespace, m.Name, c),
					Mode:    0644,
				},
			)
		}
	}

	return ops, nil
}

// Build plans and executes in one step. A failure mid-walk leaves whatever
// was already written on disk; the error tells the user which operation
// failed.
func (b *Builder) Build(ctx context.Context, p *project.Project, targetDir string, opts gen.ExecuteOptions) error {
	ops, err := b.Plan(p, targetDir)
	if err != nil {
		return err
	}

	if err := gen.Execute(ctx, ops, opts); err != nil {
		return err
	}

	// Hook for build-system manifest generation (CMakeLists.txt et al.),
	// intentionally left to external tooling.
	return nil
}
