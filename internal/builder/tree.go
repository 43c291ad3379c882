package builder

import (
	"strings"

	"github.com/cppsmith/cppsmith/internal/codegen"
	"github.com/cppsmith/cppsmith/internal/project"
	"github.com/ddddddO/gtree"
)

// DirectoryTree renders the directory layout the builder would create for a
// project, without touching the filesystem.
func DirectoryTree(p *project.Project) (string, error) {
	root := gtree.NewRoot(p.Name)

	for _, m := range p.Modules {
		node := root.Add(m.Name)
		for _, c := range m.Classes {
			node.Add(codegen.HeaderFileName(c.Name))
			node.Add(codegen.SourceFileName(c.Name))
		}
	}

	var b strings.Builder
	if err := gtree.OutputProgrammably(&b, root); err != nil {
		return "", err
	}

	return b.String(), nil
}
