package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cppsmith/cppsmith/internal/builder"
	"github.com/cppsmith/cppsmith/internal/gen"
	"github.com/cppsmith/cppsmith/internal/project"
)

// Menu labels. The navigator switches on these, and tests drive it with them.
const (
	MenuSelectModule  = "Select module"
	MenuAddModule     = "Add module"
	MenuRemoveModule  = "Remove module"
	MenuRenameProject = "Edit project name"
	MenuGenerate      = "Generate project"
	MenuExit          = "Exit"

	MenuSelectClass   = "Select class"
	MenuAddClass      = "Add class"
	MenuRemoveClass   = "Remove class"
	MenuRenameModule  = "Edit module name"
	MenuBackToProject = "Return to project menu"

	MenuAddFunction    = "Add function"
	MenuRemoveFunction = "Remove function"
	MenuAddVariable    = "Add variable"
	MenuRemoveVariable = "Remove variable"
	MenuRenameClass    = "Edit class name"
	MenuBackToModule   = "Return to module menu"
)

const (
	visibilityPublic  = "public"
	visibilityPrivate = "private"
)

var (
	projectChoices = []string{MenuSelectModule, MenuAddModule, MenuRemoveModule, MenuRenameProject, MenuGenerate, MenuExit}
	moduleChoices  = []string{MenuSelectClass, MenuAddClass, MenuRemoveClass, MenuRenameModule, MenuBackToProject}
	classChoices   = []string{MenuAddFunction, MenuRemoveFunction, MenuAddVariable, MenuRemoveVariable, MenuRenameClass, MenuBackToModule}
)

type navState int

const (
	stateProject navState = iota
	stateModule
	stateClass
)

// frame is one level of the navigation stack. Going back pops a frame;
// selecting a child pushes one.
type frame struct {
	state  navState
	module *project.Module
	class  *project.Class
}

// Navigator owns the project tree for the lifetime of the interactive
// session and mutates it according to menu choices from the Session port.
type Navigator struct {
	project   *project.Project
	session   Session
	builder   *builder.Builder
	targetDir string
	stack     []frame
}

// NewNavigator creates a navigator for a project. targetDir is the default
// generation target offered at the generate prompt.
func NewNavigator(p *project.Project, s Session, b *builder.Builder, targetDir string) *Navigator {
	return &Navigator{project: p, session: s, builder: b, targetDir: targetDir}
}

// Run drives the menu loop until the user confirms exit. An interrupt at the
// project level becomes an exit confirmation; anywhere deeper it is a silent
// step back to the parent menu.
func (n *Navigator) Run(ctx context.Context) error {
	n.stack = []frame{{state: stateProject}}

	for len(n.stack) > 0 {
		f := n.stack[len(n.stack)-1]

		var err error
		switch f.state {
		case stateProject:
			err = n.projectMenu(ctx)
		case stateModule:
			err = n.moduleMenu(f.module)
		case stateClass:
			err = n.classMenu(f.class)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (n *Navigator) push(f frame) {
	n.stack = append(n.stack, f)
}

func (n *Navigator) pop() {
	n.stack = n.stack[:len(n.stack)-1]
}

func (n *Navigator) projectMenu(ctx context.Context) error {
	n.session.Render(ProjectView(n.project))

	choice, err := n.session.Ask("Select option", projectChoices)
	if errors.Is(err, ErrInterrupted) {
		return n.confirmExit()
	}
	if err != nil {
		return err
	}

	switch choice {
	case MenuSelectModule:
		if len(n.project.Modules) == 0 {
			n.session.Render(Notice("The project has no modules yet"))
			return nil
		}
		names := make([]string, len(n.project.Modules))
		for i, m := range n.project.Modules {
			names[i] = m.Name
		}
		name, err := n.session.Ask("Enter module name", names)
		if errors.Is(err, ErrInterrupted) {
			return nil
		}
		if err != nil {
			return err
		}
		m := n.project.Module(name)
		if m == nil {
			n.session.Render(Notice(fmt.Sprintf("No module named %q", name)))
			return nil
		}
		n.push(frame{state: stateModule, module: m})

	case MenuAddModule:
		name, ok, err := n.askName("New module name")
		if err != nil || !ok {
			return err
		}
		if n.project.Module(name) != nil {
			n.session.Render(Notice(fmt.Sprintf("Module %q already exists", name)))
			return nil
		}
		n.project.Modules = append(n.project.Modules, project.NewModule(name))

	case MenuRemoveModule:
		name, ok, err := n.askName("Enter module name")
		if err != nil || !ok {
			return err
		}
		n.project.RemoveModule(name)

	case MenuRenameProject:
		name, ok, err := n.askName("Enter new project name")
		if err != nil || !ok {
			return err
		}
		n.project.Name = name

	case MenuGenerate:
		return n.generate(ctx)

	case MenuExit:
		return n.confirmExit()
	}

	return nil
}

func (n *Navigator) moduleMenu(m *project.Module) error {
	n.session.Render(ModuleView(m))

	choice, err := n.session.Ask("Select option", moduleChoices)
	if errors.Is(err, ErrInterrupted) {
		n.pop()
		return nil
	}
	if err != nil {
		return err
	}

	switch choice {
	case MenuSelectClass:
		if len(m.Classes) == 0 {
			n.session.Render(Notice("The module has no classes yet"))
			return nil
		}
		names := make([]string, len(m.Classes))
		for i, c := range m.Classes {
			names[i] = c.Name
		}
		name, err := n.session.Ask("Enter class name", names)
		if errors.Is(err, ErrInterrupted) {
			return nil
		}
		if err != nil {
			return err
		}
		c := m.Class(name)
		if c == nil {
			n.session.Render(Notice(fmt.Sprintf("No class named %q", name)))
			return nil
		}
		n.push(frame{state: stateClass, class: c})

	case MenuAddClass:
		name, ok, err := n.askName("New class name")
		if err != nil || !ok {
			return err
		}
		if m.Class(name) != nil {
			n.session.Render(Notice(fmt.Sprintf("Class %q already exists", name)))
			return nil
		}
		m.Classes = append(m.Classes, project.NewClass(name))

	case MenuRemoveClass:
		name, ok, err := n.askName("Enter class name")
		if err != nil || !ok {
			return err
		}
		m.RemoveClass(name)

	case MenuRenameModule:
		name, ok, err := n.askName("Enter new module name")
		if err != nil || !ok {
			return err
		}
		m.Name = name

	case MenuBackToProject:
		n.pop()
	}

	return nil
}

func (n *Navigator) classMenu(c *project.Class) error {
	n.session.Render(ClassView(c))

	choice, err := n.session.Ask("Select option", classChoices)
	if errors.Is(err, ErrInterrupted) {
		n.pop()
		return nil
	}
	if err != nil {
		return err
	}

	switch choice {
	case MenuAddFunction:
		name, ok, err := n.askName("New function name")
		if err != nil || !ok {
			return err
		}
		visibility, err := n.session.Ask("Visibility", []string{visibilityPublic, visibilityPrivate})
		if errors.Is(err, ErrInterrupted) {
			return nil
		}
		if err != nil {
			return err
		}
		description, err := n.session.Ask("Description (optional)", nil)
		if errors.Is(err, ErrInterrupted) {
			return nil
		}
		if err != nil {
			return err
		}
		fn := project.Function{Name: name, Description: strings.TrimSpace(description)}
		if visibility == visibilityPrivate {
			c.PrivateFunctions = append(c.PrivateFunctions, fn)
		} else {
			c.PublicFunctions = append(c.PublicFunctions, fn)
		}

	case MenuRemoveFunction:
		name, ok, err := n.askName("Enter function name")
		if err != nil || !ok {
			return err
		}
		c.RemoveFunction(name)

	case MenuAddVariable:
		decl, err := n.session.Ask("Variable declaration", nil)
		if errors.Is(err, ErrInterrupted) {
			return nil
		}
		if err != nil {
			return err
		}
		decl = strings.TrimSpace(decl)
		if decl == "" {
			n.session.Render(Notice("Variable declaration cannot be empty"))
			return nil
		}
		visibility, err := n.session.Ask("Visibility", []string{visibilityPublic, visibilityPrivate})
		if errors.Is(err, ErrInterrupted) {
			return nil
		}
		if err != nil {
			return err
		}
		if visibility == visibilityPrivate {
			c.PrivateVariables = append(c.PrivateVariables, decl)
		} else {
			c.PublicVariables = append(c.PublicVariables, decl)
		}

	case MenuRemoveVariable:
		decl, err := n.session.Ask("Enter variable declaration", nil)
		if errors.Is(err, ErrInterrupted) {
			return nil
		}
		if err != nil {
			return err
		}
		c.RemoveVariable(strings.TrimSpace(decl))

	case MenuRenameClass:
		name, ok, err := n.askName("Enter new class name")
		if err != nil || !ok {
			return err
		}
		c.Name = name

	case MenuBackToModule:
		n.pop()
	}

	return nil
}

// askName prompts for a raw name and sanitizes it. ok is false when the
// prompt was interrupted or the sanitized name came out empty; the caller
// stays in its menu in both cases.
func (n *Navigator) askName(prompt string) (name string, ok bool, err error) {
	raw, err := n.session.Ask(prompt, nil)
	if errors.Is(err, ErrInterrupted) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	name = project.Sanitize(raw)
	if name == "" {
		n.session.Render(Notice(fmt.Sprintf("%q is not a valid name", raw)))
		return "", false, nil
	}

	return name, true, nil
}

func (n *Navigator) confirmExit() error {
	ok, err := n.session.Confirm("Are you sure you want to exit?")
	if errors.Is(err, ErrInterrupted) {
		return nil
	}
	if err != nil {
		return err
	}
	if ok {
		n.stack = nil
	}
	return nil
}

func (n *Navigator) generate(ctx context.Context) error {
	target, err := n.session.Ask(fmt.Sprintf("Target directory (default %s)", n.targetDir), nil)
	if errors.Is(err, ErrInterrupted) {
		return nil
	}
	if err != nil {
		return err
	}

	target = strings.TrimSpace(target)
	if target == "" {
		target = n.targetDir
	}

	if err := n.builder.Build(ctx, n.project, target, gen.ExecuteOptions{}); err != nil {
		n.session.Render(Notice(fmt.Sprintf("Generation failed: %v", err)))
		return nil
	}

	n.session.Render(Notice(fmt.Sprintf("Generated project %q in %s", n.project.Name, target)))
	return nil
}
