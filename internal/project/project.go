// Package project holds the in-memory model of a C++ project: a tree of
// modules, classes, functions and member variables that the interactive
// session mutates and the builder materializes on disk.
package project

// Function is a C++ member function with an optional documentation comment.
// An empty Description means the function is undocumented.
type Function struct {
	Name        string
	Description string
}

// Class holds the public and private members of a C++ class. Variables are
// free-form declaration fragments (e.g. "Renderer* m_Renderer") and are
// emitted verbatim.
type Class struct {
	Name             string
	PublicFunctions  []Function
	PrivateFunctions []Function
	PublicVariables  []string
	PrivateVariables []string
}

// NewClass creates an empty class with the given name.
func NewClass(name string) *Class {
	return &Class{Name: name}
}

// RemoveFunction removes the first function with the given name, searching
// public members before private ones. Removing an absent name is a no-op.
func (c *Class) RemoveFunction(name string) {
	for i, fn := range c.PublicFunctions {
		if fn.Name == name {
			c.PublicFunctions = append(c.PublicFunctions[:i], c.PublicFunctions[i+1:]...)
			return
		}
	}
	for i, fn := range c.PrivateFunctions {
		if fn.Name == name {
			c.PrivateFunctions = append(c.PrivateFunctions[:i], c.PrivateFunctions[i+1:]...)
			return
		}
	}
}

// RemoveVariable removes the first variable whose declaration matches decl
// exactly, searching public members before private ones. Removing an absent
// declaration is a no-op.
func (c *Class) RemoveVariable(decl string) {
	for i, v := range c.PublicVariables {
		if v == decl {
			c.PublicVariables = append(c.PublicVariables[:i], c.PublicVariables[i+1:]...)
			return
		}
	}
	for i, v := range c.PrivateVariables {
		if v == decl {
			c.PrivateVariables = append(c.PrivateVariables[:i], c.PrivateVariables[i+1:]...)
			return
		}
	}
}

// Module groups classes under a single C++ namespace segment. The module
// name maps 1:1 to a directory on generation.
type Module struct {
	Name    string
	Classes []*Class
}

// NewModule creates an empty module with the given name.
func NewModule(name string) *Module {
	return &Module{Name: name}
}

// Class returns the first class with the given name, or nil when absent.
func (m *Module) Class(name string) *Class {
	for _, c := range m.Classes {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// RemoveClass removes the first class with the given name. Removing an
// absent name is a no-op.
func (m *Module) RemoveClass(name string) {
	for i, c := range m.Classes {
		if c.Name == name {
			m.Classes = append(m.Classes[:i], m.Classes[i+1:]...)
			return
		}
	}
}

// Project is the root of the tree. Namespace is the outer C++ namespace all
// generated code lives in; it is fixed at construction time.
type Project struct {
	Name      string
	Namespace string
	Modules   []*Module
}

// NewProject creates a project. When namespace is empty it defaults to the
// project name.
func NewProject(name, namespace string) *Project {
	if namespace == "" {
		namespace = name
	}
	return &Project{Name: name, Namespace: namespace}
}

// Module returns the first module with the given name, or nil when absent.
func (p *Project) Module(name string) *Module {
	for _, m := range p.Modules {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// RemoveModule removes the first module with the given name. Removing an
// absent name is a no-op.
func (p *Project) RemoveModule(name string) {
	for i, m := range p.Modules {
		if m.Name == name {
			p.Modules = append(p.Modules[:i], p.Modules[i+1:]...)
			return
		}
	}
}
