// Package blueprint reads and writes declarative YAML descriptions of a
// project tree. Blueprints are the non-interactive path into the builder:
// `cppsmith build app.yml` generates the same output the interactive session
// would, and a session can be seeded from one.
package blueprint

import (
	"fmt"
	"os"

	"github.com/cppsmith/cppsmith/internal/project"
	"gopkg.in/yaml.v3"
)

// Blueprint is the root document.
type Blueprint struct {
	APIVersion string   `yaml:"apiVersion"`
	Kind       string   `yaml:"kind"`
	Name       string   `yaml:"name"`
	Namespace  string   `yaml:"namespace,omitempty"`
	Modules    []Module `yaml:"modules,omitempty"`
}

// Module describes one module and its classes.
type Module struct {
	Name    string  `yaml:"name"`
	Classes []Class `yaml:"classes,omitempty"`
}

// Class describes one class. Variables are verbatim declaration fragments.
type Class struct {
	Name             string     `yaml:"name"`
	PublicFunctions  []Function `yaml:"public_functions,omitempty"`
	PrivateFunctions []Function `yaml:"private_functions,omitempty"`
	PublicVariables  []string   `yaml:"public_variables,omitempty"`
	PrivateVariables []string   `yaml:"private_variables,omitempty"`
}

// Function describes one member function.
type Function struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// Parse reads and validates a blueprint file.
func Parse(path string) (*Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read blueprint %s: %w", path, err)
	}
	return ParseBytes(data)
}

// ParseBytes parses and validates blueprint YAML.
func ParseBytes(data []byte) (*Blueprint, error) {
	var bp Blueprint
	if err := yaml.Unmarshal(data, &bp); err != nil {
		return nil, fmt.Errorf("failed to parse blueprint: %w", err)
	}

	if err := bp.Validate(); err != nil {
		return nil, err
	}

	return &bp, nil
}

// Project converts the blueprint into the in-memory model.
func (bp *Blueprint) Project() *project.Project {
	p := project.NewProject(bp.Name, bp.Namespace)

	for _, m := range bp.Modules {
		mod := project.NewModule(m.Name)
		for _, c := range m.Classes {
			cls := project.NewClass(c.Name)
			for _, fn := range c.PublicFunctions {
				cls.PublicFunctions = append(cls.PublicFunctions, project.Function{Name: fn.Name, Description: fn.Description})
			}
			for _, fn := range c.PrivateFunctions {
				cls.PrivateFunctions = append(cls.PrivateFunctions, project.Function{Name: fn.Name, Description: fn.Description})
			}
			cls.PublicVariables = append(cls.PublicVariables, c.PublicVariables...)
			cls.PrivateVariables = append(cls.PrivateVariables, c.PrivateVariables...)
			mod.Classes = append(mod.Classes, cls)
		}
		p.Modules = append(p.Modules, mod)
	}

	return p
}

// FromProject captures the in-memory model as a blueprint document.
func FromProject(p *project.Project) *Blueprint {
	bp := &Blueprint{
		APIVersion: "v1",
		Kind:       "Project",
		Name:       p.Name,
	}
	if p.Namespace != p.Name {
		bp.Namespace = p.Namespace
	}

	for _, m := range p.Modules {
		mod := Module{Name: m.Name}
		for _, c := range m.Classes {
			cls := Class{Name: c.Name}
			for _, fn := range c.PublicFunctions {
				cls.PublicFunctions = append(cls.PublicFunctions, Function{Name: fn.Name, Description: fn.Description})
			}
			for _, fn := range c.PrivateFunctions {
				cls.PrivateFunctions = append(cls.PrivateFunctions, Function{Name: fn.Name, Description: fn.Description})
			}
			cls.PublicVariables = append(cls.PublicVariables, c.PublicVariables...)
			cls.PrivateVariables = append(cls.PrivateVariables, c.PrivateVariables...)
			mod.Classes = append(mod.Classes, cls)
		}
		bp.Modules = append(bp.Modules, mod)
	}

	return bp
}

// Marshal renders the blueprint as YAML.
func (bp *Blueprint) Marshal() ([]byte, error) {
	return yaml.Marshal(bp)
}
