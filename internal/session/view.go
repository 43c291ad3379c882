package session

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cppsmith/cppsmith/internal/project"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers(headers...)
}

// ProjectView renders the project and its modules as a table.
func ProjectView(p *project.Project) string {
	t := newTable("Project Name", "Modules")
	t.Row(p.Name, "")
	for _, m := range p.Modules {
		t.Row("", m.Name)
	}
	return t.String()
}

// ModuleView renders a module and its classes as a table.
func ModuleView(m *project.Module) string {
	t := newTable("Module Name", "Classes")
	t.Row(m.Name, "")
	for _, c := range m.Classes {
		t.Row("", c.Name)
	}
	return t.String()
}

// ClassView renders a class with its functions and member variables side by
// side, each tagged with its visibility.
func ClassView(c *project.Class) string {
	var fns, vars []string
	for _, fn := range c.PublicFunctions {
		fns = append(fns, fmt.Sprintf("%s (public)", fn.Name))
	}
	for _, fn := range c.PrivateFunctions {
		fns = append(fns, fmt.Sprintf("%s (private)", fn.Name))
	}
	for _, v := range c.PublicVariables {
		vars = append(vars, fmt.Sprintf("%s (public)", v))
	}
	for _, v := range c.PrivateVariables {
		vars = append(vars, fmt.Sprintf("%s (private)", v))
	}

	t := newTable("Class Name", "Functions", "Member Variables")
	t.Row(c.Name, "", "")

	rows := len(fns)
	if len(vars) > rows {
		rows = len(vars)
	}
	for i := 0; i < rows; i++ {
		var fn, v string
		if i < len(fns) {
			fn = fns[i]
		}
		if i < len(vars) {
			v = vars[i]
		}
		t.Row("", fn, v)
	}

	return t.String()
}

// Notice renders a short validation or status message shown between menus.
func Notice(msg string) string {
	return noticeStyle.Render(msg)
}
