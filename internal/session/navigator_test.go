package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cppsmith/cppsmith/internal/builder"
	"github.com/cppsmith/cppsmith/internal/codegen"
	"github.com/cppsmith/cppsmith/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSession feeds a navigator canned answers. Ask pops from answers,
// Confirm pops from confirms; running out of either fails the test through
// the returned error.
type scriptedSession struct {
	answers  []answer
	confirms []bool
	rendered []string
}

type answer struct {
	value string
	err   error
}

func say(values ...string) []answer {
	out := make([]answer, len(values))
	for i, v := range values {
		out[i] = answer{value: v}
	}
	return out
}

func interrupt() answer {
	return answer{err: ErrInterrupted}
}

func (s *scriptedSession) Ask(prompt string, choices []string) (string, error) {
	if len(s.answers) == 0 {
		return "", fmt.Errorf("unexpected Ask(%q)", prompt)
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a.value, a.err
}

func (s *scriptedSession) Confirm(prompt string) (bool, error) {
	if len(s.confirms) == 0 {
		return false, fmt.Errorf("unexpected Confirm(%q)", prompt)
	}
	c := s.confirms[0]
	s.confirms = s.confirms[1:]
	return c, nil
}

func (s *scriptedSession) Render(view string) {
	s.rendered = append(s.rendered, view)
}

func (s *scriptedSession) renderedText() string {
	return strings.Join(s.rendered, "\n")
}

func newNavigator(p *project.Project, s Session) *Navigator {
	return NewNavigator(p, s, builder.New(codegen.New()), ".")
}

func TestNavigatorAddModuleSanitizesName(t *testing.T) {
	p := project.NewProject("demo", "")
	s := &scriptedSession{
		answers:  say(MenuAddModule, "My Mod!", MenuExit),
		confirms: []bool{true},
	}

	err := newNavigator(p, s).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, p.Modules, 1)
	assert.Equal(t, "My_Mod", p.Modules[0].Name)
}

func TestNavigatorRefusesEmptySanitizedName(t *testing.T) {
	p := project.NewProject("demo", "")
	s := &scriptedSession{
		answers:  say(MenuAddModule, "!!!", MenuExit),
		confirms: []bool{true},
	}

	err := newNavigator(p, s).Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, p.Modules)
	assert.Contains(t, s.renderedText(), "not a valid name")
}

func TestNavigatorRefusesDuplicateModule(t *testing.T) {
	p := project.NewProject("demo", "")
	p.Modules = append(p.Modules, project.NewModule("core"))
	s := &scriptedSession{
		answers:  say(MenuAddModule, "core", MenuExit),
		confirms: []bool{true},
	}

	err := newNavigator(p, s).Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, p.Modules, 1)
	assert.Contains(t, s.renderedText(), "already exists")
}

func TestNavigatorSelectModuleAndAddClass(t *testing.T) {
	p := project.NewProject("demo", "")
	p.Modules = append(p.Modules, project.NewModule("core"))
	s := &scriptedSession{
		answers:  say(MenuSelectModule, "core", MenuAddClass, "Engine 2!", MenuBackToProject, MenuExit),
		confirms: []bool{true},
	}

	err := newNavigator(p, s).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, p.Modules[0].Classes, 1)
	assert.Equal(t, "Engine_2", p.Modules[0].Classes[0].Name)
}

func TestNavigatorSelectWithNoChildrenIsRefused(t *testing.T) {
	p := project.NewProject("demo", "")
	s := &scriptedSession{
		answers:  say(MenuSelectModule, MenuExit),
		confirms: []bool{true},
	}

	err := newNavigator(p, s).Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, s.renderedText(), "no modules")
}

func TestNavigatorRemoveAbsentClassKeepsModuleUnchanged(t *testing.T) {
	p := project.NewProject("demo", "")
	m := project.NewModule("core")
	m.Classes = append(m.Classes, project.NewClass("First"), project.NewClass("Second"))
	p.Modules = append(p.Modules, m)

	s := &scriptedSession{
		answers:  say(MenuSelectModule, "core", MenuRemoveClass, "ghost", MenuBackToProject, MenuExit),
		confirms: []bool{true},
	}

	err := newNavigator(p, s).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, m.Classes, 2)
	assert.Equal(t, "First", m.Classes[0].Name)
	assert.Equal(t, "Second", m.Classes[1].Name)
}

func TestNavigatorAddFunctionToClass(t *testing.T) {
	p := project.NewProject("demo", "")
	m := project.NewModule("core")
	m.Classes = append(m.Classes, project.NewClass("Engine"))
	p.Modules = append(p.Modules, m)

	s := &scriptedSession{
		answers: say(
			MenuSelectModule, "core",
			MenuSelectClass, "Engine",
			MenuAddFunction, "run it!", "private", "Spins the loop",
			MenuBackToModule, MenuBackToProject, MenuExit,
		),
		confirms: []bool{true},
	}

	err := newNavigator(p, s).Run(context.Background())
	require.NoError(t, err)

	c := m.Classes[0]
	require.Len(t, c.PrivateFunctions, 1)
	assert.Equal(t, "run_it", c.PrivateFunctions[0].Name)
	assert.Equal(t, "Spins the loop", c.PrivateFunctions[0].Description)
	assert.Empty(t, c.PublicFunctions)
}

func TestNavigatorAddVariableVerbatim(t *testing.T) {
	p := project.NewProject("demo", "")
	m := project.NewModule("core")
	m.Classes = append(m.Classes, project.NewClass("Engine"))
	p.Modules = append(p.Modules, m)

	s := &scriptedSession{
		answers: say(
			MenuSelectModule, "core",
			MenuSelectClass, "Engine",
			MenuAddVariable, "std::unique_ptr<State> m_State = nullptr", "public",
			MenuBackToModule, MenuBackToProject, MenuExit,
		),
		confirms: []bool{true},
	}

	err := newNavigator(p, s).Run(context.Background())
	require.NoError(t, err)

	c := m.Classes[0]
	require.Len(t, c.PublicVariables, 1)
	assert.Equal(t, "std::unique_ptr<State> m_State = nullptr", c.PublicVariables[0])
}

func TestNavigatorRenameProjectKeepsNamespace(t *testing.T) {
	p := project.NewProject("demo", "")
	s := &scriptedSession{
		answers:  say(MenuRenameProject, "better name", MenuExit),
		confirms: []bool{true},
	}

	err := newNavigator(p, s).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "better_name", p.Name)
	assert.Equal(t, "demo", p.Namespace, "namespace is fixed at construction")
}

func TestNavigatorInterruptAtProjectLevelConfirmsExit(t *testing.T) {
	p := project.NewProject("demo", "")
	s := &scriptedSession{
		answers:  []answer{interrupt()},
		confirms: []bool{true},
	}

	err := newNavigator(p, s).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, s.confirms, "interrupt must go through the exit confirmation")
}

func TestNavigatorInterruptDeclinedStaysInSession(t *testing.T) {
	p := project.NewProject("demo", "")
	s := &scriptedSession{
		answers:  append([]answer{interrupt()}, say(MenuExit)...),
		confirms: []bool{false, true},
	}

	err := newNavigator(p, s).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, s.answers, "session continued after declined exit")
}

func TestNavigatorInterruptDeeperPopsSilently(t *testing.T) {
	p := project.NewProject("demo", "")
	p.Modules = append(p.Modules, project.NewModule("core"))

	s := &scriptedSession{
		answers:  append(say(MenuSelectModule, "core"), interrupt(), say(MenuExit)[0]),
		confirms: []bool{true},
	}

	err := newNavigator(p, s).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, s.answers)
}

func TestNavigatorGenerate(t *testing.T) {
	target := t.TempDir()
	p := project.NewProject("demo", "")
	m := project.NewModule("core")
	engine := project.NewClass("Engine")
	engine.PublicFunctions = append(engine.PublicFunctions, project.Function{Name: "run"})
	m.Classes = append(m.Classes, engine)
	p.Modules = append(p.Modules, m)

	s := &scriptedSession{
		answers:  say(MenuGenerate, target, MenuExit),
		confirms: []bool{true},
	}

	err := newNavigator(p, s).Run(context.Background())
	require.NoError(t, err)

	header, readErr := os.ReadFile(filepath.Join(target, "demo", "core", "Engine.h"))
	require.NoError(t, readErr)
	assert.Contains(t, string(header), "void run();")
	assert.Contains(t, s.renderedText(), "Generated project")
}

func TestNavigatorGenerateFailureKeepsSessionUsable(t *testing.T) {
	p := project.NewProject("demo", "")
	missing := filepath.Join(t.TempDir(), "nope")

	s := &scriptedSession{
		answers:  say(MenuGenerate, missing, MenuExit),
		confirms: []bool{true},
	}

	err := newNavigator(p, s).Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, s.renderedText(), "Generation failed")
}
