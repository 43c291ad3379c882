package blueprint

import (
	"testing"

	"github.com/cppsmith/cppsmith/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBytesValid(t *testing.T) {
	data := []byte(`
apiVersion: v1
kind: Project
name: demo
modules:
  - name: core
    classes:
      - name: Engine
        public_functions:
          - name: run
            description: Spins the main loop
        private_functions:
          - name: tick
        public_variables:
          - "int m_FrameCount = 0"
        private_variables:
          - "Renderer* m_Renderer"
  - name: utils
`)

	bp, err := ParseBytes(data)
	require.NoError(t, err)

	assert.Equal(t, "v1", bp.APIVersion)
	assert.Equal(t, "demo", bp.Name)
	require.Len(t, bp.Modules, 2)

	engine := bp.Modules[0].Classes[0]
	assert.Equal(t, "Engine", engine.Name)
	require.Len(t, engine.PublicFunctions, 1)
	assert.Equal(t, "run", engine.PublicFunctions[0].Name)
	assert.Equal(t, "Spins the main loop", engine.PublicFunctions[0].Description)
	assert.Equal(t, []string{"Renderer* m_Renderer"}, engine.PrivateVariables)
}

func TestParseBytesInvalidNames(t *testing.T) {
	data := []byte(`
apiVersion: v1
kind: Project
name: "my demo!"
modules:
  - name: ""
`)

	_, err := ParseBytes(data)
	require.Error(t, err)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "not a valid identifier")
	assert.Contains(t, errs[0].Suggestion, "my_demo")
	assert.Contains(t, errs[1].Error(), "name is required")
}

func TestParseBytesUnsupportedKind(t *testing.T) {
	data := []byte(`
apiVersion: v1
kind: Library
name: demo
`)

	_, err := ParseBytes(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported kind "Library"`)
}

func TestParseBytesMissingAPIVersion(t *testing.T) {
	_, err := ParseBytes([]byte("name: demo\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apiVersion is required")
}

func TestProjectConversion(t *testing.T) {
	bp := &Blueprint{
		APIVersion: "v1",
		Kind:       "Project",
		Name:       "demo",
		Namespace:  "corp",
		Modules: []Module{
			{
				Name: "core",
				Classes: []Class{
					{
						Name:            "Engine",
						PublicFunctions: []Function{{Name: "run"}},
						PublicVariables: []string{"int m_x"},
					},
				},
			},
		},
	}

	p := bp.Project()
	assert.Equal(t, "demo", p.Name)
	assert.Equal(t, "corp", p.Namespace)
	require.Len(t, p.Modules, 1)

	c := p.Modules[0].Class("Engine")
	require.NotNil(t, c)
	assert.Equal(t, "run", c.PublicFunctions[0].Name)
	assert.Equal(t, []string{"int m_x"}, c.PublicVariables)
}

func TestProjectConversionNamespaceDefaults(t *testing.T) {
	bp := &Blueprint{APIVersion: "v1", Name: "demo"}
	p := bp.Project()
	assert.Equal(t, "demo", p.Namespace)
}

func TestRoundTripThroughProject(t *testing.T) {
	p := project.Demo("demo")

	bp := FromProject(p)
	data, err := bp.Marshal()
	require.NoError(t, err)

	parsed, err := ParseBytes(data)
	require.NoError(t, err)

	back := parsed.Project()
	require.Len(t, back.Modules, len(p.Modules))
	for i, m := range p.Modules {
		assert.Equal(t, m.Name, back.Modules[i].Name)
		require.Len(t, back.Modules[i].Classes, len(m.Classes))
		for j, c := range m.Classes {
			got := back.Modules[i].Classes[j]
			assert.Equal(t, c.Name, got.Name)
			assert.Equal(t, c.PublicFunctions, got.PublicFunctions)
			assert.Equal(t, c.PrivateFunctions, got.PrivateFunctions)
			assert.Equal(t, c.PublicVariables, got.PublicVariables)
			assert.Equal(t, c.PrivateVariables, got.PrivateVariables)
		}
	}
}
