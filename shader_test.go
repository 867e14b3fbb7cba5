package glint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glint3d/glint/core"
	"github.com/glint3d/glint/shaders"
)

func TestDefaultLibrary_BuiltinPrograms(t *testing.T) {
	library := DefaultLibrary(NewNopLogger())

	colorProg, ok := library.Lookup(ProgramVertexColor)
	require.True(t, ok)
	assert.False(t, colorProg.NeedsNormals())
	assert.NotEmpty(t, colorProg.Id())

	normalProg, ok := library.Lookup(ProgramNormalShaded)
	require.True(t, ok)
	assert.True(t, normalProg.NeedsNormals())
	assert.NotEqual(t, colorProg.Id(), normalProg.Id())

	byId, ok := library.Get(normalProg.Id())
	require.True(t, ok)
	assert.Equal(t, ProgramNormalShaded, byId.Name())
	assert.Equal(t, shaders.NormalVertGLSL, byId.VertexSource())
}

func TestShaderLibrary_RegisterRejectsDuplicates(t *testing.T) {
	library := DefaultLibrary(NewNopLogger())

	_, err := library.Register(ProgramDef{
		Name:         ProgramVertexColor,
		VertexSource: shaders.ColorVertGLSL,
		Vertex:       core.TransformVertex,
		Fragment:     core.ShadeVertexColor,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestShaderLibrary_RegisterValidatesListing(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		normals bool
		wantErr string
	}{
		{
			name:    "missing transformMatrix",
			source:  "in vec3 position;\nin vec4 vertexColor;\n",
			wantErr: "transformMatrix",
		},
		{
			name:    "missing normal when required",
			source:  shaders.ColorVertGLSL,
			normals: true,
			wantErr: `attribute "normal"`,
		},
		{
			name:    "wrong attribute type",
			source:  "in vec4 position;\nin vec4 vertexColor;\nuniform mat4 transformMatrix;\n",
			wantErr: `"position" declared as vec4`,
		},
		{
			name:    "wrong location",
			source:  "layout(location = 5) in vec3 position;\nin vec4 vertexColor;\nuniform mat4 transformMatrix;\n",
			wantErr: "location 5",
		},
		{
			name:    "wrong uniform type",
			source:  "in vec3 position;\nin vec4 vertexColor;\nuniform mat3 transformMatrix;\n",
			wantErr: "want mat4",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			library := NewShaderLibrary(nil)
			_, err := library.Register(ProgramDef{
				Name:         "broken",
				VertexSource: tc.source,
				Vertex:       core.TransformVertex,
				Fragment:     core.ShadeVertexColor,
				NeedsNormals: tc.normals,
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)

			_, ok := library.Lookup("broken")
			assert.False(t, ok, "rejected program must not be installed")
		})
	}
}

func TestShaderLibrary_RegisterRequiresStages(t *testing.T) {
	library := NewShaderLibrary(nil)

	_, err := library.Register(ProgramDef{Name: "nofuncs", VertexSource: shaders.ColorVertGLSL})
	assert.Error(t, err)

	_, err = library.Register(ProgramDef{
		VertexSource: shaders.ColorVertGLSL,
		Vertex:       core.TransformVertex,
		Fragment:     core.ShadeVertexColor,
	})
	assert.Error(t, err, "empty name must be rejected")
}
