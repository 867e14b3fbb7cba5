package glint

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/glint3d/glint/core"
	"github.com/glint3d/glint/shaders"
)

// Attribute and uniform binding names shared by every program. Locations
// follow the buffer layout: position 0, vertexColor 1, normal 2.
const (
	AttribPosition    = "position"
	AttribVertexColor = "vertexColor"
	AttribNormal      = "normal"

	UniformTransformMatrix = "transformMatrix"
	UniformOscValue        = "oscValue"
)

const (
	locPosition    = 0
	locVertexColor = 1
	locNormal      = 2
)

// Built-in program names.
const (
	ProgramVertexColor  = "vertex_color"
	ProgramNormalShaded = "normal_shaded"
)

type ProgramId string

// ProgramDef couples a pair of GLSL listings with the Go stage functions
// that implement them on the CPU.
type ProgramDef struct {
	Name           string
	VertexSource   string
	FragmentSource string
	Vertex         core.VertexFunc
	Fragment       core.FragmentFunc
	NeedsNormals   bool
}

// Program is a registered, validated shader program.
type Program struct {
	id             ProgramId
	name           string
	vertexSource   string
	fragmentSource string
	vertex         core.VertexFunc
	fragment       core.FragmentFunc
	needsNormals   bool
}

func (p *Program) Id() ProgramId          { return p.id }
func (p *Program) Name() string           { return p.name }
func (p *Program) VertexSource() string   { return p.vertexSource }
func (p *Program) FragmentSource() string { return p.fragmentSource }
func (p *Program) NeedsNormals() bool     { return p.needsNormals }

// ShaderLibrary keeps registered programs, addressable by name or id.
type ShaderLibrary struct {
	programs map[ProgramId]*Program
	byName   map[string]ProgramId
	logger   Logger
}

func NewShaderLibrary(logger Logger) *ShaderLibrary {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &ShaderLibrary{
		programs: make(map[ProgramId]*Program),
		byName:   make(map[string]ProgramId),
		logger:   logger,
	}
}

// Register validates a program definition and installs it. Binding
// mismatches between the listing and the CPU implementation are load-time
// fatal: the program is rejected and nothing is installed.
func (l *ShaderLibrary) Register(def ProgramDef) (ProgramId, error) {
	if def.Name == "" {
		return "", errors.New("register: program name is empty")
	}
	if def.Vertex == nil || def.Fragment == nil {
		return "", fmt.Errorf("register %q: both stage functions are required", def.Name)
	}
	if _, exists := l.byName[def.Name]; exists {
		return "", fmt.Errorf("register %q: already registered", def.Name)
	}

	attrs, uniforms := ScanInterface(def.VertexSource)
	if err := validateVertexInterface(attrs, uniforms, def.NeedsNormals); err != nil {
		return "", fmt.Errorf("register %q: %w", def.Name, err)
	}

	id := ProgramId(uuid.NewString())
	l.programs[id] = &Program{
		id:             id,
		name:           def.Name,
		vertexSource:   def.VertexSource,
		fragmentSource: def.FragmentSource,
		vertex:         def.Vertex,
		fragment:       def.Fragment,
		needsNormals:   def.NeedsNormals,
	}
	l.byName[def.Name] = id
	l.logger.Debugf("registered shader program %q as %s", def.Name, id)
	return id, nil
}

// Lookup finds a program by name.
func (l *ShaderLibrary) Lookup(name string) (*Program, bool) {
	id, ok := l.byName[name]
	if !ok {
		return nil, false
	}
	return l.programs[id], true
}

// Get finds a program by id.
func (l *ShaderLibrary) Get(id ProgramId) (*Program, bool) {
	p, ok := l.programs[id]
	return p, ok
}

func validateVertexInterface(attrs []Attribute, uniforms []Uniform, needsNormals bool) error {
	wanted := []struct {
		name     string
		typ      string
		location int
		required bool
	}{
		{AttribPosition, "vec3", locPosition, true},
		{AttribVertexColor, "vec4", locVertexColor, true},
		{AttribNormal, "vec3", locNormal, needsNormals},
	}
	for _, w := range wanted {
		if !w.required {
			continue
		}
		a, ok := findAttribute(attrs, w.name)
		if !ok {
			return fmt.Errorf("listing does not declare attribute %q", w.name)
		}
		if a.Type != w.typ {
			return fmt.Errorf("attribute %q declared as %s, want %s", w.name, a.Type, w.typ)
		}
		if a.Location >= 0 && a.Location != w.location {
			return fmt.Errorf("attribute %q bound to location %d, want %d", w.name, a.Location, w.location)
		}
	}

	u, ok := findUniform(uniforms, UniformTransformMatrix)
	if !ok {
		return fmt.Errorf("listing does not declare uniform %q", UniformTransformMatrix)
	}
	if u.Type != "mat4" {
		return fmt.Errorf("uniform %q declared as %s, want mat4", UniformTransformMatrix, u.Type)
	}
	return nil
}

// DefaultLibrary returns a library with both built-in programs installed:
// vertex_color (color passthrough) and normal_shaded (lit, normal-derived
// color). The built-in listings are known good, so failure to register
// them is a programming error.
func DefaultLibrary(logger Logger) *ShaderLibrary {
	l := NewShaderLibrary(logger)
	defs := []ProgramDef{
		{
			Name:           ProgramVertexColor,
			VertexSource:   shaders.ColorVertGLSL,
			FragmentSource: shaders.ColorFragGLSL,
			Vertex:         core.TransformVertex,
			Fragment:       core.ShadeVertexColor,
		},
		{
			Name:           ProgramNormalShaded,
			VertexSource:   shaders.NormalVertGLSL,
			FragmentSource: shaders.NormalFragGLSL,
			Vertex:         core.TransformVertex,
			Fragment:       core.ShadeNormal,
			NeedsNormals:   true,
		},
	}
	for _, def := range defs {
		if _, err := l.Register(def); err != nil {
			panic(err)
		}
	}
	return l
}
