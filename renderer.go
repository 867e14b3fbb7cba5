// Package glint is a small software shading pipeline: per-vertex transform
// and per-fragment lighting expressed as pure Go functions, a shader
// library that ties them to their GLSL listings, and a CPU rasterizer to
// run them offline.
package glint

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/glint3d/glint/core"
	"github.com/glint3d/glint/raster"
)

// Buffers hold vertex data in separate arrays, 3 position components,
// 4 color components, and 3 normal components per vertex. Normals may be
// nil for programs that do not read them.
type Buffers struct {
	Positions []float32
	Colors    []float32
	Normals   []float32
	Indices   []uint32
}

func (b Buffers) VertexCount() int {
	return len(b.Positions) / 3
}

// Validate checks array length congruence and index range once, at bind
// time. Per-invocation inputs are a caller contract and are not checked
// again.
func (b Buffers) Validate(needNormals bool) error {
	if len(b.Positions) == 0 || len(b.Positions)%3 != 0 {
		return fmt.Errorf("position buffer holds %d components, want a positive multiple of 3", len(b.Positions))
	}
	count := len(b.Positions) / 3
	if len(b.Colors) != count*4 {
		return fmt.Errorf("color buffer holds %d components, want %d", len(b.Colors), count*4)
	}
	if needNormals && len(b.Normals) != count*3 {
		return fmt.Errorf("normal buffer holds %d components, want %d", len(b.Normals), count*3)
	}
	if len(b.Indices)%3 != 0 {
		return fmt.Errorf("index buffer holds %d indices, want a multiple of 3", len(b.Indices))
	}
	for _, idx := range b.Indices {
		if int(idx) >= count {
			return fmt.Errorf("index %d out of range for %d vertices", idx, count)
		}
	}
	return nil
}

func (b Buffers) vertex(i int) core.VertexInput {
	in := core.VertexInput{
		Position: mgl32.Vec3{b.Positions[i*3], b.Positions[i*3+1], b.Positions[i*3+2]},
		Color:    mgl32.Vec4{b.Colors[i*4], b.Colors[i*4+1], b.Colors[i*4+2], b.Colors[i*4+3]},
	}
	if len(b.Normals) > 0 {
		in.Normal = mgl32.Vec3{b.Normals[i*3], b.Normals[i*3+1], b.Normals[i*3+2]}
	}
	return in
}

// Renderer draws indexed triangles through a library program into a
// framebuffer. It keeps no state between draws beyond the bound target.
type Renderer struct {
	fb      *raster.Framebuffer
	library *ShaderLibrary
	opts    raster.Options
	logger  Logger
}

func NewRenderer(fb *raster.Framebuffer, library *ShaderLibrary, logger Logger) *Renderer {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &Renderer{
		fb:      fb,
		library: library,
		opts:    raster.DefaultOptions(),
		logger:  logger,
	}
}

func (r *Renderer) SetOptions(opts raster.Options) { r.opts = opts }

func (r *Renderer) Framebuffer() *raster.Framebuffer { return r.fb }

// Draw runs the named program over the buffers: the vertex stage once per
// vertex, then rasterization and the fragment stage once per covered
// pixel.
func (r *Renderer) Draw(program string, buf Buffers, u core.Uniforms) error {
	prog, ok := r.library.Lookup(program)
	if !ok {
		return fmt.Errorf("draw: unknown shader program %q", program)
	}
	if err := buf.Validate(prog.needsNormals); err != nil {
		return fmt.Errorf("draw %q: %w", program, err)
	}

	count := buf.VertexCount()
	transformed := make([]core.VertexOutput, count)
	for i := 0; i < count; i++ {
		transformed[i] = prog.vertex(buf.vertex(i), u)
	}

	for i := 0; i+2 < len(buf.Indices); i += 3 {
		tri := [3]core.VertexOutput{
			transformed[buf.Indices[i]],
			transformed[buf.Indices[i+1]],
			transformed[buf.Indices[i+2]],
		}
		raster.DrawTriangle(r.fb, tri, prog.fragment, r.opts)
	}

	r.logger.Debugf("drew %d triangles with program %q", len(buf.Indices)/3, program)
	return nil
}
