package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// VertexInput is one vertex worth of attribute data, assembled from the
// bound buffers before the vertex stage runs.
type VertexInput struct {
	Position mgl32.Vec3
	Color    mgl32.Vec4
	Normal   mgl32.Vec3
}

// Uniforms hold the per-draw constants shared by every invocation.
// OscValue is declared for binding parity with the shader listing but is
// not read by either stage.
type Uniforms struct {
	TransformMatrix mgl32.Mat4
	OscValue        float32
}

func IdentityUniforms() Uniforms {
	return Uniforms{TransformMatrix: mgl32.Ident4()}
}

// VertexOutput is what the vertex stage hands to interpolation: a
// homogeneous clip-space position plus the varyings carried to fragments.
type VertexOutput struct {
	ClipPosition mgl32.Vec4
	Color        mgl32.Vec4
	Normal       mgl32.Vec3
}

// FragmentInput holds the interpolated varyings for one fragment. The
// normal may have lost unit length during interpolation.
type FragmentInput struct {
	Color  mgl32.Vec4
	Normal mgl32.Vec3
}

// VertexFunc runs once per vertex, FragmentFunc once per covered pixel.
// Both are pure: no state survives between invocations.
type VertexFunc func(VertexInput, Uniforms) VertexOutput

type FragmentFunc func(FragmentInput) mgl32.Vec4

// TransformVertex extends the position with w=1, multiplies by the
// transform matrix, and passes color and normal through untouched. No
// normal-matrix correction is applied, so a non-uniform scale in the
// transform will distort normals.
func TransformVertex(in VertexInput, u Uniforms) VertexOutput {
	return VertexOutput{
		ClipPosition: u.TransformMatrix.Mul4x1(in.Position.Vec4(1)),
		Color:        in.Color,
		Normal:       in.Normal,
	}
}
