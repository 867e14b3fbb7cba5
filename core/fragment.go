package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// lightDirection is the fixed directional light. It is baked into the
// fragment stage rather than supplied as a uniform.
var lightDirection = mgl32.Vec3{0.8, -0.5, 0.6}.Normalize()

// LightDirection returns the normalized fixed light direction.
func LightDirection() mgl32.Vec3 {
	return lightDirection
}

// ColorFromNormal remaps a unit normal's [-1, 1] components to [0, 1].
func ColorFromNormal(n mgl32.Vec3) mgl32.Vec3 {
	return n.Add(mgl32.Vec3{1, 1, 1}).Mul(0.5)
}

// LambertIntensity is the clamped Lambertian term against the fixed light.
// A normal perpendicular to or facing away from the negated light
// direction yields zero.
func LambertIntensity(n mgl32.Vec3) float32 {
	d := n.Dot(lightDirection.Mul(-1))
	if d < 0 {
		return 0
	}
	return d
}

// ShadeNormal is the lit fragment stage. The interpolated normal is
// renormalized first since linear interpolation of unit vectors does not
// preserve unit length. The interpolated color is ignored entirely and
// alpha is always fully opaque.
func ShadeNormal(in FragmentInput) mgl32.Vec4 {
	n := in.Normal.Normalize()
	rgb := ColorFromNormal(n).Mul(LambertIntensity(n))
	return rgb.Vec4(1)
}

// ShadeVertexColor is the passthrough fragment stage: the interpolated
// vertex color becomes the output unchanged.
func ShadeVertexColor(in FragmentInput) mgl32.Vec4 {
	return in.Color
}
