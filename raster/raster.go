// Package raster emulates the fixed-function plumbing between the two
// shading stages on the CPU: perspective divide, viewport mapping, triangle
// coverage, varying interpolation, and the depth test. Each covered pixel
// gets one fragment invocation; invocations share no state.
package raster

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/glint3d/glint/core"
)

type Options struct {
	DepthTest     bool
	CullBackfaces bool
}

func DefaultOptions() Options {
	return Options{DepthTest: true}
}

// DrawTriangle rasterizes one clip-space triangle into fb, calling shade
// once per covered pixel with linearly interpolated varyings.
//
// There is no clipping stage: a triangle with any vertex at or behind the
// eye plane (w <= 0) is dropped whole, as are zero-area triangles.
func DrawTriangle(fb *Framebuffer, tri [3]core.VertexOutput, shade core.FragmentFunc, opts Options) {
	var ndc [3]mgl32.Vec3
	var sx, sy [3]float32
	for i, v := range tri {
		w := v.ClipPosition.W()
		if w <= 0 {
			return
		}
		inv := 1 / w
		ndc[i] = mgl32.Vec3{
			v.ClipPosition.X() * inv,
			v.ClipPosition.Y() * inv,
			v.ClipPosition.Z() * inv,
		}
		sx[i], sy[i] = viewportTransform(ndc[i], fb.width, fb.height)
	}

	area := edge(sx[0], sy[0], sx[1], sy[1], sx[2], sy[2])
	if area == 0 {
		return
	}
	// Counter-clockwise triangles face front; the viewport Y flip makes
	// their screen-space signed area negative.
	if opts.CullBackfaces && area > 0 {
		return
	}

	minX, maxX := boundsClamp(sx[0], sx[1], sx[2], fb.width)
	minY, maxY := boundsClamp(sy[0], sy[1], sy[2], fb.height)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			py := float32(y) + 0.5
			bc := barycentric(sx[0], sy[0], sx[1], sy[1], sx[2], sy[2], px, py)
			if bc[0] < 0 || bc[1] < 0 || bc[2] < 0 {
				continue
			}

			z := bc[0]*ndc[0].Z() + bc[1]*ndc[1].Z() + bc[2]*ndc[2].Z()
			depth := (z + 1) * 0.5
			idx := y*fb.width + x
			if opts.DepthTest && depth >= fb.depth[idx] {
				continue
			}

			out := shade(core.FragmentInput{
				Color:  lerpVec4(tri[0].Color, tri[1].Color, tri[2].Color, bc),
				Normal: lerpVec3(tri[0].Normal, tri[1].Normal, tri[2].Normal, bc),
			})
			fb.color[idx] = out
			if opts.DepthTest {
				fb.depth[idx] = depth
			}
		}
	}
}

// viewportTransform maps normalized device coordinates to pixel
// coordinates, flipping Y so the origin lands at the top-left.
func viewportTransform(ndc mgl32.Vec3, width, height int) (float32, float32) {
	x := (ndc.X() + 1) * 0.5 * float32(width)
	y := (1 - (ndc.Y()+1)*0.5) * float32(height)
	return x, y
}

// barycentric returns the weights of point (px, py) relative to the given
// screen-space triangle. All three weights are non-negative exactly when
// the point lies inside, for either winding. A degenerate triangle yields
// all-negative weights.
func barycentric(ax, ay, bx, by, cx, cy, px, py float32) mgl32.Vec3 {
	area := edge(ax, ay, bx, by, cx, cy)
	if area == 0 {
		return mgl32.Vec3{-1, -1, -1}
	}
	inv := 1 / area
	return mgl32.Vec3{
		edge(bx, by, cx, cy, px, py) * inv,
		edge(cx, cy, ax, ay, px, py) * inv,
		edge(ax, ay, bx, by, px, py) * inv,
	}
}

// edge is the signed parallelogram area of (a, b, p).
func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func boundsClamp(a, b, c float32, limit int) (int, int) {
	min, max := a, a
	if b < min {
		min = b
	}
	if b > max {
		max = b
	}
	if c < min {
		min = c
	}
	if c > max {
		max = c
	}
	lo := int(min)
	hi := int(max) + 1
	if lo < 0 {
		lo = 0
	}
	if hi > limit-1 {
		hi = limit - 1
	}
	return lo, hi
}

func lerpVec4(a, b, c mgl32.Vec4, bc mgl32.Vec3) mgl32.Vec4 {
	return a.Mul(bc[0]).Add(b.Mul(bc[1])).Add(c.Mul(bc[2]))
}

func lerpVec3(a, b, c mgl32.Vec3, bc mgl32.Vec3) mgl32.Vec3 {
	return a.Mul(bc[0]).Add(b.Mul(bc[1])).Add(c.Mul(bc[2]))
}
