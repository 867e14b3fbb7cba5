package glint

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SphereBuffers builds a UV sphere centered at the origin. Normals equal
// the normalized vertex position, so the surface exercises the full
// normal-to-color range. Every vertex gets the same color.
func SphereBuffers(radius float32, rings, segments int, color mgl32.Vec4) Buffers {
	if rings < 2 || segments < 3 {
		panic("glint: sphere needs at least 2 rings and 3 segments")
	}

	var buf Buffers
	for ring := 0; ring <= rings; ring++ {
		theta := math.Pi * float64(ring) / float64(rings)
		sinT, cosT := math.Sin(theta), math.Cos(theta)
		for seg := 0; seg <= segments; seg++ {
			phi := 2 * math.Pi * float64(seg) / float64(segments)
			n := mgl32.Vec3{
				float32(sinT * math.Cos(phi)),
				float32(cosT),
				float32(sinT * math.Sin(phi)),
			}
			buf.Positions = append(buf.Positions, n.X()*radius, n.Y()*radius, n.Z()*radius)
			buf.Colors = append(buf.Colors, color[0], color[1], color[2], color[3])
			buf.Normals = append(buf.Normals, n.X(), n.Y(), n.Z())
		}
	}

	stride := uint32(segments + 1)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			a := uint32(ring)*stride + uint32(seg)
			b := a + stride
			buf.Indices = append(buf.Indices,
				a, b, a+1,
				a+1, b, b+1,
			)
		}
	}
	return buf
}

// CubeBuffers builds an axis-aligned cube with the given edge length,
// 4 vertices per face so every face keeps its own flat normal.
func CubeBuffers(size float32, color mgl32.Vec4) Buffers {
	h := size * 0.5
	faces := [6]struct {
		normal mgl32.Vec3
		u      mgl32.Vec3
		v      mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	}

	var buf Buffers
	for _, face := range faces {
		base := uint32(buf.VertexCount())
		center := face.normal.Mul(h)
		corners := [4]mgl32.Vec3{
			center.Sub(face.u.Mul(h)).Sub(face.v.Mul(h)),
			center.Add(face.u.Mul(h)).Sub(face.v.Mul(h)),
			center.Add(face.u.Mul(h)).Add(face.v.Mul(h)),
			center.Sub(face.u.Mul(h)).Add(face.v.Mul(h)),
		}
		for _, c := range corners {
			buf.Positions = append(buf.Positions, c.X(), c.Y(), c.Z())
			buf.Colors = append(buf.Colors, color[0], color[1], color[2], color[3])
			buf.Normals = append(buf.Normals, face.normal.X(), face.normal.Y(), face.normal.Z())
		}
		buf.Indices = append(buf.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return buf
}
