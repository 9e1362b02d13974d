package scene

import (
	"github.com/chewxy/math32"

	"haunted-house/core"
	"haunted-house/math"
)

// All generators emit counter-clockwise front faces and outward normals.

// CreatePlane generates a width x height quad in the XY plane facing +Z.
// Lay it flat with a rotation of -pi/2 about X.
func CreatePlane(width, height float32) *Geometry {
	hw, hh := width/2, height/2
	n := math.Vec3Front
	vertices := []core.Vertex{
		{Position: math.Vec3{X: -hw, Y: -hh}, Normal: n, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: hw, Y: -hh}, Normal: n, UV: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: hw, Y: hh}, Normal: n, UV: math.Vec2{X: 1, Y: 1}},
		{Position: math.Vec3{X: -hw, Y: hh}, Normal: n, UV: math.Vec2{X: 0, Y: 1}},
	}
	return NewGeometry("Plane", vertices, []uint32{0, 1, 2, 2, 3, 0})
}

// boxFaces lists each face as (normal, u, v) with u x v == normal.
var boxFaces = [6][3]math.Vec3{
	{{X: 1}, {Z: -1}, {Y: 1}},
	{{X: -1}, {Z: 1}, {Y: 1}},
	{{Y: 1}, {X: 1}, {Z: -1}},
	{{Y: -1}, {X: 1}, {Z: 1}},
	{{Z: 1}, {X: 1}, {Y: 1}},
	{{Z: -1}, {X: -1}, {Y: 1}},
}

// CreateBox generates an axis-aligned box centred on the origin.
func CreateBox(width, height, depth float32) *Geometry {
	half := math.Vec3{X: width / 2, Y: height / 2, Z: depth / 2}

	vertices := make([]core.Vertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range boxFaces {
		normal, u, v := f[0], f[1], f[2]
		center := normal.MulVec(half)
		du := u.Mul(absVec(u).Dot(half))
		dv := v.Mul(absVec(v).Dot(half))

		base := uint32(len(vertices))
		corners := [4]struct {
			su, sv float32
		}{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
		for _, c := range corners {
			vertices = append(vertices, core.Vertex{
				Position: center.Add(du.Mul(c.su)).Add(dv.Mul(c.sv)),
				Normal:   normal,
				UV:       math.Vec2{X: (c.su + 1) / 2, Y: (c.sv + 1) / 2},
			})
		}
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}
	return NewGeometry("Box", vertices, indices)
}

func absVec(v math.Vec3) math.Vec3 {
	return math.Vec3{X: math32.Abs(v.X), Y: math32.Abs(v.Y), Z: math32.Abs(v.Z)}
}

// CreateCone generates a cone centred on the origin with its apex on +Y.
// The first base vertex sits on +Z; with four segments the base is a
// square seen corner-on, so an eighth of a turn (pi/4) about Y squares it
// with a box.
func CreateCone(radius, height float32, segments int) *Geometry {
	if segments < 3 {
		segments = 3
	}
	halfHeight := height / 2
	slope := radius / height
	step := 2 * math32.Pi / float32(segments)

	ring := func(theta float32) (pos, normal math.Vec3) {
		s, c := math32.Sincos(theta)
		return math.Vec3{X: radius * s, Y: -halfHeight, Z: radius * c},
			math.Vec3{X: s, Y: slope, Z: c}.Normalize()
	}

	var vertices []core.Vertex
	var indices []uint32

	// Sides: one apex vertex per segment so each face gets its own normal.
	for i := 0; i < segments; i++ {
		t0 := float32(i) * step
		t1 := t0 + step
		p0, n0 := ring(t0)
		p1, n1 := ring(t1)
		_, nMid := ring(t0 + step/2)
		u0 := float32(i) / float32(segments)
		u1 := float32(i+1) / float32(segments)

		base := uint32(len(vertices))
		vertices = append(vertices,
			core.Vertex{Position: math.Vec3{Y: halfHeight}, Normal: nMid, UV: math.Vec2{X: (u0 + u1) / 2, Y: 1}},
			core.Vertex{Position: p0, Normal: n0, UV: math.Vec2{X: u0, Y: 0}},
			core.Vertex{Position: p1, Normal: n1, UV: math.Vec2{X: u1, Y: 0}},
		)
		indices = append(indices, base, base+1, base+2)
	}

	// Base cap
	center := uint32(len(vertices))
	vertices = append(vertices, core.Vertex{
		Position: math.Vec3{Y: -halfHeight},
		Normal:   math.Vec3Down,
		UV:       math.Vec2{X: 0.5, Y: 0.5},
	})
	for i := 0; i <= segments; i++ {
		p, _ := ring(float32(i) * step)
		vertices = append(vertices, core.Vertex{
			Position: p,
			Normal:   math.Vec3Down,
			UV:       math.Vec2{X: p.X/(2*radius) + 0.5, Y: p.Z/(2*radius) + 0.5},
		})
	}
	for i := uint32(0); i < uint32(segments); i++ {
		indices = append(indices, center, center+i+2, center+i+1)
	}

	return NewGeometry("Cone", vertices, indices)
}

// CreateSphere generates a UV sphere. widthSegments run around Y,
// heightSegments from pole to pole.
func CreateSphere(radius float32, widthSegments, heightSegments int) *Geometry {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}

	var vertices []core.Vertex
	var indices []uint32

	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		sinPhi, cosPhi := math32.Sincos(v * math32.Pi)

		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			sinTheta, cosTheta := math32.Sincos(u * 2 * math32.Pi)

			normal := math.Vec3{X: sinPhi * sinTheta, Y: cosPhi, Z: sinPhi * cosTheta}
			vertices = append(vertices, core.Vertex{
				Position: normal.Mul(radius),
				Normal:   normal,
				UV:       math.Vec2{X: u, Y: 1 - v},
			})
		}
	}

	row := uint32(widthSegments + 1)
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := uint32(iy)*row + uint32(ix)
			b := a + row
			indices = append(indices, a, b, a+1)
			indices = append(indices, a+1, b, b+1)
		}
	}

	return NewGeometry("Sphere", vertices, indices)
}
