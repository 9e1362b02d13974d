package scene

import (
	"github.com/chewxy/math32"

	"haunted-house/math"
)

// Plane is the half-space Normal·p + D >= 0.
type Plane struct {
	Normal math.Vec3
	D      float32
}

// DistanceTo returns the signed distance from pt; positive is inside.
func (p Plane) DistanceTo(pt math.Vec3) float32 {
	return p.Normal.Dot(pt) + p.D
}

// Frustum holds the six clip planes of a view frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// FrustumFromViewProjection extracts normalized planes from a row-vector
// view-projection matrix (Gribb/Hartmann). Clip coordinate j is the dot
// product of the point with column j, so the columns play the role of the
// usual matrix rows.
func FrustumFromViewProjection(vp math.Mat4) Frustum {
	col := func(j int) [4]float32 {
		return [4]float32{vp[0][j], vp[1][j], vp[2][j], vp[3][j]}
	}
	cx, cy, cz, cw := col(0), col(1), col(2), col(3)

	plane := func(sign float32, c [4]float32) Plane {
		a := cw[0] + sign*c[0]
		b := cw[1] + sign*c[1]
		d := cw[2] + sign*c[2]
		e := cw[3] + sign*c[3]
		n := math.Vec3{X: a, Y: b, Z: d}
		l := n.Length()
		if l == 0 {
			return Plane{}
		}
		return Plane{Normal: n.Mul(1 / l), D: e / l}
	}

	return Frustum{Planes: [6]Plane{
		plane(1, cx), plane(-1, cx),
		plane(1, cy), plane(-1, cy),
		plane(1, cz), plane(-1, cz),
	}}
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max math.Vec3
}

// IntersectsFrustum returns false only if the box is completely outside
// one of the planes (positive-vertex test).
func (box AABB) IntersectsFrustum(f *Frustum) bool {
	for _, p := range f.Planes {
		pv := box.Max
		if p.Normal.X < 0 {
			pv.X = box.Min.X
		}
		if p.Normal.Y < 0 {
			pv.Y = box.Min.Y
		}
		if p.Normal.Z < 0 {
			pv.Z = box.Min.Z
		}
		if p.DistanceTo(pv) < 0 {
			return false
		}
	}
	return true
}

// WorldBounds transforms the geometry's local bounds by world and returns
// the enclosing box.
func (g *Geometry) WorldBounds(world math.Mat4) AABB {
	mn, mx := g.BoundsMin, g.BoundsMax
	var out AABB
	for i := 0; i < 8; i++ {
		corner := mn
		if i&1 != 0 {
			corner.X = mx.X
		}
		if i&2 != 0 {
			corner.Y = mx.Y
		}
		if i&4 != 0 {
			corner.Z = mx.Z
		}
		wp := world.TransformPoint(corner)
		if i == 0 {
			out = AABB{Min: wp, Max: wp}
			continue
		}
		out.Min = math.Vec3{X: math32.Min(out.Min.X, wp.X), Y: math32.Min(out.Min.Y, wp.Y), Z: math32.Min(out.Min.Z, wp.Z)}
		out.Max = math.Vec3{X: math32.Max(out.Max.X, wp.X), Y: math32.Max(out.Max.Y, wp.Y), Z: math32.Max(out.Max.Z, wp.Z)}
	}
	return out
}
