package scene

import (
	"github.com/chewxy/math32"

	"haunted-house/core"
	"haunted-house/math"
)

// Geometry holds CPU-side vertex/index data.
// GPU upload is managed by the renderer backend.
type Geometry struct {
	Name     string
	Vertices []core.Vertex
	Indices  []uint32

	// Local-space bounds, computed by NewGeometry.
	BoundsMin math.Vec3
	BoundsMax math.Vec3

	// GPUData is set by the renderer backend.
	// Do not access directly; use the renderer's API.
	GPUData interface{}
}

// NewGeometry builds a Geometry and pre-computes its bounds.
func NewGeometry(name string, vertices []core.Vertex, indices []uint32) *Geometry {
	g := &Geometry{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
	if len(vertices) > 0 {
		g.BoundsMin, g.BoundsMax = computeBounds(vertices)
	}
	return g
}

// TriangleCount returns the number of indexed triangles.
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

func computeBounds(vertices []core.Vertex) (min, max math.Vec3) {
	min = vertices[0].Position
	max = vertices[0].Position
	for _, v := range vertices[1:] {
		p := v.Position
		min.X, max.X = math32.Min(min.X, p.X), math32.Max(max.X, p.X)
		min.Y, max.Y = math32.Min(min.Y, p.Y), math32.Max(max.Y, p.Y)
		min.Z, max.Z = math32.Min(min.Z, p.Z), math32.Max(max.Z, p.Z)
	}
	return min, max
}
