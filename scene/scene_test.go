package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haunted-house/core"
	"haunted-house/math"
)

const eps = 1e-4

func TestWorldMatrixComposesParents(t *testing.T) {
	parent := NewGroup("parent")
	parent.SetPosition(math.NewVec3(1, 0, 0))
	parent.SetRotation(math.Vec3{Y: math32.Pi / 2})

	child := NewNode("child")
	child.SetPosition(math.NewVec3(0, 0, 1))
	parent.AddChild(child)

	// Rotating +Z by 90 degrees about Y gives +X.
	got := child.WorldPosition()
	assert.True(t, got.ApproxEqual(math.NewVec3(2, 0, 0), eps), "got %v", got)
}

func TestWorldMatrixSeesInPlaceEdits(t *testing.T) {
	parent := NewGroup("parent")
	child := NewNode("child")
	parent.AddChild(child)

	_ = child.WorldPosition()
	parent.Transform.Position.Y = 3
	assert.InDelta(t, 3, child.WorldPosition().Y, eps)
}

func TestAddChildReparents(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	n := NewNode("n")
	a.AddChild(n)
	b.AddChild(n)

	assert.Empty(t, a.Children)
	assert.Equal(t, []*Node{n}, b.Children)
	assert.Same(t, b, n.Parent)
}

func TestFind(t *testing.T) {
	root := NewGroup("root")
	house := NewGroup("house")
	door := NewNode("door")
	root.AddChild(house)
	house.AddChild(door)

	assert.Same(t, door, root.Find("door"))
	assert.Nil(t, root.Find("chimney"))
}

func TestCreatePlaneFacesFront(t *testing.T) {
	g := CreatePlane(1, 2)
	require.Len(t, g.Vertices, 4)
	assert.Equal(t, 2, g.TriangleCount())
	for _, v := range g.Vertices {
		assert.Equal(t, math.Vec3Front, v.Normal)
	}
	assert.Equal(t, math.NewVec3(-0.5, -1, 0), g.BoundsMin)
	assert.Equal(t, math.NewVec3(0.5, 1, 0), g.BoundsMax)
	assertCounterClockwise(t, g)
}

func TestCreateBoxBounds(t *testing.T) {
	g := CreateBox(4, 3, 2)
	assert.Len(t, g.Vertices, 24)
	assert.Equal(t, 12, g.TriangleCount())
	assert.Equal(t, math.NewVec3(-2, -1.5, -1), g.BoundsMin)
	assert.Equal(t, math.NewVec3(2, 1.5, 1), g.BoundsMax)
	assertCounterClockwise(t, g)
}

func TestCreateConeBounds(t *testing.T) {
	g := CreateCone(3.5, 1, 4)
	assert.Equal(t, 4+4, g.TriangleCount())
	assert.InDelta(t, -0.5, g.BoundsMin.Y, eps)
	assert.InDelta(t, 0.5, g.BoundsMax.Y, eps)
	assert.InDelta(t, 3.5, g.BoundsMax.Z, eps)
	assert.InDelta(t, 3.5, g.BoundsMax.X, eps)
	assertCounterClockwise(t, g)
}

func TestCreateSphereRadius(t *testing.T) {
	g := CreateSphere(2, 16, 16)
	assert.Len(t, g.Vertices, 17*17)
	for _, v := range g.Vertices {
		assert.InDelta(t, 2, v.Position.Length(), eps)
	}
	assertCounterClockwise(t, g)
}

// assertCounterClockwise checks that every non-degenerate triangle's face
// normal agrees with its vertex normals.
func assertCounterClockwise(t *testing.T, g *Geometry) {
	t.Helper()
	for i := 0; i < len(g.Indices); i += 3 {
		a := g.Vertices[g.Indices[i]]
		b := g.Vertices[g.Indices[i+1]]
		c := g.Vertices[g.Indices[i+2]]
		face := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
		if face.LengthSqr() < 1e-10 {
			continue
		}
		avg := a.Normal.Add(b.Normal).Add(c.Normal)
		require.Greater(t, face.Dot(avg), float32(0), "%s triangle %d is clockwise", g.Name, i/3)
	}
}

func TestCameraProjectionNeedsExplicitUpdate(t *testing.T) {
	c := NewPerspectiveCamera(75, 1, 0.1, 100)
	before := c.ProjectionMatrix()

	c.Aspect = 2
	assert.Equal(t, before, c.ProjectionMatrix())

	c.UpdateProjectionMatrix()
	assert.InDelta(t, before[0][0]/2, c.ProjectionMatrix()[0][0], eps)
	assert.Equal(t, before[1][1], c.ProjectionMatrix()[1][1])
}

func TestCameraLooksAtTarget(t *testing.T) {
	c := NewPerspectiveCamera(75, 1, 0.1, 100)
	c.SetPosition(math.NewVec3(4, 2, 5))

	view := c.ViewMatrix()
	p := view.TransformPoint(math.Vec3Zero)
	assert.InDelta(t, 0, p.X, eps)
	assert.InDelta(t, 0, p.Y, eps)
	assert.InDelta(t, -math.NewVec3(4, 2, 5).Length(), p.Z, eps)
	assert.True(t, c.Forward().ApproxEqual(math.NewVec3(-4, -2, -5).Normalize(), eps))
}

func TestSceneLightsResolveWorldPositions(t *testing.T) {
	s := NewScene()
	house := NewGroup("house")
	house.SetPosition(math.NewVec3(0, 1, 0))
	door := NewPointLight("door", core.Hex(0xff7d46), 1, 7)
	door.SetPosition(math.NewVec3(0, 2.2, 2.7))
	house.AddChild(door)

	moon := NewDirectionalLight("moon", core.Hex(0xb9d5ff), 0.12)
	moon.SetPosition(math.NewVec3(0, 5, 0))
	ambient := NewAmbientLight("ambient", core.Hex(0xb9d5ff), 0.12)
	s.Add(house, moon, ambient)

	lights := s.Lights()
	require.Len(t, lights, 3)

	assert.Equal(t, LightPoint, lights[0].Kind)
	assert.True(t, lights[0].Position.ApproxEqual(math.NewVec3(0, 3.2, 2.7), eps))

	assert.Equal(t, LightDirectional, lights[1].Kind)
	assert.True(t, lights[1].Direction.ApproxEqual(math.Vec3Down, eps))

	assert.Equal(t, LightAmbient, lights[2].Kind)
	assert.Equal(t, math.Vec3Zero, lights[2].Position)
}

func TestHiddenNodesAreSkipped(t *testing.T) {
	s := NewScene()
	box := NewMesh("box", CreateBox(1, 1, 1), NewStandardMaterial("m", core.ColorWhite))
	lamp := NewPointLight("lamp", core.ColorWhite, 1, 0)
	group := NewGroup("g")
	group.AddChild(box)
	group.AddChild(lamp)
	s.Add(group)

	assert.Len(t, s.GetVisibleNodes(), 1)
	assert.Len(t, s.Lights(), 1)

	group.Visible = false
	assert.Empty(t, s.GetVisibleNodes())
	assert.Empty(t, s.Lights())
}

func TestPointLightAttenuation(t *testing.T) {
	l := NewPointLight("p", core.ColorWhite, 1, 7).Light
	assert.InDelta(t, 1, l.Attenuation(0), eps)
	assert.InDelta(t, 0.5, l.Attenuation(3.5), eps)
	assert.Zero(t, l.Attenuation(7))
	assert.Zero(t, l.Attenuation(10))

	unlimited := NewPointLight("u", core.ColorWhite, 1, 0).Light
	assert.Equal(t, float32(1), unlimited.Attenuation(100))
}

func TestFrustumCulling(t *testing.T) {
	c := NewPerspectiveCamera(75, 1, 0.1, 100)
	c.SetPosition(math.NewVec3(0, 0, 5))
	f := FrustumFromViewProjection(c.ViewProjectionMatrix())

	g := CreateBox(1, 1, 1)
	inFront := g.WorldBounds(math.Mat4Identity())
	behind := g.WorldBounds(math.Mat4Translation(math.NewVec3(0, 0, 10)))
	beyondFar := g.WorldBounds(math.Mat4Translation(math.NewVec3(0, 0, -200)))

	assert.True(t, inFront.IntersectsFrustum(&f))
	assert.False(t, behind.IntersectsFrustum(&f))
	assert.False(t, beyondFar.IntersectsFrustum(&f))
}
