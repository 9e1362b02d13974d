package scene

import (
	"haunted-house/core"
	"haunted-house/math"
)

// Node is an element of the scene graph. A node carrying neither Geometry
// nor Light is a plain group.
type Node struct {
	Name      string
	Transform core.Transform
	Parent    *Node
	Children  []*Node
	Visible   bool
	Id        uint32

	// Renderable part; both are shared freely between nodes.
	Geometry *Geometry
	Material *Material

	// Light attached to this node; its position is the node's world position.
	Light *Light
}

var nodeIdCounter uint32 = 0

func NewNode(name string) *Node {
	nodeIdCounter++
	return &Node{
		Name:      name,
		Transform: core.NewTransform(),
		Children:  make([]*Node, 0),
		Visible:   true,
		Id:        nodeIdCounter,
	}
}

// NewGroup returns an empty container node.
func NewGroup(name string) *Node {
	return NewNode(name)
}

// NewMesh returns a node rendering geometry with material.
func NewMesh(name string, geometry *Geometry, material *Material) *Node {
	n := NewNode(name)
	n.Geometry = geometry
	n.Material = material
	return n
}

func (n *Node) AddChild(child *Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// IsMesh reports whether the node draws anything.
func (n *Node) IsMesh() bool {
	return n.Geometry != nil
}

// GetWorldMatrix composes the local transforms from the root down. It is
// recomputed on every call so fields mutated in place (for example by the
// debug panel) take effect on the next frame.
func (n *Node) GetWorldMatrix() math.Mat4 {
	local := n.Transform.GetMatrix()
	if n.Parent == nil {
		return local
	}
	return local.Mul(n.Parent.GetWorldMatrix())
}

// WorldPosition returns the node origin in world space.
func (n *Node) WorldPosition() math.Vec3 {
	return n.GetWorldMatrix().Translation()
}

func (n *Node) SetPosition(pos math.Vec3) {
	n.Transform.Position = pos
}

// SetRotation sets Euler XYZ angles in radians.
func (n *Node) SetRotation(euler math.Vec3) {
	n.Transform.Rotation = euler
}

func (n *Node) SetScale(scale math.Vec3) {
	n.Transform.Scale = scale
}

// Traverse visits the node and all descendants depth-first.
func (n *Node) Traverse(callback func(*Node)) {
	callback(n)
	for _, child := range n.Children {
		child.Traverse(callback)
	}
}

// TraverseVisible is Traverse that skips hidden subtrees.
func (n *Node) TraverseVisible(callback func(*Node)) {
	if !n.Visible {
		return
	}
	callback(n)
	for _, child := range n.Children {
		child.TraverseVisible(callback)
	}
}

// Find finds a node by name
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}
