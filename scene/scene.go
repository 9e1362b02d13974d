package scene

import (
	"haunted-house/core"
)

// Scene is the root of the graph handed to the renderer.
type Scene struct {
	Root       *Node
	Background core.Color
}

func NewScene() *Scene {
	return &Scene{
		Root:       NewNode("Root"),
		Background: core.ColorBlack,
	}
}

// Add attaches nodes directly under the root.
func (s *Scene) Add(nodes ...*Node) {
	for _, n := range nodes {
		s.Root.AddChild(n)
	}
}

// GetVisibleNodes returns all visible nodes that carry geometry.
func (s *Scene) GetVisibleNodes() []*Node {
	var visible []*Node
	s.Root.TraverseVisible(func(node *Node) {
		if node.IsMesh() && node.Material != nil {
			visible = append(visible, node)
		}
	})
	return visible
}

// Lights resolves every visible light to world space. Ambient lights keep
// a zero position and direction.
func (s *Scene) Lights() []LightInstance {
	var lights []LightInstance
	s.Root.TraverseVisible(func(node *Node) {
		if node.Light == nil {
			return
		}
		inst := LightInstance{Light: node.Light}
		if node.Light.Kind != LightAmbient {
			inst.Position = node.WorldPosition()
		}
		if node.Light.Kind == LightDirectional {
			inst.Direction = node.Light.Target.Sub(inst.Position).Normalize()
		}
		lights = append(lights, inst)
	})
	return lights
}
