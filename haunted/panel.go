package haunted

import (
	"haunted-house/gui"
)

const (
	panelStep     = 0.001
	positionLimit = 5
)

// BindPanel exposes the ambient intensity and the moon's intensity and
// position on panel. Edits write straight into the lights.
func BindPanel(panel *gui.Panel, rig *LightingRig) []*gui.Controller {
	moon := &rig.Moon.Transform.Position
	return []*gui.Controller{
		panel.Add("ambient intensity", &rig.Ambient.Light.Intensity).Min(0).Max(1).Step(panelStep),
		panel.Add("moon intensity", &rig.Moon.Light.Intensity).Min(0).Max(1).Step(panelStep),
		panel.Add("moon x", &moon.X).Min(-positionLimit).Max(positionLimit).Step(panelStep),
		panel.Add("moon y", &moon.Y).Min(-positionLimit).Max(positionLimit).Step(panelStep),
		panel.Add("moon z", &moon.Z).Min(-positionLimit).Max(positionLimit).Step(panelStep),
	}
}
