// Package gui implements a small keyboard-driven parameter panel drawn as
// an image overlay.
package gui

import (
	"haunted-house/core"
)

// Panel is an ordered list of numeric controllers with one selected.
type Panel struct {
	Title string

	controllers []*Controller
	selected    int
	hidden      bool
	dirty       bool
}

func NewPanel(title string) *Panel {
	return &Panel{
		Title: title,
		dirty: true,
	}
}

// Add binds a controller to value. The value is left untouched until the
// controller is edited.
func (p *Panel) Add(name string, value *float32) *Controller {
	c := &Controller{panel: p, name: name, value: value}
	p.controllers = append(p.controllers, c)
	p.markDirty()
	return c
}

func (p *Panel) Controllers() []*Controller {
	return p.controllers
}

// Selected returns the controller keyboard edits apply to, or nil.
func (p *Panel) Selected() *Controller {
	if len(p.controllers) == 0 {
		return nil
	}
	return p.controllers[p.selected]
}

func (p *Panel) Visible() bool {
	return !p.hidden
}

func (p *Panel) SetVisible(visible bool) {
	if p.hidden == !visible {
		return
	}
	p.hidden = !visible
	p.markDirty()
}

// Dirty reports whether the panel changed since the last Render.
func (p *Panel) Dirty() bool {
	return p.dirty
}

func (p *Panel) markDirty() {
	p.dirty = true
}

func (p *Panel) selectOffset(delta int) {
	n := len(p.controllers)
	if n == 0 {
		return
	}
	p.selected = ((p.selected+delta)%n + n) % n
	p.markDirty()
}

// HandleKey applies a key event and reports whether the panel used it.
//
//	H              toggle visibility
//	Tab, Down      next controller (Shift+Tab previous)
//	Up             previous controller
//	Left, Right    nudge by one step, 100 with Shift
func (p *Panel) HandleKey(key core.Key, action core.Action, mods core.ModifierKey) bool {
	if action == core.Release {
		return false
	}
	if key == core.KeyH {
		if action == core.Press {
			p.SetVisible(p.hidden)
		}
		return true
	}
	if p.hidden || len(p.controllers) == 0 {
		return false
	}

	shift := mods&core.ModShift != 0
	steps := float32(1)
	if shift {
		steps = 100
	}

	switch key {
	case core.KeyTab:
		if shift {
			p.selectOffset(-1)
		} else {
			p.selectOffset(1)
		}
	case core.KeyDown:
		p.selectOffset(1)
	case core.KeyUp:
		p.selectOffset(-1)
	case core.KeyRight:
		p.Selected().Nudge(steps)
	case core.KeyLeft:
		p.Selected().Nudge(-steps)
	default:
		return false
	}
	return true
}
