package gui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// Controller edits one float32 in place.
type Controller struct {
	panel *Panel
	name  string
	value *float32

	min, max float32
	step     float32
	hasMin   bool
	hasMax   bool

	onChange func(float32)
}

// Min sets the lower bound.
func (c *Controller) Min(v float32) *Controller {
	c.min, c.hasMin = v, true
	return c
}

// Max sets the upper bound.
func (c *Controller) Max(v float32) *Controller {
	c.max, c.hasMax = v, true
	return c
}

// Step sets the increment values snap to. Zero disables snapping.
func (c *Controller) Step(v float32) *Controller {
	c.step = v
	return c
}

// OnChange registers fn to run after every write.
func (c *Controller) OnChange(fn func(float32)) *Controller {
	c.onChange = fn
	return c
}

func (c *Controller) Label() string {
	return c.name
}

// Value reads the bound field.
func (c *Controller) Value() float32 {
	return *c.value
}

// Bounds returns the configured range and step.
func (c *Controller) Bounds() (min, max, step float32) {
	return c.min, c.max, c.step
}

// SetValue snaps v to the step, clamps it to the range and writes it
// through to the bound field.
func (c *Controller) SetValue(v float32) *Controller {
	v = c.clamp(c.snap(v))
	if *c.value == v {
		return c
	}
	*c.value = v
	c.panel.markDirty()
	if c.onChange != nil {
		c.onChange(v)
	}
	return c
}

// Nudge moves the value by steps increments.
func (c *Controller) Nudge(steps float32) {
	step := c.step
	if step == 0 {
		step = 0.1
	}
	c.SetValue(*c.value + steps*step)
}

func (c *Controller) snap(v float32) float32 {
	if c.step <= 0 {
		return v
	}
	return math32.Round(v/c.step) * c.step
}

func (c *Controller) clamp(v float32) float32 {
	if c.hasMin && v < c.min {
		v = c.min
	}
	if c.hasMax && v > c.max {
		v = c.max
	}
	return v
}

// Fraction returns where the value sits in its range, or -1 when the
// controller is unbounded.
func (c *Controller) Fraction() float32 {
	if !c.hasMin || !c.hasMax || c.max <= c.min {
		return -1
	}
	return (*c.value - c.min) / (c.max - c.min)
}

// FormattedValue renders the value with as many decimals as the step uses.
func (c *Controller) FormattedValue() string {
	return strconv.FormatFloat(float64(*c.value), 'f', c.decimals(), 32)
}

func (c *Controller) decimals() int {
	if c.step <= 0 {
		return 3
	}
	s := strconv.FormatFloat(float64(c.step), 'f', -1, 32)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

func (c *Controller) String() string {
	return fmt.Sprintf("%s=%s", c.name, c.FormattedValue())
}
