package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haunted-house/core"
)

func TestAddLeavesValueUntouched(t *testing.T) {
	p := NewPanel("Debug")
	v := float32(0.1234)
	c := p.Add("intensity", &v).Min(0).Max(1).Step(0.001)

	assert.Equal(t, float32(0.1234), c.Value())
	assert.Len(t, p.Controllers(), 1)
	assert.Same(t, c, p.Selected())
}

func TestSetValueClampsSnapsAndWritesThrough(t *testing.T) {
	p := NewPanel("Debug")
	v := float32(0.12)
	c := p.Add("intensity", &v).Min(0).Max(1).Step(0.001)

	c.SetValue(0.5004)
	assert.InDelta(t, 0.5, v, 1e-6)

	c.SetValue(3)
	assert.Equal(t, float32(1), v)

	c.SetValue(-1)
	assert.Equal(t, float32(0), v)
}

func TestOnChange(t *testing.T) {
	p := NewPanel("Debug")
	v := float32(0)
	var got []float32
	c := p.Add("x", &v).Min(-5).Max(5).Step(0.001).OnChange(func(f float32) { got = append(got, f) })

	c.SetValue(2)
	c.SetValue(2)
	assert.Equal(t, []float32{2}, got)
}

func TestKeyboardNavigationAndNudge(t *testing.T) {
	p := NewPanel("Debug")
	a, b := float32(0.12), float32(4)
	p.Add("a", &a).Min(0).Max(1).Step(0.001)
	p.Add("b", &b).Min(-5).Max(5).Step(0.001)

	assert.True(t, p.HandleKey(core.KeyRight, core.Press, 0))
	assert.InDelta(t, 0.121, a, 1e-6)

	assert.True(t, p.HandleKey(core.KeyTab, core.Press, 0))
	assert.Equal(t, "b", p.Selected().Label())

	assert.True(t, p.HandleKey(core.KeyLeft, core.Repeat, core.ModShift))
	assert.InDelta(t, 3.9, b, 1e-5)

	// Wraps around in both directions.
	p.HandleKey(core.KeyDown, core.Press, 0)
	assert.Equal(t, "a", p.Selected().Label())
	p.HandleKey(core.KeyTab, core.Press, core.ModShift)
	assert.Equal(t, "b", p.Selected().Label())
	p.HandleKey(core.KeyUp, core.Press, 0)
	assert.Equal(t, "a", p.Selected().Label())

	assert.False(t, p.HandleKey(core.KeyRight, core.Release, 0))
	assert.False(t, p.HandleKey(core.KeySpace, core.Press, 0))
}

func TestToggleVisibility(t *testing.T) {
	p := NewPanel("Debug")
	a := float32(0.5)
	p.Add("a", &a).Min(0).Max(1).Step(0.01)

	require.True(t, p.Visible())
	assert.True(t, p.HandleKey(core.KeyH, core.Press, 0))
	assert.False(t, p.Visible())

	// Hidden panels ignore edits.
	assert.False(t, p.HandleKey(core.KeyRight, core.Press, 0))
	assert.Equal(t, float32(0.5), a)

	// Holding H does not flicker.
	p.HandleKey(core.KeyH, core.Repeat, 0)
	assert.False(t, p.Visible())

	p.HandleKey(core.KeyH, core.Press, 0)
	assert.True(t, p.Visible())
}

func TestRenderClearsDirty(t *testing.T) {
	p := NewPanel("Debug")
	a := float32(0.5)
	c := p.Add("a", &a).Min(0).Max(1).Step(0.01)

	require.True(t, p.Dirty())
	img := p.Render()
	require.NotNil(t, img)
	assert.Equal(t, panelWidth, img.Bounds().Dx())
	assert.Equal(t, 2*rowHeight, img.Bounds().Dy())
	assert.False(t, p.Dirty())

	c.SetValue(0.7)
	assert.True(t, p.Dirty())

	p.SetVisible(false)
	assert.Nil(t, p.Render())
}

func TestFormattedValueUsesStepPrecision(t *testing.T) {
	p := NewPanel("Debug")
	v := float32(0.12)
	c := p.Add("a", &v).Step(0.001)
	assert.Equal(t, "0.120", c.FormattedValue())

	c.Step(1)
	assert.Equal(t, "0", c.FormattedValue())
	assert.Equal(t, float32(-1), c.Fraction())
}
