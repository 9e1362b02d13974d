package core

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haunted-house/math"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff7d46")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 1, G: 125.0 / 255, B: 70.0 / 255, A: 1}, c)

	upper, err := ParseHex("F27900")
	require.NoError(t, err)
	assert.Equal(t, Hex(0xf27900), upper)
}

func TestParseHexRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "#fff", "#12345g", "#1234567"} {
		_, err := ParseHex(s)
		assert.Error(t, err, s)
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, ColorWhite, Hex(0xffffff))
	assert.Equal(t, ColorBlack, Hex(0x000000))
}

func TestTransformMatrix(t *testing.T) {
	tr := NewTransform()
	assert.Equal(t, math.Mat4Identity(), tr.GetMatrix())

	tr.Position = math.NewVec3(0, 3.5, 0)
	tr.Rotation = math.NewVec3(0, math32.Pi/4, 0)
	got := tr.GetMatrix().TransformPoint(math.Vec3Zero)
	assert.True(t, got.ApproxEqual(math.NewVec3(0, 3.5, 0), 1e-6))
}
