package gui

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	panelWidth  = 280
	rowHeight   = 20
	padding     = 6
	sliderWidth = 90
)

var (
	backgroundColor = color.RGBA{R: 28, G: 28, B: 28, A: 230}
	titleColor      = color.RGBA{R: 17, G: 17, B: 17, A: 255}
	selectedColor   = color.RGBA{R: 56, G: 56, B: 56, A: 255}
	textColor       = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	sliderBgColor   = color.RGBA{R: 66, G: 66, B: 66, A: 255}
	sliderColor     = color.RGBA{R: 47, G: 161, B: 214, A: 255}
)

// Render draws the panel into a fresh image with the origin at the top
// left and clears the dirty flag. A hidden panel renders as nil.
func (p *Panel) Render() *image.RGBA {
	p.dirty = false
	if p.hidden {
		return nil
	}

	height := rowHeight * (len(p.controllers) + 1)
	img := image.NewRGBA(image.Rect(0, 0, panelWidth, height))
	fill(img, img.Bounds(), backgroundColor)

	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Src: image.NewUniform(textColor), Face: face}

	fill(img, image.Rect(0, 0, panelWidth, rowHeight), titleColor)
	drawText(d, p.Title, padding, 0)

	for i, c := range p.controllers {
		top := rowHeight * (i + 1)
		if i == p.selected {
			fill(img, image.Rect(0, top, panelWidth, top+rowHeight), selectedColor)
		}
		drawText(d, c.Label(), padding, top)

		value := c.FormattedValue()
		valueX := panelWidth - padding - d.MeasureString(value).Ceil()
		drawText(d, value, valueX, top)

		if f := c.Fraction(); f >= 0 {
			x0 := valueX - padding - sliderWidth
			bar := image.Rect(x0, top+rowHeight/2-3, x0+sliderWidth, top+rowHeight/2+3)
			fill(img, bar, sliderBgColor)
			bar.Max.X = x0 + int(f*sliderWidth+0.5)
			fill(img, bar, sliderColor)
		}
	}
	return img
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// drawText draws s vertically centred in the row starting at top.
func drawText(d *font.Drawer, s string, x, top int) {
	m := d.Face.Metrics()
	baseline := top + (rowHeight+m.Ascent.Ceil()-m.Descent.Ceil())/2
	d.Dot = fixed.P(x, baseline)
	d.DrawString(s)
}
