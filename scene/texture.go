package scene

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	"golang.org/x/image/draw"
)

// Texture holds CPU-side pixel data for a 2D texture.
// A texture may start empty and be filled in later by a TextureLoader.
type Texture struct {
	Name   string
	Width  int
	Height int
	// Pixels in RGBA8 format, rows bottom-to-top as OpenGL expects.
	Pixels []byte
	// GLID is the OpenGL texture object ID, set by the renderer on upload.
	GLID uint32
	// UploadErr records a failed upload; the renderer does not retry it.
	UploadErr error
}

// Ready reports whether pixel data is available.
func (t *Texture) Ready() bool {
	return t != nil && len(t.Pixels) > 0
}

// NeedsUpload reports whether the renderer still has to upload the texture.
// A texture whose upload failed is not retried.
func (t *Texture) NeedsUpload() bool {
	return t.Ready() && t.GLID == 0 && t.UploadErr == nil
}

// LoadTexture reads a PNG or JPEG file from disk and returns a CPU-side Texture.
func LoadTexture(path string) (*Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	tex, err := DecodeTexture(data)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}
	tex.Name = path
	return tex, nil
}

// DecodeTexture decodes an encoded image into a Texture. The content is
// sniffed first so non-image files fail with a clear error.
func DecodeTexture(data []byte) (*Texture, error) {
	if !filetype.IsImage(data) {
		return nil, fmt.Errorf("not an image")
	}
	kind, _ := filetype.Match(data)

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind.Extension, err)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	// Image rows run top-to-bottom; GL texture rows run bottom-to-top.
	flipped := transform.FlipV(rgba)

	return &Texture{
		Width:  flipped.Bounds().Dx(),
		Height: flipped.Bounds().Dy(),
		Pixels: flipped.Pix,
	}, nil
}
