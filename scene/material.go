package scene

import "haunted-house/core"

// Material describes surface appearance for one or more meshes.
type Material struct {
	Name  string
	Color core.Color // base color (multiplied with Map if set)
	Unlit bool       // skip lighting; output raw color/texture

	// Optional color map. It may be populated asynchronously by a
	// TextureLoader; the renderer uploads it the first time it has pixels.
	Map *Texture
}

// NewStandardMaterial returns a lit material.
func NewStandardMaterial(name string, color core.Color) *Material {
	return &Material{
		Name:  name,
		Color: color,
	}
}

// NewBasicMaterial returns a material that ignores lights.
func NewBasicMaterial(name string, color core.Color) *Material {
	return &Material{
		Name:  name,
		Color: color,
		Unlit: true,
	}
}
