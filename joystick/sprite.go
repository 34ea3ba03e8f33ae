package joystick

import "github.com/Alia5/viipad/geom"

// OpaqueAlpha is the fully visible alpha value.
const OpaqueAlpha = 255

// TextureID is an opaque handle the renderer resolves to an image.
type TextureID uint32

// Sprite is one piece of stick art as a renderer should draw it this frame.
type Sprite struct {
	Texture TextureID
	Bounds  geom.Rect
	Alpha   int
	// Tint is ARGB. Zero means untinted.
	Tint uint32
}

// Visible reports whether the sprite would contribute any pixels.
func (s Sprite) Visible() bool {
	return s.Alpha > 0 && !s.Bounds.IsEmpty()
}

// Drawer is implemented by renderers.
type Drawer interface {
	DrawSprite(s Sprite)
}

// Art names the textures of a stick and the intrinsic size of its outer ring.
type Art struct {
	Outer        TextureID
	InnerDefault TextureID
	InnerPressed TextureID
	Width        int
	Height       int
}
