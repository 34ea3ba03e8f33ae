// Package preview renders the overlay into a terminal and turns mouse drags
// into touch frames, so layouts and stick response can be tried without a
// touch screen.
package preview

import (
	"math"

	"github.com/Alia5/viipad/joystick"
	"github.com/Alia5/viipad/overlay"
	"github.com/gdamore/tcell/v2"
)

// CellSetter is the part of tcell.Screen the renderer draws through.
type CellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Glyph describes how a texture looks in a terminal.
type Glyph struct {
	Rune rune
	// Ring draws only the outline of the sprite's ellipse.
	Ring bool
}

// DefaultGlyphs maps the overlay's textures to terminal glyphs.
var DefaultGlyphs = map[joystick.TextureID]Glyph{
	overlay.TextureOuter:        {Rune: '·', Ring: true},
	overlay.TextureInner:        {Rune: 'o'},
	overlay.TextureInnerPressed: {Rune: '@'},
}

const ringWidth = 0.2

// Renderer implements joystick.Drawer on a character grid where every cell
// stands for CellW x CellH screen pixels.
type Renderer struct {
	screen CellSetter
	glyphs map[joystick.TextureID]Glyph
	cellW  int
	cellH  int
}

func NewRenderer(screen CellSetter, cellW, cellH int) *Renderer {
	return &Renderer{
		screen: screen,
		glyphs: DefaultGlyphs,
		cellW:  max(1, cellW),
		cellH:  max(1, cellH),
	}
}

// DrawSprite rasterizes the sprite's ellipse onto the cells it covers.
func (r *Renderer) DrawSprite(s joystick.Sprite) {
	if !s.Visible() {
		return
	}
	g, ok := r.glyphs[s.Texture]
	if !ok {
		return
	}
	style := tcell.StyleDefault.Foreground(spriteColor(s))

	b := s.Bounds
	cx := float64(b.Left+b.Right) / 2
	cy := float64(b.Top+b.Bottom) / 2
	rx := float64(b.Width()) / 2
	ry := float64(b.Height()) / 2

	for row := floorDiv(b.Top, r.cellH); row <= floorDiv(b.Bottom-1, r.cellH); row++ {
		for col := floorDiv(b.Left, r.cellW); col <= floorDiv(b.Right-1, r.cellW); col++ {
			if col < 0 || row < 0 {
				continue
			}
			px := float64(col*r.cellW) + float64(r.cellW)/2
			py := float64(row*r.cellH) + float64(r.cellH)/2
			d := math.Hypot((px-cx)/rx, (py-cy)/ry)
			if d > 1 || (g.Ring && d < 1-ringWidth) {
				continue
			}
			r.screen.SetContent(col, row, g.Rune, nil, style)
		}
	}
}

// spriteColor dims the tint (white when untinted) by the sprite alpha.
func spriteColor(s joystick.Sprite) tcell.Color {
	rgb := s.Tint & 0x00FFFFFF
	if s.Tint == 0 {
		rgb = 0xFFFFFF
	}
	a := uint32(max(0, min(s.Alpha, joystick.OpaqueAlpha)))
	scale := func(c uint32) int32 {
		return int32(c * a / joystick.OpaqueAlpha)
	}
	return tcell.NewRGBColor(scale(rgb>>16&0xFF), scale(rgb>>8&0xFF), scale(rgb&0xFF))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
