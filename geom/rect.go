// Package geom provides the integer screen rectangle used for hit-testing and
// sprite placement.
package geom

// Rect is an axis-aligned screen rectangle. Right and Bottom are exclusive.
type Rect struct {
	Left, Top     int
	Right, Bottom int
}

// FromSize creates a rectangle from its top-left corner and dimensions.
func FromSize(x, y, w, h int) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

func (r Rect) Width() int { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// CenterX returns the horizontal center, rounded toward negative infinity.
func (r Rect) CenterX() int { return (r.Left + r.Right) >> 1 }

// CenterY returns the vertical center, rounded toward negative infinity.
func (r Rect) CenterY() int { return (r.Top + r.Bottom) >> 1 }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Contains reports whether (x, y) lies inside a non-empty rectangle.
func (r Rect) Contains(x, y int) bool {
	return !r.IsEmpty() && x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Offset returns a copy of r moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// CenteredAt returns a w x h rectangle whose center is (cx, cy).
// Odd dimensions lose their remainder, matching integer half-extents.
func CenteredAt(cx, cy, w, h int) Rect {
	hw, hh := w/2, h/2
	return Rect{Left: cx - hw, Top: cy - hh, Right: cx + hw, Bottom: cy + hh}
}
