package ui

// Base holds the focus flag and dimensions shared by every component.
// Components embed it and get the accessors below for free.
type Base struct {
	width, height int
	focused       bool
}

func (b *Base) SetFocused(focused bool) { b.focused = focused }

func (b Base) IsFocused() bool { return b.focused }

func (b *Base) SetSize(width, height int) {
	b.width, b.height = width, height
}

func (b Base) Size() (width, height int) { return b.width, b.height }

func (b Base) Width() int { return b.width }

func (b Base) Height() int { return b.height }

// BodyHeight is the height left under a fixed header of the given size,
// never negative.
func (b Base) BodyHeight(header int) int {
	return max(b.height-header, 0)
}

// Contains reports whether the cell (x, y), relative to the component's
// top-left corner, lies inside it.
func (b Base) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}
