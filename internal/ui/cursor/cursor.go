// Package cursor tracks the highlighted row and scroll offset of a list.
package cursor

// Cursor is a row position plus the index of the first visible row. The
// list length and viewport height change often, so methods take them as
// arguments instead of storing them.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible around pos while moving
}

func New(margin int) Cursor {
	return Cursor{margin: margin}
}

func (c Cursor) Pos() int    { return c.pos }
func (c Cursor) Offset() int { return c.offset }

// Move is Jump relative to the current row.
func (c *Cursor) Move(delta, listLen, height int) {
	c.Jump(c.pos+delta, listLen, height)
}

// Jump puts the cursor on pos, clamped to the list, and scrolls it into
// view. Empty lists are left alone.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.EnsureVisible(listLen, height)
}

func (c *Cursor) JumpStart() {
	c.pos, c.offset = 0, 0
}

func (c *Cursor) JumpEnd(listLen, height int) {
	c.Jump(listLen-1, listLen, height)
}

// ScrollTo sets the first visible row without moving the cursor. The
// offset never leaves empty rows at the bottom of a full viewport.
func (c *Cursor) ScrollTo(offset, listLen, height int) {
	c.offset = clamp(offset, max(listLen-height, 0))
}

func (c *Cursor) ScrollBy(delta, listLen, height int) {
	c.ScrollTo(c.offset+delta, listLen, height)
}

// EnsureVisible scrolls just enough to keep the cursor at least margin rows
// away from either edge of the viewport.
func (c *Cursor) EnsureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)
	if top := c.pos - margin; top < c.offset {
		c.offset = max(top, 0)
	}
	if bottom := c.pos + margin; bottom >= c.offset+height {
		c.offset = bottom - height + 1
	}
	c.ScrollTo(c.offset, listLen, height)
}

// ClampToBounds pulls pos and offset back inside a list of listLen rows and
// reports whether anything moved.
func (c *Cursor) ClampToBounds(listLen int) bool {
	prevPos, prevOffset := c.pos, c.offset
	last := max(listLen-1, 0)
	c.pos = clamp(c.pos, last)
	c.offset = clamp(c.offset, last)
	if listLen == 0 {
		return c.pos != prevPos || c.offset != prevOffset
	}
	return c.pos != prevPos
}

// VisibleRange is the half-open index range [start, end) on screen.
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	start = min(c.offset, listLen)
	return start, min(start+height, listLen)
}

func clamp(v, hi int) int {
	return max(0, min(v, hi))
}
