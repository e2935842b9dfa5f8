package logic

// Navigator handles the row cursor, the scrolling viewport and which header
// column has focus
type Navigator struct {
	cursor         int
	viewportOffset int
	viewportHeight int
	totalRows      int
	column         int
	totalColumns   int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{
		viewportHeight: 20, // Will be updated on first WindowSizeMsg
	}
}

// SetBounds updates the number of rows and columns, clamping cursor and focus
func (n *Navigator) SetBounds(totalRows, totalColumns int) {
	n.totalRows = max(totalRows, 0)
	n.totalColumns = max(totalColumns, 0)
	n.column = clamp(n.column, 0, n.totalColumns-1)
	n.cursor = clamp(n.cursor, 0, n.totalRows-1)
	n.ensureCursorVisible()
}

// SetViewportHeight sets the number of lines available for rows
func (n *Navigator) SetViewportHeight(height int) {
	n.viewportHeight = max(height, 1)
	n.ensureCursorVisible()
}

// Cursor returns the display index of the row under the cursor
func (n *Navigator) Cursor() int {
	return n.cursor
}

// Column returns the index of the focused header column
func (n *Navigator) Column() int {
	return n.column
}

// ViewportOffset returns the index of the first visible row
func (n *Navigator) ViewportOffset() int {
	return n.viewportOffset
}

// ViewportHeight returns the number of lines available for rows
func (n *Navigator) ViewportHeight() int {
	return n.viewportHeight
}

// VisibleRange returns the half-open range of row indices that fit in the
// viewport, leaving room for the scroll indicators the view draws
func (n *Navigator) VisibleRange() (start, end int) {
	start = n.viewportOffset
	end = min(start+n.effectiveHeight(), n.totalRows)
	return start, end
}

// MoveUp moves the cursor up by count rows
func (n *Navigator) MoveUp(count int) {
	n.SetCursor(n.cursor - count)
}

// MoveDown moves the cursor down by count rows
func (n *Navigator) MoveDown(count int) {
	n.SetCursor(n.cursor + count)
}

// PageUp moves the cursor up one screen
func (n *Navigator) PageUp() {
	n.MoveUp(max(n.effectiveHeight(), 1))
}

// PageDown moves the cursor down one screen
func (n *Navigator) PageDown() {
	n.MoveDown(max(n.effectiveHeight(), 1))
}

// Home moves the cursor to the first row
func (n *Navigator) Home() {
	n.SetCursor(0)
}

// End moves the cursor to the last row
func (n *Navigator) End() {
	n.SetCursor(n.totalRows - 1)
}

// SetCursor places the cursor on index and scrolls it into view
func (n *Navigator) SetCursor(index int) {
	n.cursor = clamp(index, 0, n.totalRows-1)
	n.ensureCursorVisible()
}

// FocusLeft moves header focus one column left, wrapping around
func (n *Navigator) FocusLeft() {
	if n.totalColumns == 0 {
		return
	}
	n.column = (n.column - 1 + n.totalColumns) % n.totalColumns
}

// FocusRight moves header focus one column right, wrapping around
func (n *Navigator) FocusRight() {
	if n.totalColumns == 0 {
		return
	}
	n.column = (n.column + 1) % n.totalColumns
}

// FocusColumn focuses the column at index, if it exists
func (n *Navigator) FocusColumn(index int) bool {
	if index < 0 || index >= n.totalColumns {
		return false
	}
	n.column = index
	return true
}

// effectiveHeight is the viewport height minus the lines taken by the
// "more above" and "more below" indicators
func (n *Navigator) effectiveHeight() int {
	h := n.viewportHeight
	if n.viewportOffset > 0 {
		h--
	}
	if n.viewportOffset+h < n.totalRows {
		h--
	}
	return max(h, 1)
}

// ensureCursorVisible adjusts the viewport to keep the cursor on screen
func (n *Navigator) ensureCursorVisible() {
	if n.totalRows <= n.viewportHeight {
		n.viewportOffset = 0
		return
	}

	if n.cursor < n.viewportOffset {
		n.viewportOffset = n.cursor
	}

	// Scrolling changes which indicators are shown, so settle in a few passes
	for range 3 {
		h := n.effectiveHeight()
		if n.cursor >= n.viewportOffset+h {
			n.viewportOffset = n.cursor - h + 1
		}
	}

	maxOffset := n.totalRows - n.effectiveHeight()
	n.viewportOffset = clamp(n.viewportOffset, 0, max(maxOffset, 0))
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
