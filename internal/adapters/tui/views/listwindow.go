package views

// ListWindow tracks a cursor over a list taller than the screen. The window
// scrolls just enough to keep the cursor visible.
type ListWindow struct {
	height int
	offset int
	cursor int
	total  int
}

// NewListWindow creates a window showing height rows
func NewListWindow(height int) *ListWindow {
	w := &ListWindow{}
	w.SetHeight(height)
	return w
}

// SetHeight changes the number of visible rows
func (w *ListWindow) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	w.height = height
	w.follow()
}

// SetTotal sets the number of items, clamping the cursor
func (w *ListWindow) SetTotal(total int) {
	w.total = total
	w.SetCursor(w.cursor)
}

// Total returns the number of items
func (w *ListWindow) Total() int {
	return w.total
}

// Cursor returns the absolute cursor index
func (w *ListWindow) Cursor() int {
	return w.cursor
}

// SetCursor moves the cursor to pos, clamped to the list
func (w *ListWindow) SetCursor(pos int) {
	if pos >= w.total {
		pos = w.total - 1
	}
	if pos < 0 {
		pos = 0
	}
	w.cursor = pos
	w.follow()
}

// Up moves the cursor up one row
func (w *ListWindow) Up() bool {
	if w.cursor == 0 {
		return false
	}
	w.SetCursor(w.cursor - 1)
	return true
}

// Down moves the cursor down one row
func (w *ListWindow) Down() bool {
	if w.cursor >= w.total-1 {
		return false
	}
	w.SetCursor(w.cursor + 1)
	return true
}

// Range returns the half-open index range of visible rows
func (w *ListWindow) Range() (start, end int) {
	return w.offset, min(w.offset+w.height, w.total)
}

func (w *ListWindow) follow() {
	switch {
	case w.cursor < w.offset:
		w.offset = w.cursor
	case w.cursor >= w.offset+w.height:
		w.offset = w.cursor - w.height + 1
	}
	if maxOffset := max(w.total-w.height, 0); w.offset > maxOffset {
		w.offset = maxOffset
	}
}
