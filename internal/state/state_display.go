package state

// chromeRows is the number of screen rows not available to the tree list:
// header, panel title and status line.
const chromeRows = 3

// VisibleRows is how many tree rows fit on screen.
func (s *AppState) VisibleRows() int {
	rows := s.ScreenHeight - chromeRows
	if rows < 1 {
		return 1
	}
	return rows
}

// updateScrollVisibility keeps the selected row inside the viewport.
func (s *AppState) updateScrollVisibility() {
	idx, ok := s.Selection()
	if !ok {
		s.ScrollOffset = 0
		return
	}
	visibleLines := s.VisibleRows()

	if idx < s.ScrollOffset {
		s.ScrollOffset = idx
	} else if idx >= s.ScrollOffset+visibleLines {
		s.ScrollOffset = idx - visibleLines + 1
	}

	maxOffset := len(s.Tree) - visibleLines
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
	if s.ScrollOffset > maxOffset {
		s.ScrollOffset = maxOffset
	}
}
