package dashboard

// TableState is the caller owned cursor of the action table: which row is
// selected and which row is drawn first. It outlives individual renders;
// rendering only moves the offset to keep the selection visible.
type TableState struct {
	selected *int
	offset   int
}

// NewTableState returns a state with row i selected.
func NewTableState(i int) TableState {
	var s TableState
	s.Select(i)
	return s
}

// Selected returns the selected row, if any.
func (s *TableState) Selected() (int, bool) {
	if s == nil || s.selected == nil {
		return 0, false
	}
	return *s.selected, true
}

// Select selects row i. Negative indexes clear the selection.
func (s *TableState) Select(i int) {
	if i < 0 {
		s.selected = nil
		return
	}
	s.selected = &i
}

// SelectNone clears the selection.
func (s *TableState) SelectNone() {
	s.selected = nil
	s.offset = 0
}

// Offset returns the first row drawn.
func (s *TableState) Offset() int {
	if s == nil {
		return 0
	}
	return s.offset
}

// SelectNext moves the selection down one row in a table of n rows,
// stopping at the last row.
func (s *TableState) SelectNext(n int) {
	if n <= 0 {
		return
	}
	i, ok := s.Selected()
	switch {
	case !ok:
		i = 0
	case i >= n-1:
		i = n - 1
	default:
		i++
	}
	s.Select(i)
}

// SelectPrevious moves the selection up one row, stopping at the first row.
func (s *TableState) SelectPrevious(n int) {
	if n <= 0 {
		return
	}
	i, ok := s.Selected()
	switch {
	case !ok:
		i = n - 1
	case i > n-1:
		i = n - 1
	case i > 0:
		i--
	}
	s.Select(i)
}

// SelectFirst selects the first row.
func (s *TableState) SelectFirst() {
	s.Select(0)
}

// SelectLast selects the last row of a table of n rows.
func (s *TableState) SelectLast(n int) {
	if n <= 0 {
		s.SelectNone()
		return
	}
	s.Select(n - 1)
}

// scroll keeps the offset in range for n rows shown height at a time and
// moves it just enough for the selected row to be visible.
func (s *TableState) scroll(n, height int) int {
	if s == nil {
		return 0
	}
	maxOffset := max(n-height, 0)
	offset := min(max(s.offset, 0), maxOffset)
	if i, ok := s.Selected(); ok && i < n {
		if i < offset {
			offset = i
		}
		if i >= offset+height {
			offset = i - height + 1
		}
	}
	s.offset = offset
	return offset
}
