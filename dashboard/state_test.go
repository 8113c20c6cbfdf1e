package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableStateNavigation(t *testing.T) {
	var s TableState
	_, ok := s.Selected()
	assert.False(t, ok)

	s.SelectNext(3)
	i, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, 0, i)

	s.SelectNext(3)
	s.SelectNext(3)
	s.SelectNext(3)
	i, _ = s.Selected()
	assert.Equal(t, 2, i, "stops at the last row")

	s.SelectPrevious(3)
	i, _ = s.Selected()
	assert.Equal(t, 1, i)

	s.SelectFirst()
	s.SelectPrevious(3)
	i, _ = s.Selected()
	assert.Equal(t, 0, i, "stops at the first row")

	s.SelectLast(3)
	i, _ = s.Selected()
	assert.Equal(t, 2, i)

	s.Select(-1)
	_, ok = s.Selected()
	assert.False(t, ok)

	s.SelectPrevious(3)
	i, _ = s.Selected()
	assert.Equal(t, 2, i, "previous from nothing starts at the bottom")

	s.SelectLast(0)
	_, ok = s.Selected()
	assert.False(t, ok)
}

func TestTableStateNilIsUnselected(t *testing.T) {
	var s *TableState
	_, ok := s.Selected()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Offset())
	assert.Equal(t, 0, s.scroll(10, 3))
}

func TestTableStateScroll(t *testing.T) {
	s := NewTableState(5)
	assert.Equal(t, 3, s.scroll(10, 3))
	assert.Equal(t, 3, s.Offset())

	s.Select(4)
	assert.Equal(t, 3, s.scroll(10, 3), "visible rows do not scroll")

	s.Select(0)
	assert.Equal(t, 0, s.scroll(10, 3))

	s.Select(42)
	assert.Equal(t, 0, s.scroll(10, 3), "out of range selections do not scroll")
	i, _ := s.Selected()
	assert.Equal(t, 42, i, "scrolling leaves the selection alone")

	s.SelectNone()
	assert.Equal(t, 0, s.Offset())
}
