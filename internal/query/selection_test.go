package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/hotel-reservation-admin/internal/query"
)

func Test_Selection_Toggle(t *testing.T) {
	s := query.NewSelection()
	assert.True(t, s.Toggle(1))
	assert.True(t, s.Has(1))
	assert.False(t, s.Toggle(1))
	assert.False(t, s.Has(1))
	assert.Equal(t, 0, s.Count())
}

func Test_Selection_ToggleAll(t *testing.T) {
	view := []uint64{3, 1, 2}
	s := query.NewSelection()

	// nothing selected -> select the whole view
	s.ToggleAll(view)
	assert.Equal(t, 3, s.Count())
	assert.True(t, s.AllSelected(view))

	// whole view selected -> back to empty
	s.ToggleAll(view)
	assert.Equal(t, 0, s.Count())

	// partial selection -> toggle-all completes to the full view
	s.Toggle(1)
	s.ToggleAll(view)
	assert.True(t, s.AllSelected(view))

	// "all" is relative to the current view, not the whole collection:
	// switching to a narrower view and toggling selects only that view
	narrow := []uint64{2}
	s.ToggleAll(narrow)
	assert.True(t, s.Has(2))
	assert.False(t, s.Has(1))
	assert.False(t, s.Has(3))
	assert.Equal(t, 1, s.Count())
}

func Test_Selection_EmptyViewNeverFullySelected(t *testing.T) {
	s := query.NewSelection()
	assert.False(t, s.AllSelected(nil))
	s.ToggleAll(nil)
	assert.Equal(t, 0, s.Count())
}

func Test_Selection_Prune(t *testing.T) {
	s := query.NewSelection()
	s.Toggle(1)
	s.Toggle(2)
	s.Toggle(3)
	s.Prune([]uint64{2, 3, 4})
	assert.False(t, s.Has(1))
	assert.True(t, s.Has(2))
	assert.True(t, s.Has(3))
	assert.Equal(t, 2, s.Count())
}

func Test_Selection_SelectedFollowsViewOrder(t *testing.T) {
	s := query.NewSelection()
	s.Toggle(5)
	s.Toggle(9)
	s.Toggle(7)
	view := []uint64{9, 8, 7, 6, 5}
	assert.Equal(t, []uint64{9, 7, 5}, s.Selected(view))
}
