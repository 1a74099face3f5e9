package query

// Selection tracks which booking ids are ticked in the current list view.
// It is scoped to the view the operator is looking at: "select all" means
// all of the filtered view, never the whole collection, and ids that drop
// out of the view after a refilter are pruned.
//
// The HTTP surface itself is stateless (bulk-delete takes an explicit id
// list); Selection is the coordinator for in-process and front-end
// callers that keep a view open and hand its Selected output to the bulk
// endpoints.
//
// Selection is not safe for concurrent use; the admin flow is a single
// request/response cycle per view.
type Selection struct {
	ids map[uint64]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[uint64]struct{})}
}

// Toggle flips the id and reports whether it is selected afterwards.
func (s *Selection) Toggle(id uint64) bool {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// Has reports whether the id is selected.
func (s *Selection) Has(id uint64) bool {
	_, ok := s.ids[id]
	return ok
}

// Count returns the number of selected ids.
func (s *Selection) Count() int { return len(s.ids) }

// Clear empties the selection.
func (s *Selection) Clear() { s.ids = make(map[uint64]struct{}) }

// AllSelected reports whether every id of the view is selected.  An empty
// view never counts as fully selected.
func (s *Selection) AllSelected(view []uint64) bool {
	if len(view) == 0 {
		return false
	}
	for _, id := range view {
		if !s.Has(id) {
			return false
		}
	}
	return true
}

// ToggleAll flips between "everything in the view" and "nothing": when
// the whole view is already selected it clears, otherwise it selects
// exactly the view's ids (discarding any stale ids from earlier views).
func (s *Selection) ToggleAll(view []uint64) {
	if s.AllSelected(view) {
		s.Clear()
		return
	}
	s.Clear()
	for _, id := range view {
		s.ids[id] = struct{}{}
	}
}

// Prune drops selected ids that are no longer part of the view, keeping
// the selection consistent after a refilter or refresh.
func (s *Selection) Prune(view []uint64) {
	keep := make(map[uint64]struct{}, len(view))
	for _, id := range view {
		keep[id] = struct{}{}
	}
	for id := range s.ids {
		if _, ok := keep[id]; !ok {
			delete(s.ids, id)
		}
	}
}

// Selected returns the selected ids in the order they appear in the view.
func (s *Selection) Selected(view []uint64) []uint64 {
	out := make([]uint64, 0, len(s.ids))
	for _, id := range view {
		if s.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
