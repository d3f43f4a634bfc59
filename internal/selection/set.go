package selection

import "slices"

// idSet is a set of ids that iterates in insertion order.
type idSet struct {
	order []string
	index map[string]struct{}
}

func newIDSet() *idSet {
	return &idSet{index: make(map[string]struct{})}
}

// add reports whether id was newly added.
func (s *idSet) add(id string) bool {
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// remove reports whether id was present.
func (s *idSet) remove(id string) bool {
	if _, ok := s.index[id]; !ok {
		return false
	}
	delete(s.index, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	return true
}

func (s *idSet) has(id string) bool {
	_, ok := s.index[id]
	return ok
}

func (s *idSet) len() int { return len(s.order) }

// ids returns a copy in insertion order, never nil.
func (s *idSet) ids() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *idSet) clear() {
	s.order = nil
	s.index = make(map[string]struct{})
}

// retain keeps the ids for which keep is true and returns the removed ids.
func (s *idSet) retain(keep func(id string) bool) []string {
	var removed []string
	s.order = slices.DeleteFunc(s.order, func(id string) bool {
		if keep(id) {
			return false
		}
		delete(s.index, id)
		removed = append(removed, id)
		return true
	})
	return removed
}
