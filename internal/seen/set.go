// Package seen tracks item identifiers that have already been processed.
package seen

// Set is an ordered set of item IDs. Insertion order is preserved so that the
// oldest entries can be dropped when the set is truncated for persistence.
type Set struct {
	ids     []string
	members map[string]struct{}
}

// New returns an empty Set.
func New() *Set {
	return &Set{members: make(map[string]struct{})}
}

// FromIDs builds a Set from IDs in insertion order. Duplicates keep their
// first position.
func FromIDs(ids []string) *Set {
	s := New()
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Contains reports whether id is in the set.
func (s *Set) Contains(id string) bool {
	_, ok := s.members[id]
	return ok
}

// Add records id as seen. Adding an existing ID is a no-op and does not
// change its position.
func (s *Set) Add(id string) {
	if _, ok := s.members[id]; ok {
		return
	}
	s.members[id] = struct{}{}
	s.ids = append(s.ids, id)
}

// Len returns the number of IDs in the set.
func (s *Set) Len() int {
	return len(s.ids)
}

// IDs returns all IDs in insertion order.
func (s *Set) IDs() []string {
	cp := make([]string, len(s.ids))
	copy(cp, s.ids)
	return cp
}

// Tail returns the most recently added n IDs in insertion order, or all IDs
// if the set holds fewer than n.
func (s *Set) Tail(n int) []string {
	if n >= len(s.ids) {
		return s.IDs()
	}
	cp := make([]string, n)
	copy(cp, s.ids[len(s.ids)-n:])
	return cp
}
