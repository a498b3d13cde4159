package common

// Snapshot is an immutable read-only view of the component catalog, taken
// once at the start of a query. Every core operation works against a single
// snapshot, so concurrent callers never contend on shared mutable state.
//
// Callers must not modify the slices returned by accessor methods.
type Snapshot struct {
	components []Component
	index      map[int64]int
	tags       map[int64][]TagAssignment
	notes      map[int64][]Note
}

// NewSnapshot builds a snapshot from raw catalog rows. Duplicate
// (component, tag) pairs are dropped, keeping the first occurrence.
// Tag and note rows referencing unknown components are ignored.
func NewSnapshot(components []Component, tags []TagAssignment, notes []Note) *Snapshot {
	s := &Snapshot{
		components: components,
		index:      make(map[int64]int, len(components)),
		tags:       make(map[int64][]TagAssignment),
		notes:      make(map[int64][]Note),
	}

	for i := range components {
		s.index[components[i].ID] = i
	}

	seen := make(map[int64]map[string]struct{})
	for _, tag := range tags {
		if _, ok := s.index[tag.ComponentID]; !ok {
			continue
		}
		names := seen[tag.ComponentID]
		if names == nil {
			names = make(map[string]struct{})
			seen[tag.ComponentID] = names
		}
		if _, dup := names[tag.Tag]; dup {
			continue
		}
		names[tag.Tag] = struct{}{}
		s.tags[tag.ComponentID] = append(s.tags[tag.ComponentID], tag)
	}

	for _, note := range notes {
		if _, ok := s.index[note.ComponentID]; !ok {
			continue
		}
		s.notes[note.ComponentID] = append(s.notes[note.ComponentID], note)
	}

	return s
}

// Components returns every component in the snapshot in storage order.
func (s *Snapshot) Components() []Component {
	return s.components
}

// Len returns the number of components in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.components)
}

// ComponentByID looks up a component by its storage id.
func (s *Snapshot) ComponentByID(id int64) (Component, bool) {
	idx, ok := s.index[id]
	if !ok {
		return Component{}, false
	}
	return s.components[idx], true
}

// Tags returns the tag assignments for a component.
func (s *Snapshot) Tags(id int64) []TagAssignment {
	return s.tags[id]
}

// TagNames returns just the tag strings for a component.
func (s *Snapshot) TagNames(id int64) []string {
	assignments := s.tags[id]
	if len(assignments) == 0 {
		return nil
	}
	names := make([]string, len(assignments))
	for i, tag := range assignments {
		names[i] = tag.Tag
	}
	return names
}

// CategoryTag returns the first category-typed tag for a component, or ""
// when the component has none.
func (s *Snapshot) CategoryTag(id int64) string {
	for _, tag := range s.tags[id] {
		if tag.Type == TagCategory {
			return tag.Tag
		}
	}
	return ""
}

// Notes returns the free-text items for a component.
func (s *Snapshot) Notes(id int64) []Note {
	return s.notes[id]
}
