package common

import (
	"reflect"
	"testing"
)

func TestNewSnapshotIndexesAndDedupes(t *testing.T) {
	components := []Component{
		{ID: 1, Name: "button", Title: "Button"},
		{ID: 2, Name: "icon", Title: "Icon"},
	}
	tags := []TagAssignment{
		{ComponentID: 1, Tag: "actions", Type: TagCategory},
		{ComponentID: 1, Tag: "actions", Type: TagFeature}, // duplicate pair, dropped
		{ComponentID: 1, Tag: "interactive", Type: TagInteraction},
		{ComponentID: 99, Tag: "orphan", Type: TagCategory}, // unknown component, dropped
	}
	notes := []Note{
		{ComponentID: 2, Kind: NoteGuidance, Text: "Decorative by default."},
		{ComponentID: 99, Kind: NoteSample, Text: ".orphan {}"},
	}

	snap := NewSnapshot(components, tags, notes)

	if snap.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", snap.Len())
	}

	if got := snap.TagNames(1); !reflect.DeepEqual(got, []string{"actions", "interactive"}) {
		t.Errorf("TagNames(1) = %v", got)
	}
	if got := snap.Tags(1); got[0].Type != TagCategory {
		t.Errorf("duplicate (component, tag) pairs must keep the first occurrence, got %+v", got[0])
	}
	if got := snap.CategoryTag(1); got != "actions" {
		t.Errorf("CategoryTag(1) = %q, want %q", got, "actions")
	}
	if got := snap.CategoryTag(2); got != "" {
		t.Errorf("CategoryTag(2) = %q, want empty", got)
	}

	if got := snap.Notes(2); len(got) != 1 || got[0].Kind != NoteGuidance {
		t.Errorf("Notes(2) = %+v", got)
	}
	if got := snap.Notes(99); got != nil {
		t.Errorf("notes for unknown components must be dropped, got %+v", got)
	}

	if _, ok := snap.ComponentByID(2); !ok {
		t.Error("ComponentByID(2) should find the component")
	}
	if _, ok := snap.ComponentByID(42); ok {
		t.Error("ComponentByID(42) should miss")
	}
}

func TestComplexityRank(t *testing.T) {
	tests := []struct {
		complexity Complexity
		want       int
	}{
		{ComplexitySimple, 1},
		{ComplexityModerate, 2},
		{ComplexityComplex, 3},
		{Complexity("unknown"), 2},
	}
	for _, tt := range tests {
		if got := tt.complexity.Rank(); got != tt.want {
			t.Errorf("Rank(%q) = %d, want %d", tt.complexity, got, tt.want)
		}
	}
}

func TestEdgeTypeValid(t *testing.T) {
	for _, known := range EdgeTypes {
		if !known.Valid() {
			t.Errorf("%q should be valid", known)
		}
	}
	if EdgeType("depends").Valid() {
		t.Error("unknown types must not validate")
	}
}
