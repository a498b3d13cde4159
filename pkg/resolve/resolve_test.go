package resolve

import (
	"reflect"
	"testing"

	"github.com/patternkit/lattice/pkg/common"
)

func testSnapshot() *common.Snapshot {
	components := []common.Component{
		{ID: 1, Name: "button", Title: "Button", Complexity: common.ComplexitySimple},
		{ID: 2, Name: "icon", Title: "Icon", Complexity: common.ComplexitySimple},
		{ID: 3, Name: "date-picker", Title: "Date Picker", Complexity: common.ComplexityComplex, RequiresScript: true},
		{ID: 4, Name: "modal", Title: "Modal Dialog", Complexity: common.ComplexityComplex, RequiresScript: true},
		{ID: 5, Name: "message", Title: "Message", Complexity: common.ComplexityModerate},
		{ID: 6, Name: "tab", Title: "Tab"},
		{ID: 7, Name: "table", Title: "Table"},
		{ID: 8, Name: "accordion", Title: "Accordion", Complexity: common.ComplexityModerate, RequiresScript: true},
		// Duplicate catalog entries exist in real data; resolution must
		// tolerate them, not fail.
		{ID: 9, Name: "card", Title: "Card"},
		{ID: 10, Name: "card", Title: "Card (legacy)"},
	}
	return common.NewSnapshot(components, nil, nil)
}

func TestResolve(t *testing.T) {
	snap := testSnapshot()

	tests := []struct {
		name   string
		token  string
		wantID int64
	}{
		{name: "exact name", token: "button", wantID: 1},
		{name: "exact name uppercase", token: "BUTTON", wantID: 1},
		{name: "exact title mixed case", token: "Button", wantID: 1},
		{name: "numeric id", token: "4", wantID: 4},
		{name: "plural variant", token: "buttons", wantID: 1},
		{name: "singular variant of stored plural", token: "tabs", wantID: 6},
		{name: "hyphen normalization", token: "datepicker", wantID: 3},
		{name: "space normalization", token: "date picker", wantID: 3},
		{name: "title with space", token: "modal dialog", wantID: 4},
		{name: "prefix prefers shortest name", token: "ta", wantID: 6},
		{name: "substring match", token: "cordio", wantID: 8},
		{name: "duplicate names pick deterministically", token: "card", wantID: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(snap, tt.token)
			if err != nil {
				t.Fatalf("Resolve(%q) returned error: %v", tt.token, err)
			}
			if got.ID != tt.wantID {
				t.Errorf("Resolve(%q) = component %d (%s), want %d", tt.token, got.ID, got.Name, tt.wantID)
			}
		})
	}
}

func TestResolveNotFoundWithSuggestions(t *testing.T) {
	snap := testSnapshot()

	_, err := Resolve(snap, "buitton")
	if err == nil {
		t.Fatal("expected an error for a misspelled token")
	}
	if !common.IsNotFound(err) {
		t.Fatalf("expected NotFound, got kind %q", common.KindOf(err))
	}

	suggestions, _ := common.ErrorContext(err)["suggestions"].([]string)
	if len(suggestions) == 0 {
		t.Fatal("expected near-miss suggestions for a misspelled token")
	}
	if suggestions[0] != "button" {
		t.Errorf("expected %q as best suggestion, got %v", "button", suggestions)
	}
	if len(suggestions) > 3 {
		t.Errorf("expected at most 3 suggestions, got %d", len(suggestions))
	}
}

func TestResolveUnknownID(t *testing.T) {
	_, err := Resolve(testSnapshot(), "999")
	if !common.IsNotFound(err) {
		t.Fatalf("expected NotFound for an unknown id, got %v", err)
	}
}

func TestResolveEmptyToken(t *testing.T) {
	_, err := Resolve(testSnapshot(), "  ")
	if common.KindOf(err) != common.KindInvalidArgument {
		t.Fatalf("expected InvalidArgument for an empty token, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	snap := testSnapshot()

	matches, err := Search(snap, "tab", 0)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	var names []string
	for _, m := range matches {
		names = append(names, m.Component.Name)
	}
	want := []string{"tab", "table"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Search(%q) names = %v, want %v", "tab", names, want)
	}
	if matches[0].Score != 100 {
		t.Errorf("exact match score = %d, want 100", matches[0].Score)
	}
	if matches[1].Score != 90 {
		t.Errorf("prefix match score = %d, want 90", matches[1].Score)
	}
}

func TestSearchRespectsLimitAndFloor(t *testing.T) {
	snap := testSnapshot()

	matches, err := Search(snap, "tab", 1)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected limit to clip results, got %d", len(matches))
	}

	matches, err = Search(snap, "zzzz", 0)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected no matches below the acceptance floor, got %d", len(matches))
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	_, err := Search(testSnapshot(), "", 0)
	if common.KindOf(err) != common.KindInvalidArgument {
		t.Fatalf("expected InvalidArgument for an empty query, got %v", err)
	}
}
