package analysis

import (
	"strings"
	"testing"

	"github.com/patternkit/lattice/pkg/common"
)

func conflictSnapshot() *common.Snapshot {
	components := []common.Component{
		{ID: 1, Name: "modal", Title: "Modal Dialog", Complexity: common.ComplexityComplex, RequiresScript: true},
		{ID: 2, Name: "message", Title: "Message", Complexity: common.ComplexityModerate},
		{ID: 3, Name: "drawer", Title: "Drawer", Complexity: common.ComplexityComplex, RequiresScript: true},
		{ID: 4, Name: "carousel", Title: "Carousel", Complexity: common.ComplexityComplex, RequiresScript: true},
		{ID: 5, Name: "tooltip", Title: "Tooltip", Complexity: common.ComplexityModerate, RequiresScript: true},
		{ID: 6, Name: "button", Title: "Button", Complexity: common.ComplexitySimple},
	}
	notes := []common.Note{
		{ComponentID: 4, Kind: common.NoteGuidance, Text: "Conflicts with tooltip positioning inside slides."},
	}
	return common.NewSnapshot(components, nil, notes)
}

func pick(t *testing.T, snap *common.Snapshot, ids ...int64) []common.Component {
	t.Helper()
	components := make([]common.Component, 0, len(ids))
	for _, id := range ids {
		component, ok := snap.ComponentByID(id)
		if !ok {
			t.Fatalf("fixture is missing component %d", id)
		}
		components = append(components, component)
	}
	return components
}

func TestCheckConflictsEmptyAndSingle(t *testing.T) {
	snap := conflictSnapshot()

	for _, components := range [][]common.Component{nil, pick(t, snap, 1)} {
		report := CheckConflicts(snap, components)
		if report.HasConflicts || len(report.Conflicts) != 0 || len(report.Warnings) != 0 {
			t.Errorf("fewer than two components must never conflict, got %+v", report)
		}
	}
}

func TestCheckConflictsModalMessageWarnsOnly(t *testing.T) {
	snap := conflictSnapshot()

	report := CheckConflicts(snap, pick(t, snap, 1, 2))

	if report.HasConflicts {
		t.Error("a warning-severity rule must not set has_conflicts")
	}
	if len(report.Warnings) == 0 {
		t.Fatal("expected the modal/message stacking warning")
	}
	warning := report.Warnings[0]
	if warning.Severity != SeverityWarning {
		t.Errorf("severity = %q, want %q", warning.Severity, SeverityWarning)
	}
	if !strings.Contains(warning.Message, "z-index") {
		t.Errorf("warning should cite z-index stacking, got %q", warning.Message)
	}
	if warning.Fix == "" {
		t.Error("rule findings must carry a suggested fix")
	}
}

func TestCheckConflictsErrorRule(t *testing.T) {
	snap := conflictSnapshot()

	report := CheckConflicts(snap, pick(t, snap, 1, 3))

	if !report.HasConflicts {
		t.Fatal("expected the focus-trap rule to be a hard conflict")
	}
	if len(report.Conflicts) != 1 || report.Conflicts[0].Severity != SeverityError {
		t.Errorf("unexpected conflicts: %+v", report.Conflicts)
	}
}

func TestCheckConflictsRuleNeedsAllMembers(t *testing.T) {
	snap := conflictSnapshot()

	report := CheckConflicts(snap, pick(t, snap, 1, 6))
	if report.HasConflicts || len(report.Warnings) != 0 {
		t.Errorf("a partial rule match must not fire, got %+v", report)
	}
}

func TestCheckConflictsExplicitEdge(t *testing.T) {
	snap := conflictSnapshot()

	report := CheckConflicts(snap, pick(t, snap, 4, 5))

	if !report.HasConflicts {
		t.Fatal("expected the explicit conflicts edge to be reported")
	}
	found := false
	for _, conflict := range report.Conflicts {
		if strings.Contains(conflict.Message, "carousel") && strings.Contains(conflict.Message, "tooltip") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a carousel/tooltip conflict, got %+v", report.Conflicts)
	}
}

func TestCheckConflictsVolumeWarnings(t *testing.T) {
	components := []common.Component{
		{ID: 1, Name: "one", Complexity: common.ComplexityComplex, RequiresScript: true},
		{ID: 2, Name: "two", Complexity: common.ComplexityComplex, RequiresScript: true},
		{ID: 3, Name: "three", Complexity: common.ComplexityComplex, RequiresScript: true},
		{ID: 4, Name: "four", Complexity: common.ComplexityComplex, RequiresScript: true},
		{ID: 5, Name: "five", Complexity: common.ComplexitySimple, RequiresScript: true},
		{ID: 6, Name: "six", Complexity: common.ComplexitySimple, RequiresScript: true},
	}
	snap := common.NewSnapshot(components, nil, nil)

	report := CheckConflicts(snap, components)

	if report.HasConflicts {
		t.Error("volume heuristics are warnings, not conflicts")
	}
	if len(report.Warnings) != 2 {
		t.Fatalf("expected complexity and script volume warnings, got %+v", report.Warnings)
	}
	for _, warning := range report.Warnings {
		if warning.Severity != SeverityWarning {
			t.Errorf("volume warning severity = %q, want %q", warning.Severity, SeverityWarning)
		}
	}
}
