package graph

import (
	"strings"
	"testing"

	"github.com/patternkit/lattice/pkg/common"
)

func formatFixture() *Graph {
	return &Graph{
		Nodes: []Node{
			{
				Component: common.Component{ID: 1, Name: "button", Title: "Button", Complexity: common.ComplexitySimple},
				Tags: []common.TagAssignment{
					{ComponentID: 1, Tag: "actions", Type: common.TagCategory},
					{ComponentID: 1, Tag: "interactive", Type: common.TagInteraction},
				},
			},
			{
				Component: common.Component{ID: 3, Name: "date-picker", Title: "Date Picker", Complexity: common.ComplexityComplex, RequiresScript: true},
			},
			{
				Component: common.Component{ID: 4, Name: "modal", Title: "Modal Dialog", Complexity: common.ComplexityComplex, RequiresScript: true},
			},
		},
		Edges: []common.Edge{
			{SourceID: 3, TargetID: 1, Type: common.EdgeRequires, Weight: 0.8},
			{SourceID: 4, TargetID: 1, Type: common.EdgeSuggests, Weight: 0.6},
			{SourceID: 4, TargetID: 3, Type: common.EdgeRelated, Weight: 0.3},
		},
	}
}

func TestRenderInteractive(t *testing.T) {
	rendered := RenderInteractive(formatFixture())

	if len(rendered.Nodes) != 3 || len(rendered.Edges) != 3 {
		t.Fatalf("unexpected shape: %d nodes, %d edges", len(rendered.Nodes), len(rendered.Edges))
	}

	button := rendered.Nodes[0]
	if button.Label != "Button" || button.Category != "actions" || button.Complexity != "simple" {
		t.Errorf("unexpected button node: %+v", button)
	}
	if len(button.Tags) != 2 {
		t.Errorf("expected both tags on the node, got %v", button.Tags)
	}

	picker := rendered.Nodes[1]
	if picker.Category != "" || !picker.RequiresScript {
		t.Errorf("unexpected date-picker node: %+v", picker)
	}

	if rendered.Edges[0].ID != "e1" || rendered.Edges[2].ID != "e3" {
		t.Errorf("edge ids must be a deterministic sequence, got %+v", rendered.Edges)
	}
	if rendered.Edges[0].Weight != 0.8 || rendered.Edges[0].Type != "requires" {
		t.Errorf("unexpected first edge: %+v", rendered.Edges[0])
	}

	if _, ok := rendered.Styles.Complexity[common.ComplexityComplex]; !ok {
		t.Error("style table must cover every complexity class")
	}
	if _, ok := rendered.Styles.Edges[common.EdgeRequires]; !ok {
		t.Error("style table must cover relationship types")
	}
}

func TestRenderForce(t *testing.T) {
	rendered := RenderForce(formatFixture())

	if len(rendered.Nodes) != 3 || len(rendered.Links) != 3 {
		t.Fatalf("unexpected shape: %d nodes, %d links", len(rendered.Nodes), len(rendered.Links))
	}

	if rendered.Nodes[0].Group != 1 || rendered.Nodes[1].Group != 3 {
		t.Errorf("groups must follow complexity rank, got %+v", rendered.Nodes)
	}
	link := rendered.Links[0]
	if link.Source != 3 || link.Target != 1 || link.Value != 0.8 || link.Type != "requires" {
		t.Errorf("unexpected link: %+v", link)
	}
}

func TestRenderDiagram(t *testing.T) {
	diagram := RenderDiagram(formatFixture())

	wantLines := []string{
		"graph TD",
		`    button["Button"]`,
		`    date_picker["Date Picker"]`,
		`    modal["Modal Dialog"]`,
		"    date_picker ==> button",
		"    modal -->|suggests| button",
		"    modal --> date_picker",
	}
	got := strings.Split(strings.TrimRight(diagram, "\n"), "\n")
	if len(got) != len(wantLines) {
		t.Fatalf("diagram has %d lines, want %d:\n%s", len(got), len(wantLines), diagram)
	}
	for i, want := range wantLines {
		if got[i] != want {
			t.Errorf("line %d = %q, want %q", i, got[i], want)
		}
	}
}

func TestRenderDispatch(t *testing.T) {
	g := formatFixture()

	if _, err := Render(g, FormatInteractive); err != nil {
		t.Errorf("interactive render failed: %v", err)
	}
	if _, err := Render(g, ""); err != nil {
		t.Errorf("empty format must default to interactive: %v", err)
	}
	rendered, err := Render(g, FormatDiagram)
	if err != nil {
		t.Fatalf("diagram render failed: %v", err)
	}
	if _, ok := rendered.(DiagramGraph); !ok {
		t.Errorf("diagram render returned %T", rendered)
	}

	if _, err := Render(g, Format("dot")); common.KindOf(err) != common.KindInvalidArgument {
		t.Errorf("expected InvalidArgument for an unknown format, got %v", err)
	}
}
