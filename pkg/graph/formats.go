package graph

import (
	"fmt"
	"strings"

	"github.com/patternkit/lattice/pkg/common"
)

// Format selects the serialization shape of an assembled graph.
type Format string

const (
	// FormatInteractive targets interactive graph viewers: nodes and edges
	// as flat records plus a static style lookup table.
	FormatInteractive Format = "interactive"
	// FormatForce targets force-directed layout engines.
	FormatForce Format = "force"
	// FormatDiagram is a line-oriented textual diagram.
	FormatDiagram Format = "diagram"
)

// Formats lists every supported serialization format.
var Formats = []Format{FormatInteractive, FormatForce, FormatDiagram}

// Render serializes g into the requested format.
func Render(g *Graph, format Format) (any, error) {
	switch format {
	case FormatInteractive, "":
		return RenderInteractive(g), nil
	case FormatForce:
		return RenderForce(g), nil
	case FormatDiagram:
		return DiagramGraph{Diagram: RenderDiagram(g)}, nil
	default:
		return nil, common.InvalidArgumentf("unknown graph format %q", format)
	}
}

// NodeStyle and EdgeStyle are presentation hints for interactive viewers.
// The style table is a fixed lookup, not computed from the graph.
type NodeStyle struct {
	Color string `json:"color"`
	Shape string `json:"shape"`
}

type EdgeStyle struct {
	Line  string `json:"line"`
	Width int    `json:"width"`
}

var complexityStyles = map[common.Complexity]NodeStyle{
	common.ComplexitySimple:   {Color: "#2e7d32", Shape: "round-rectangle"},
	common.ComplexityModerate: {Color: "#f9a825", Shape: "round-rectangle"},
	common.ComplexityComplex:  {Color: "#c62828", Shape: "hexagon"},
}

var edgeStyles = map[common.EdgeType]EdgeStyle{
	common.EdgeRequires:    {Line: "solid", Width: 3},
	common.EdgeSuggests:    {Line: "dashed", Width: 2},
	common.EdgeContains:    {Line: "solid", Width: 2},
	common.EdgeAlternative: {Line: "dotted", Width: 2},
	common.EdgeConflicts:   {Line: "dashed", Width: 3},
	common.EdgeUses:        {Line: "dotted", Width: 1},
	common.EdgeRelated:     {Line: "dotted", Width: 1},
}

// InteractiveGraph is the interactive-viewer serialization.
type InteractiveGraph struct {
	Nodes  []InteractiveNode `json:"nodes"`
	Edges  []InteractiveEdge `json:"edges"`
	Styles InteractiveStyles `json:"styles"`
}

type InteractiveNode struct {
	ID             int64    `json:"id"`
	Label          string   `json:"label"`
	Category       string   `json:"category"`
	Complexity     string   `json:"complexity"`
	RequiresScript bool     `json:"requires_script"`
	Tags           []string `json:"tags"`
}

type InteractiveEdge struct {
	ID     string  `json:"id"`
	Source int64   `json:"source"`
	Target int64   `json:"target"`
	Type   string  `json:"type"`
	Weight float64 `json:"weight"`
}

type InteractiveStyles struct {
	Complexity map[common.Complexity]NodeStyle `json:"complexity"`
	Edges      map[common.EdgeType]EdgeStyle   `json:"edges"`
}

// RenderInteractive serializes g for interactive graph viewers. Edge ids
// are a deterministic sequence so identical input yields identical output.
func RenderInteractive(g *Graph) InteractiveGraph {
	nodes := make([]InteractiveNode, len(g.Nodes))
	for i, node := range g.Nodes {
		category := ""
		tags := make([]string, 0, len(node.Tags))
		for _, tag := range node.Tags {
			tags = append(tags, tag.Tag)
			if category == "" && tag.Type == common.TagCategory {
				category = tag.Tag
			}
		}
		nodes[i] = InteractiveNode{
			ID:             node.Component.ID,
			Label:          node.Component.Title,
			Category:       category,
			Complexity:     string(node.Component.Complexity),
			RequiresScript: node.Component.RequiresScript,
			Tags:           tags,
		}
	}

	edges := make([]InteractiveEdge, len(g.Edges))
	for i, edge := range g.Edges {
		edges[i] = InteractiveEdge{
			ID:     fmt.Sprintf("e%d", i+1),
			Source: edge.SourceID,
			Target: edge.TargetID,
			Type:   string(edge.Type),
			Weight: edge.Weight,
		}
	}

	return InteractiveGraph{
		Nodes:  nodes,
		Edges:  edges,
		Styles: InteractiveStyles{Complexity: complexityStyles, Edges: edgeStyles},
	}
}

// ForceGraph is the force-directed layout serialization.
type ForceGraph struct {
	Nodes []ForceNode `json:"nodes"`
	Links []ForceLink `json:"links"`
}

type ForceNode struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Group      int      `json:"group"`
	Complexity string   `json:"complexity"`
	Tags       []string `json:"tags"`
}

type ForceLink struct {
	Source int64   `json:"source"`
	Target int64   `json:"target"`
	Value  float64 `json:"value"`
	Type   string  `json:"type"`
}

// RenderForce serializes g for force-directed layout engines. Node groups
// are the numeric complexity rank.
func RenderForce(g *Graph) ForceGraph {
	nodes := make([]ForceNode, len(g.Nodes))
	for i, node := range g.Nodes {
		tags := make([]string, 0, len(node.Tags))
		for _, tag := range node.Tags {
			tags = append(tags, tag.Tag)
		}
		nodes[i] = ForceNode{
			ID:         node.Component.ID,
			Name:       node.Component.Name,
			Group:      node.Component.Complexity.Rank(),
			Complexity: string(node.Component.Complexity),
			Tags:       tags,
		}
	}

	links := make([]ForceLink, len(g.Edges))
	for i, edge := range g.Edges {
		links[i] = ForceLink{
			Source: edge.SourceID,
			Target: edge.TargetID,
			Value:  edge.Weight,
			Type:   string(edge.Type),
		}
	}

	return ForceGraph{Nodes: nodes, Links: links}
}

// DiagramGraph wraps the textual diagram for JSON transport.
type DiagramGraph struct {
	Diagram string `json:"diagram"`
}

// RenderDiagram serializes g as a mermaid flowchart: one box per node, a
// heavy arrow for requires edges, a labeled arrow for other typed edges
// and a plain arrow for generic related edges.
func RenderDiagram(g *Graph) string {
	var b strings.Builder
	b.WriteString("graph TD\n")

	names := make(map[int64]string, len(g.Nodes))
	for _, node := range g.Nodes {
		id := diagramID(node.Component.Name)
		names[node.Component.ID] = id
		fmt.Fprintf(&b, "    %s[\"%s\"]\n", id, node.Component.Title)
	}

	for _, edge := range g.Edges {
		source, ok := names[edge.SourceID]
		if !ok {
			continue
		}
		target, ok := names[edge.TargetID]
		if !ok {
			continue
		}
		switch edge.Type {
		case common.EdgeRequires:
			fmt.Fprintf(&b, "    %s ==> %s\n", source, target)
		case common.EdgeRelated:
			fmt.Fprintf(&b, "    %s --> %s\n", source, target)
		default:
			fmt.Fprintf(&b, "    %s -->|%s| %s\n", source, edge.Type, target)
		}
	}

	return b.String()
}

// diagramID sanitizes a component name into a diagram-safe identifier.
func diagramID(name string) string {
	id := strings.ToLower(name)
	id = strings.ReplaceAll(id, "-", "_")
	return strings.ReplaceAll(id, " ", "_")
}
