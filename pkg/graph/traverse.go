package graph

import (
	"github.com/patternkit/lattice/pkg/common"
)

// DefaultMaxDepth bounds dependency traversals when the caller does not
// pick a depth.
const DefaultMaxDepth = 2

// TraversalNode is a visited component tagged with its traversal depth.
type TraversalNode struct {
	Component common.Component `json:"component"`
	Depth     int              `json:"depth"`
}

// Traversal is the ephemeral result of one dependency walk.
type Traversal struct {
	Nodes     []TraversalNode `json:"nodes"`
	Edges     []common.Edge   `json:"edges"`
	NodeCount int             `json:"node_count"`
	EdgeCount int             `json:"edge_count"`
}

// TraverseDependencies walks outward from start along requires and contains
// edges up to maxDepth hops. The visited set is global to the traversal, so
// cyclic and diamond-shaped dependency graphs visit each component exactly
// once. A maxDepth below zero falls back to DefaultMaxDepth; depth 0
// returns only the start node and no edges.
func TraverseDependencies(snap *common.Snapshot, start common.Component, maxDepth int) *Traversal {
	if maxDepth < 0 {
		maxDepth = DefaultMaxDepth
	}

	t := &Traversal{}
	visited := make(map[int64]struct{})
	walkDependencies(snap, start, 0, maxDepth, visited, t)

	t.NodeCount = len(t.Nodes)
	t.EdgeCount = len(t.Edges)
	return t
}

func walkDependencies(
	snap *common.Snapshot,
	current common.Component,
	depth, maxDepth int,
	visited map[int64]struct{},
	t *Traversal,
) {
	visited[current.ID] = struct{}{}
	t.Nodes = append(t.Nodes, TraversalNode{Component: current, Depth: depth})

	if depth+1 > maxDepth {
		return
	}

	for _, edge := range ExtractTyped(snap, current, common.EdgeRequires, common.EdgeContains) {
		target, ok := snap.ComponentByID(edge.TargetID)
		if !ok {
			continue
		}
		t.Edges = append(t.Edges, edge)
		if _, done := visited[target.ID]; done {
			continue
		}
		walkDependencies(snap, target, depth+1, maxDepth, visited, t)
	}
}
