package graph

import (
	"context"
	"sort"

	"github.com/patternkit/lattice/pkg/common"
	"github.com/patternkit/lattice/pkg/resolve"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultNodeCap bounds "all components" requests for cost control.
	DefaultNodeCap = 100

	parallelExtractions = 8
)

// Node is a graph node: a component decorated with its tags.
type Node struct {
	Component common.Component       `json:"component"`
	Tags      []common.TagAssignment `json:"tags"`
}

// Graph is the ephemeral result of one assembly call.
type Graph struct {
	Nodes []Node        `json:"nodes"`
	Edges []common.Edge `json:"edges"`

	// Truncated is set when an "all components" request hit the node cap,
	// so callers can tell a complete graph from a clipped one.
	Truncated bool `json:"truncated"`
}

// AssembleParams selects what goes into an assembled graph.
type AssembleParams struct {
	// Tokens are component references, resolved with the same tolerance as
	// a direct lookup. Unresolvable tokens are dropped silently rather than
	// failing the whole request.
	Tokens []string
	// All selects every catalog component, bounded by NodeCap.
	All bool
	// Types filters edges to the given relationship types. Empty means all.
	Types []common.EdgeType
	// NodeCap overrides DefaultNodeCap when positive.
	NodeCap int
}

// Assemble resolves the requested component set, decorates each node with
// its tags, extracts relationships pairwise within the set, and returns the
// resulting graph. An empty resolved set fails with NotFound: an empty
// graph would be indistinguishable from "no matches".
func Assemble(ctx context.Context, snap *common.Snapshot, params AssembleParams) (*Graph, error) {
	for _, t := range params.Types {
		if !t.Valid() {
			return nil, common.InvalidArgumentf("unknown relationship type %q", t)
		}
	}
	if !params.All && len(params.Tokens) == 0 {
		return nil, common.InvalidArgumentf("no components requested")
	}

	nodeCap := params.NodeCap
	if nodeCap <= 0 {
		nodeCap = DefaultNodeCap
	}

	var members []common.Component
	seen := make(map[int64]struct{})
	truncated := false

	if params.All {
		for _, component := range snap.Components() {
			if len(members) == nodeCap {
				truncated = true
				break
			}
			seen[component.ID] = struct{}{}
			members = append(members, component)
		}
	} else {
		for _, token := range params.Tokens {
			component, err := resolve.Resolve(snap, token)
			if err != nil {
				continue
			}
			if _, dup := seen[component.ID]; dup {
				continue
			}
			if len(members) == nodeCap {
				truncated = true
				break
			}
			seen[component.ID] = struct{}{}
			members = append(members, component)
		}
	}

	if len(members) == 0 {
		return nil, common.NotFoundf("none of the requested components exist")
	}

	nodes := make([]Node, len(members))
	for i, component := range members {
		nodes[i] = Node{Component: component, Tags: snap.Tags(component.ID)}
	}

	perSource := make([][]common.Edge, len(members))
	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(parallelExtractions)
	for i := range members {
		idx := i
		source := members[i]
		eg.Go(func() error {
			perSource[idx] = Extract(snap, source)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	edges := mergeEdges(perSource, seen, params.Types)

	return &Graph{Nodes: nodes, Edges: edges, Truncated: truncated}, nil
}

// mergeEdges unions per-source edge lists, keeping edges whose endpoints
// are both members and whose type is accepted. Duplicate edges of the same
// type keep the higher weight.
func mergeEdges(perSource [][]common.Edge, members map[int64]struct{}, types []common.EdgeType) []common.Edge {
	accepted := func(t common.EdgeType) bool {
		if len(types) == 0 {
			return true
		}
		for _, want := range types {
			if t == want {
				return true
			}
		}
		return false
	}

	type edgeKey struct {
		source, target int64
		kind           common.EdgeType
	}
	merged := make(map[edgeKey]common.Edge)
	var order []edgeKey

	for _, edges := range perSource {
		for _, edge := range edges {
			if _, ok := members[edge.TargetID]; !ok {
				continue
			}
			if !accepted(edge.Type) {
				continue
			}
			key := edgeKey{source: edge.SourceID, target: edge.TargetID, kind: edge.Type}
			existing, ok := merged[key]
			if !ok {
				merged[key] = edge
				order = append(order, key)
				continue
			}
			if edge.Weight > existing.Weight {
				merged[key] = edge
			}
		}
	}

	out := make([]common.Edge, 0, len(order))
	for _, key := range order {
		out = append(out, merged[key])
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SourceID != out[j].SourceID {
			return out[i].SourceID < out[j].SourceID
		}
		if out[i].TargetID != out[j].TargetID {
			return out[i].TargetID < out[j].TargetID
		}
		return out[i].Type < out[j].Type
	})
	return out
}
