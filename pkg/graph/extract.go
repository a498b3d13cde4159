package graph

import (
	"sort"
	"strings"

	"github.com/patternkit/lattice/pkg/common"
)

// codeUseWeight is the fixed weight of a usage edge detected in a code
// sample; samples carry no phrasing to grade the relationship by.
const codeUseWeight = 0.5

type trigger struct {
	phrases []string
	kind    common.EdgeType
}

// Trigger phrases are checked in order; the first hit classifies the edge.
var triggers = []trigger{
	{phrases: []string{"requires", "must use"}, kind: common.EdgeRequires},
	{phrases: []string{"recommended", "suggested", "works well with"}, kind: common.EdgeSuggests},
	{phrases: []string{"contains", "includes"}, kind: common.EdgeContains},
	{phrases: []string{"alternative", "instead of"}, kind: common.EdgeAlternative},
	{phrases: []string{"conflicts", "incompatible with", "do not combine"}, kind: common.EdgeConflicts},
}

type weightBonus struct {
	prefix string
	bonus  float64
}

var weightBonuses = []weightBonus{
	{prefix: "requires ", bonus: 0.5},
	{prefix: "must use ", bonus: 0.5},
	{prefix: "depends on ", bonus: 0.4},
	{prefix: "recommended with ", bonus: 0.3},
	{prefix: "works well with ", bonus: 0.3},
	{prefix: "can use ", bonus: 0.2},
	{prefix: "optional ", bonus: 0.1},
}

// Extract mines the free text of source for relationships to other catalog
// components and returns the derived edges, ordered by target id. Guidance
// notes are scanned for name mentions and classified by trigger phrases;
// code samples are scanned for class-selector markers and yield uses edges.
// This is a heuristic, not a parser: a name matching incidentally or a
// relationship described without a trigger phrase are accepted limitations,
// surfaced through low weights rather than flagged.
//
// At most one edge is emitted per ordered (source, target) pair. Text-derived
// edges are extracted before code-derived ones, so when both exist the
// text edge wins; repeat mentions with the same type keep the higher weight.
func Extract(snap *common.Snapshot, source common.Component) []common.Edge {
	edges := make(map[int64]common.Edge)

	for _, note := range snap.Notes(source.ID) {
		if note.Kind != common.NoteGuidance {
			continue
		}
		text := strings.ToLower(note.Text)
		for _, other := range snap.Components() {
			if other.ID == source.ID {
				continue
			}
			name := strings.ToLower(other.Name)
			if name == "" || !strings.Contains(text, name) {
				continue
			}

			kind := classifyMention(text)
			weight := weighMention(text, name)
			existing, ok := edges[other.ID]
			if ok {
				if existing.Type == kind && weight > existing.Weight {
					existing.Weight = weight
					edges[other.ID] = existing
				}
				continue
			}
			edges[other.ID] = common.Edge{
				SourceID: source.ID,
				TargetID: other.ID,
				Type:     kind,
				Weight:   weight,
			}
		}
	}

	for _, note := range snap.Notes(source.ID) {
		if note.Kind != common.NoteSample {
			continue
		}
		sample := strings.ToLower(note.Text)
		for _, other := range snap.Components() {
			if other.ID == source.ID {
				continue
			}
			if _, ok := edges[other.ID]; ok {
				continue
			}
			if strings.Contains(sample, classMarker(other.Name)) {
				edges[other.ID] = common.Edge{
					SourceID: source.ID,
					TargetID: other.ID,
					Type:     common.EdgeUses,
					Weight:   codeUseWeight,
				}
			}
		}
	}

	if len(edges) == 0 {
		return nil
	}

	out := make([]common.Edge, 0, len(edges))
	for _, edge := range edges {
		out = append(out, edge)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TargetID < out[j].TargetID
	})
	return out
}

func classifyMention(text string) common.EdgeType {
	for _, t := range triggers {
		for _, phrase := range t.phrases {
			if strings.Contains(text, phrase) {
				return t.kind
			}
		}
	}
	return common.EdgeRelated
}

func weighMention(text, name string) float64 {
	weight := 0.3
	for _, b := range weightBonuses {
		if strings.Contains(text, b.prefix+name) {
			weight += b.bonus
		}
	}
	return min(weight, 1.0)
}

// classMarker builds the CSS class-selector form of a component name, the
// convention code samples follow when they use a component.
func classMarker(name string) string {
	return "." + strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// ExtractTyped runs Extract and keeps only edges of the given types.
func ExtractTyped(snap *common.Snapshot, source common.Component, types ...common.EdgeType) []common.Edge {
	var out []common.Edge
	for _, edge := range Extract(snap, source) {
		for _, t := range types {
			if edge.Type == t {
				out = append(out, edge)
				break
			}
		}
	}
	return out
}
