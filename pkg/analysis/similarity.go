package analysis

import (
	"math"
	"sort"

	"github.com/patternkit/lattice/pkg/common"
)

// DefaultMinShared is the default minimum number of shared tags for a
// component to count as similar.
const DefaultMinShared = 2

// SimilarComponent is one similarity hit: a component, its score and the
// tags it shares with the source.
type SimilarComponent struct {
	Component  common.Component `json:"component"`
	Score      float64          `json:"score"`
	SharedTags []string         `json:"shared_tags"`
}

// SimilarityResult is the outcome of one similarity query.
type SimilarityResult struct {
	Source common.Component `json:"source"`
	// NoTags flags that the source has no tags at all, which makes
	// similarity undefined; Matches is then empty by construction.
	NoTags     bool               `json:"no_tags"`
	Matches    []SimilarComponent `json:"matches"`
	Considered int                `json:"considered"`
}

// Similar scores every other catalog component against source by shared
// tags: score = shared / total source tags * 100, rounded to one decimal.
// Components sharing fewer than minShared tags are skipped, and the source
// never appears in its own result list. A minShared of 0 or less falls
// back to DefaultMinShared; a limit of 0 or less means no limit.
func Similar(snap *common.Snapshot, source common.Component, minShared, limit int) *SimilarityResult {
	if minShared <= 0 {
		minShared = DefaultMinShared
	}

	result := &SimilarityResult{Source: source, Considered: snap.Len() - 1}

	sourceTags := snap.TagNames(source.ID)
	if len(sourceTags) == 0 {
		result.NoTags = true
		return result
	}

	tagSet := make(map[string]struct{}, len(sourceTags))
	for _, tag := range sourceTags {
		tagSet[tag] = struct{}{}
	}

	for _, other := range snap.Components() {
		if other.ID == source.ID {
			continue
		}

		var shared []string
		for _, tag := range snap.TagNames(other.ID) {
			if _, ok := tagSet[tag]; ok {
				shared = append(shared, tag)
			}
		}
		if len(shared) < minShared {
			continue
		}

		sort.Strings(shared)
		score := float64(len(shared)) / float64(len(sourceTags)) * 100
		result.Matches = append(result.Matches, SimilarComponent{
			Component:  other,
			Score:      math.Round(score*10) / 10,
			SharedTags: shared,
		})
	}

	sort.Slice(result.Matches, func(i, j int) bool {
		if result.Matches[i].Score != result.Matches[j].Score {
			return result.Matches[i].Score > result.Matches[j].Score
		}
		return result.Matches[i].Component.Name < result.Matches[j].Component.Name
	})

	if limit > 0 && len(result.Matches) > limit {
		result.Matches = result.Matches[:limit]
	}
	return result
}
