package resolve

import (
	"sort"
	"strconv"
	"strings"

	"github.com/patternkit/lattice/pkg/common"
)

const maxSuggestions = 3

// Resolve maps a human-supplied token to a catalog component. Numeric
// tokens are treated as direct id lookups. Text tokens are matched in
// stages: exact, whitespace/hyphen-normalized, singular/plural variant,
// prefix, substring. When a stage yields several candidates the shortest
// canonical name wins, alphabetical order breaking ties; duplicate catalog
// entries are a known data-quality issue and must not fail resolution.
//
// When nothing matches, the returned error is NotFound and carries up to
// three near-miss names under the "suggestions" context key.
func Resolve(snap *common.Snapshot, token string) (common.Component, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return common.Component{}, common.InvalidArgumentf("empty component token")
	}

	if id, err := strconv.ParseInt(token, 10, 64); err == nil {
		component, ok := snap.ComponentByID(id)
		if !ok {
			return common.Component{}, common.NotFoundf("no component with id %d", id)
		}
		return component, nil
	}

	for _, stage := range matchStages(token) {
		var candidates []common.Component
		for _, component := range snap.Components() {
			if stage(component) {
				candidates = append(candidates, component)
			}
		}
		if len(candidates) > 0 {
			return pickCandidate(candidates), nil
		}
	}

	err := common.NotFoundf("no component matches %q", token)
	if suggestions := Suggestions(snap, token); len(suggestions) > 0 {
		err = err.With("suggestions", suggestions)
	}
	return common.Component{}, err
}

type matchFunc func(common.Component) bool

func matchStages(token string) []matchFunc {
	lowered := strings.ToLower(token)
	squashed := squash(token)
	plural := lowered + "s"
	singular := strings.TrimSuffix(lowered, "s")

	return []matchFunc{
		func(c common.Component) bool {
			return strings.EqualFold(c.Name, token) || strings.EqualFold(c.Title, token)
		},
		func(c common.Component) bool {
			return squash(c.Name) == squashed || squash(c.Title) == squashed
		},
		func(c common.Component) bool {
			name := strings.ToLower(c.Name)
			title := strings.ToLower(c.Title)
			if name == plural || title == plural {
				return true
			}
			return singular != lowered && (name == singular || title == singular)
		},
		func(c common.Component) bool {
			return strings.HasPrefix(strings.ToLower(c.Name), lowered) ||
				strings.HasPrefix(strings.ToLower(c.Title), lowered)
		},
		func(c common.Component) bool {
			return strings.Contains(strings.ToLower(c.Name), lowered) ||
				strings.Contains(strings.ToLower(c.Title), lowered)
		},
	}
}

// squash lowercases a name and strips spaces and hyphens, so that
// "date picker", "date-picker" and "datepicker" compare equal.
func squash(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "-", "")
}

func pickCandidate(candidates []common.Component) common.Component {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c.Name) < len(best.Name) {
			best = c
			continue
		}
		if len(c.Name) == len(best.Name) && c.Name < best.Name {
			best = c
		}
	}
	return best
}

// Suggestions scores every catalog name against the token and returns up
// to three near misses, best first. A near miss scores at least
// SuggestScore; suggestions are advisory and never count as a match.
func Suggestions(snap *common.Snapshot, token string) []string {
	type scored struct {
		name  string
		score int
	}

	var near []scored
	for _, component := range snap.Components() {
		score := Score(token, component.Name)
		if titleScore := Score(token, component.Title); titleScore > score {
			score = titleScore
		}
		if score >= SuggestScore {
			near = append(near, scored{name: component.Name, score: score})
		}
	}

	sort.Slice(near, func(i, j int) bool {
		if near[i].score != near[j].score {
			return near[i].score > near[j].score
		}
		return near[i].name < near[j].name
	})

	names := make([]string, 0, maxSuggestions)
	for _, s := range near {
		if len(names) == maxSuggestions {
			break
		}
		names = append(names, s.name)
	}
	return names
}

// Match is a ranked search hit.
type Match struct {
	Component common.Component `json:"component"`
	Score     int              `json:"score"`
}

// Search ranks every catalog component against the query and returns those
// scoring at or above AcceptScore, best first. Ties order by shorter
// canonical name, then alphabetically. A limit of 0 or less means no limit.
func Search(snap *common.Snapshot, query string, limit int) ([]Match, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, common.InvalidArgumentf("empty search query")
	}

	var matches []Match
	for _, component := range snap.Components() {
		score := Score(query, component.Name)
		if titleScore := Score(query, component.Title); titleScore > score {
			score = titleScore
		}
		if score >= AcceptScore {
			matches = append(matches, Match{Component: component, Score: score})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		ni, nj := matches[i].Component.Name, matches[j].Component.Name
		if len(ni) != len(nj) {
			return len(ni) < len(nj)
		}
		return ni < nj
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}
