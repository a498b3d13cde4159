package analysis

import (
	"fmt"
	"strings"

	"github.com/patternkit/lattice/pkg/common"
	"github.com/patternkit/lattice/pkg/graph"
)

// Severity grades a conflict finding. Errors set HasConflicts; warnings
// are advisory.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Rule is a static precondition over a set of co-present components. The
// rule fires only when every member is present in the checked set.
type Rule struct {
	Components []string `json:"components"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Fix        string   `json:"suggested_fix"`
}

// Known incompatible combinations, curated from recurring support issues.
var defaultRules = []Rule{
	{
		Components: []string{"modal", "message"},
		Severity:   SeverityWarning,
		Message:    "modal and message both render in the overlay layer and compete for z-index stacking order",
		Fix:        "dismiss the modal before showing a message, or render the message inside the modal body",
	},
	{
		Components: []string{"modal", "drawer"},
		Severity:   SeverityError,
		Message:    "modal and drawer both trap keyboard focus; opening one over the other strands assistive-technology users",
		Fix:        "close the drawer before opening a modal, or move the drawer content into the modal",
	},
	{
		Components: []string{"tooltip", "popover"},
		Severity:   SeverityWarning,
		Message:    "tooltip and popover on the same trigger fire overlapping hover and focus handlers",
		Fix:        "attach only one floating element per trigger",
	},
	{
		Components: []string{"accordion", "tabs"},
		Severity:   SeverityWarning,
		Message:    "nesting accordion inside tabs doubles the disclosure pattern and confuses keyboard navigation order",
		Fix:        "flatten the hierarchy to a single disclosure level",
	},
}

const (
	// complexWarnThreshold is the number of complex components above which
	// the combination earns a volume warning.
	complexWarnThreshold = 3
	// scriptWarnThreshold is the same for script-requiring components.
	scriptWarnThreshold = 5
)

// Conflict is one finding in a conflict report.
type Conflict struct {
	Components []string `json:"components"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Fix        string   `json:"suggested_fix"`
}

// ConflictReport is the outcome of a conflict check over a component set.
type ConflictReport struct {
	HasConflicts bool       `json:"has_conflicts"`
	Conflicts    []Conflict `json:"conflicts"`
	Warnings     []Conflict `json:"warnings"`
	Considered   int        `json:"considered"`
}

// CheckConflicts evaluates the static rule table, explicit conflicts edges
// between the given components, and volume heuristics. Fewer than two
// components can never conflict, so the report is empty for those inputs.
func CheckConflicts(snap *common.Snapshot, components []common.Component) *ConflictReport {
	report := &ConflictReport{Considered: len(components)}
	if len(components) < 2 {
		return report
	}

	present := make(map[string]struct{}, len(components))
	ids := make(map[int64]struct{}, len(components))
	for _, component := range components {
		present[strings.ToLower(component.Name)] = struct{}{}
		ids[component.ID] = struct{}{}
	}

	for _, rule := range defaultRules {
		if !ruleApplies(rule, present) {
			continue
		}
		finding := Conflict{
			Components: rule.Components,
			Severity:   rule.Severity,
			Message:    rule.Message,
			Fix:        rule.Fix,
		}
		if rule.Severity == SeverityError {
			report.Conflicts = append(report.Conflicts, finding)
		} else {
			report.Warnings = append(report.Warnings, finding)
		}
	}

	for _, source := range components {
		for _, edge := range graph.ExtractTyped(snap, source, common.EdgeConflicts) {
			if _, ok := ids[edge.TargetID]; !ok {
				continue
			}
			target, ok := snap.ComponentByID(edge.TargetID)
			if !ok {
				continue
			}
			report.Conflicts = append(report.Conflicts, Conflict{
				Components: []string{source.Name, target.Name},
				Severity:   SeverityError,
				Message: fmt.Sprintf(
					"the guidance for %s declares a conflict with %s (weight %.1f)",
					source.Name, target.Name, edge.Weight,
				),
				Fix: fmt.Sprintf("review the usage guidance for %s and %s before combining them", source.Name, target.Name),
			})
		}
	}

	complexCount := 0
	scriptCount := 0
	for _, component := range components {
		if component.Complexity == common.ComplexityComplex {
			complexCount++
		}
		if component.RequiresScript {
			scriptCount++
		}
	}
	if complexCount > complexWarnThreshold {
		report.Warnings = append(report.Warnings, Conflict{
			Severity: SeverityWarning,
			Message: fmt.Sprintf(
				"%d complex components on one view is a lot; expect a heavy page and a long accessibility review",
				complexCount,
			),
			Fix: "split the view or swap some components for simpler variants",
		})
	}
	if scriptCount > scriptWarnThreshold {
		report.Warnings = append(report.Warnings, Conflict{
			Severity: SeverityWarning,
			Message: fmt.Sprintf(
				"%d components require script; consider the bundle size and a no-script fallback",
				scriptCount,
			),
			Fix: "prefer static variants where interaction is not essential",
		})
	}

	report.HasConflicts = len(report.Conflicts) > 0
	return report
}

func ruleApplies(rule Rule, present map[string]struct{}) bool {
	for _, name := range rule.Components {
		if _, ok := present[strings.ToLower(name)]; !ok {
			return false
		}
	}
	return true
}
