package common

// Complexity classifies how involved a component is to adopt.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
)

// Rank returns a stable numeric ordering for a complexity class,
// starting at 1 for simple. Unknown values rank as moderate.
func (c Complexity) Rank() int {
	switch c {
	case ComplexitySimple:
		return 1
	case ComplexityComplex:
		return 3
	default:
		return 2
	}
}

// TagType labels what aspect of a component a tag describes.
type TagType string

const (
	TagCategory      TagType = "category"
	TagFeature       TagType = "feature"
	TagAccessibility TagType = "accessibility"
	TagInteraction   TagType = "interaction"
)

// EdgeType classifies a derived relationship between two components.
type EdgeType string

const (
	EdgeRequires    EdgeType = "requires"
	EdgeSuggests    EdgeType = "suggests"
	EdgeContains    EdgeType = "contains"
	EdgeAlternative EdgeType = "alternative"
	EdgeConflicts   EdgeType = "conflicts"
	EdgeUses        EdgeType = "uses"
	EdgeRelated     EdgeType = "related"
)

// EdgeTypes lists every valid relationship type.
var EdgeTypes = []EdgeType{
	EdgeRequires,
	EdgeSuggests,
	EdgeContains,
	EdgeAlternative,
	EdgeConflicts,
	EdgeUses,
	EdgeRelated,
}

// Valid reports whether t is a known relationship type.
func (t EdgeType) Valid() bool {
	for _, known := range EdgeTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Component is a single documented catalog item. Components are created by
// the ingestion collaborator and are immutable for the lifetime of a query;
// this core never writes them.
type Component struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Title          string     `json:"title"`
	Complexity     Complexity `json:"complexity"`
	RequiresScript bool       `json:"requires_script"`
}

// TagAssignment links a component to a tag. A given (component, tag) pair
// is unique within a snapshot.
type TagAssignment struct {
	ComponentID int64   `json:"component_id"`
	Tag         string  `json:"tag"`
	Type        TagType `json:"type"`
}

// NoteKind labels the provenance of a free-text item.
type NoteKind string

const (
	NoteGuidance NoteKind = "guidance"
	NoteSample   NoteKind = "sample"
)

// Note is an unstructured free-text item attached to a component, either
// usage guidance or a code sample. Notes are the raw material for
// relationship extraction and carry no structure beyond their kind.
type Note struct {
	ComponentID int64    `json:"component_id"`
	Kind        NoteKind `json:"kind"`
	Text        string   `json:"text"`
}

// Edge is a directed, typed, weighted relationship between two components.
// Edges are derived fresh on every extraction and never persisted.
type Edge struct {
	SourceID int64    `json:"source_id"`
	TargetID int64    `json:"target_id"`
	Type     EdgeType `json:"type"`
	Weight   float64  `json:"weight"`
}
