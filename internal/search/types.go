// Package search plans and executes hybrid retrieval over the directory:
// semantic (embedding-distance) ranking when a query embedding is available,
// and a deterministic keyword ordering otherwise. Facet filters apply
// identically in both modes.
package search

import (
	"context"

	"github.com/google/uuid"
)

// Kind identifies a searchable entity type.
type Kind string

// Searchable entity kinds.
const (
	KindPerson  Kind = "person"
	KindProject Kind = "project"
)

// Limit bounds enforced before execution.
const (
	MinLimit     = 1
	MaxLimit     = 30
	DefaultLimit = 12
)

// Facets are strict filters: every listed skill/sector must be present
// (AND semantics), and openToWork, when set, is an exact match.
type Facets struct {
	Skills     []string
	Sectors    []string
	OpenToWork *bool
}

// Query is one search request. Kinds not listed are not queried at all.
type Query struct {
	Text   string
	Kinds  []Kind
	Facets Facets
	Limit  int
}

// Wants reports whether the query requests the given entity kind.
func (q Query) Wants(kind Kind) bool {
	for _, k := range q.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Person is one people-search hit.
type Person struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Title      string    `json:"title"`
	Skills     []string  `json:"skills"`
	OpenToWork bool      `json:"openToWork"`
	Score      float64   `json:"score"`
}

// Project is one project-search hit.
type Project struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Summary string    `json:"summary"`
	Skills  []string  `json:"skills"`
	Sectors []string  `json:"sectors"`
	Score   float64   `json:"score"`
}

// Results holds the per-kind result sets. Unrequested kinds are present but
// empty.
type Results struct {
	People   []Person  `json:"people"`
	Projects []Project `json:"projects"`
}

// CompiledQuery is a fully parameterized statement ready for the store.
// User-supplied values are always bound through Args, never interpolated
// into SQL.
type CompiledQuery struct {
	SQL      string
	Args     []any
	Semantic bool
}

// Store is the retrieval contract a storage engine must satisfy. For
// semantic queries, implementations fill Score with the raw vector distance;
// the engine converts distance to similarity. For keyword queries, Score is
// left at zero.
type Store interface {
	SearchPeople(ctx context.Context, q CompiledQuery) ([]Person, error)
	SearchProjects(ctx context.Context, q CompiledQuery) ([]Project, error)
}
