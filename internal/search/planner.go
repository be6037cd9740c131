package search

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode is the retrieval strategy for one request. It is selected once, up
// front, from configuration and query content; an embedding failure never
// silently demotes a semantic request to keyword mode.
type Mode string

// Retrieval modes.
const (
	ModeKeyword  Mode = "keyword"
	ModeSemantic Mode = "semantic"
)

// ChooseMode picks the retrieval mode: semantic only when the query has text
// and an embedding gateway is configured.
func ChooseMode(text string, gatewayConfigured bool) Mode {
	if strings.TrimSpace(text) == "" || !gatewayConfigured {
		return ModeKeyword
	}
	return ModeSemantic
}

// ClampLimit bounds the per-kind result limit to [MinLimit, MaxLimit],
// substituting the default for an unset (zero) limit.
func ClampLimit(n int) int {
	if n == 0 {
		return DefaultLimit
	}
	if n < MinLimit {
		return MinLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

// CompilePeople builds the people query for the given mode. The embedding is
// only consulted in semantic mode.
func CompilePeople(q Query, embedding []float32, limit int) CompiledQuery {
	b := newQueryBuilder()

	semantic := len(embedding) > 0
	if semantic {
		b.selectClause = fmt.Sprintf(
			"SELECT id, name, title, skills, open_to_work, embedding <=> %s::vector AS distance FROM people",
			b.bind(vectorLiteral(embedding)))
	} else {
		b.selectClause = "SELECT id, name, title, skills, open_to_work FROM people"
	}

	if len(q.Facets.Skills) > 0 {
		b.where("skills @> " + b.bind(q.Facets.Skills))
	}
	if q.Facets.OpenToWork != nil {
		b.where("open_to_work = " + b.bind(*q.Facets.OpenToWork))
	}

	if semantic {
		b.orderBy = "ORDER BY distance ASC"
	} else {
		b.orderBy = "ORDER BY lower(name) ASC"
	}
	return b.compile(limit, semantic)
}

// CompileProjects builds the project query for the given mode.
func CompileProjects(q Query, embedding []float32, limit int) CompiledQuery {
	b := newQueryBuilder()

	semantic := len(embedding) > 0
	if semantic {
		b.selectClause = fmt.Sprintf(
			"SELECT id, title, summary, skills, sectors, embedding <=> %s::vector AS distance FROM projects",
			b.bind(vectorLiteral(embedding)))
	} else {
		b.selectClause = "SELECT id, title, summary, skills, sectors FROM projects"
	}

	if len(q.Facets.Skills) > 0 {
		b.where("skills @> " + b.bind(q.Facets.Skills))
	}
	if len(q.Facets.Sectors) > 0 {
		b.where("sectors @> " + b.bind(q.Facets.Sectors))
	}

	if semantic {
		b.orderBy = "ORDER BY distance ASC"
	} else {
		b.orderBy = "ORDER BY lower(title) ASC"
	}
	return b.compile(limit, semantic)
}

// queryBuilder accumulates conditions and positional arguments so every
// user-supplied value lands in Args.
type queryBuilder struct {
	selectClause string
	conditions   []string
	orderBy      string
	args         []any
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{}
}

// bind appends an argument and returns its placeholder.
func (b *queryBuilder) bind(arg any) string {
	b.args = append(b.args, arg)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *queryBuilder) where(condition string) {
	b.conditions = append(b.conditions, condition)
}

func (b *queryBuilder) compile(limit int, semantic bool) CompiledQuery {
	var sb strings.Builder
	sb.WriteString(b.selectClause)
	if len(b.conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.conditions, " AND "))
	}
	sb.WriteString(" ")
	sb.WriteString(b.orderBy)
	sb.WriteString(" LIMIT ")
	sb.WriteString(b.bind(limit))
	return CompiledQuery{SQL: sb.String(), Args: b.args, Semantic: semantic}
}

// vectorLiteral renders an embedding as a pgvector input literal. The value
// is still bound as a parameter, never spliced into SQL.
func vectorLiteral(v []float32) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = strconv.FormatFloat(float64(f), 'f', -1, 32)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
