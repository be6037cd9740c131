package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/morgan/talent-directory/internal/embedding"
)

// Engine plans and executes hybrid search requests. It holds no per-request
// state and is safe for concurrent use.
type Engine struct {
	store   Store
	gateway embedding.Gateway
}

// NewEngine builds an engine over the store. gateway may be nil, in which
// case every request runs in keyword mode.
func NewEngine(store Store, gateway embedding.Gateway) *Engine {
	return &Engine{store: store, gateway: gateway}
}

// Mode reports the retrieval mode the engine would use for the given query
// text.
func (e *Engine) Mode(text string) Mode {
	return ChooseMode(text, e.gateway != nil)
}

// Search executes one request. The query text is embedded at most once and
// shared across entity kinds; per-kind store queries run concurrently, and a
// failure in any of them fails the whole request rather than returning
// partial results. An embedding failure in semantic mode is surfaced as a
// *embedding.GatewayError, never silently downgraded to keyword mode.
func (e *Engine) Search(ctx context.Context, q Query) (Results, error) {
	limit := ClampLimit(q.Limit)
	mode := e.Mode(q.Text)

	var vector []float32
	if mode == ModeSemantic {
		var err error
		vector, err = e.gateway.Embed(ctx, q.Text)
		if err != nil {
			return Results{}, err
		}
	}

	results := Results{People: []Person{}, Projects: []Project{}}

	g, ctx := errgroup.WithContext(ctx)
	if q.Wants(KindPerson) {
		compiled := CompilePeople(q, vector, limit)
		g.Go(func() error {
			people, err := e.store.SearchPeople(ctx, compiled)
			if err != nil {
				return err
			}
			if mode == ModeSemantic {
				for i := range people {
					people[i].Score = 1 - people[i].Score
				}
			}
			results.People = people
			return nil
		})
	}
	if q.Wants(KindProject) {
		compiled := CompileProjects(q, vector, limit)
		g.Go(func() error {
			projects, err := e.store.SearchProjects(ctx, compiled)
			if err != nil {
				return err
			}
			if mode == ModeSemantic {
				for i := range projects {
					projects[i].Score = 1 - projects[i].Score
				}
			}
			results.Projects = projects
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Results{}, err
	}
	return results, nil
}
