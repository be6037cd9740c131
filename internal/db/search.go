package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/morgan/talent-directory/internal/search"
)

var _ search.Store = (*DB)(nil)

// SearchPeople runs a compiled people query. For semantic queries the
// distance column is scanned into Score; the engine converts it to a
// similarity afterwards.
func (db *DB) SearchPeople(ctx context.Context, q search.CompiledQuery) ([]search.Person, error) {
	rows, err := db.pool.Query(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query people: %w", err)
	}
	defer rows.Close()

	people := []search.Person{}
	for rows.Next() {
		var p search.Person
		if q.Semantic {
			err = rows.Scan(&p.ID, &p.Name, &p.Title, &p.Skills, &p.OpenToWork, &p.Score)
		} else {
			err = rows.Scan(&p.ID, &p.Name, &p.Title, &p.Skills, &p.OpenToWork)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		if p.Skills == nil {
			p.Skills = []string{}
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read people rows: %w", err)
	}
	return people, nil
}

// SearchProjects runs a compiled project query.
func (db *DB) SearchProjects(ctx context.Context, q search.CompiledQuery) ([]search.Project, error) {
	rows, err := db.pool.Query(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []search.Project{}
	for rows.Next() {
		var p search.Project
		if q.Semantic {
			err = rows.Scan(&p.ID, &p.Title, &p.Summary, &p.Skills, &p.Sectors, &p.Score)
		} else {
			err = rows.Scan(&p.ID, &p.Title, &p.Summary, &p.Skills, &p.Sectors)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		if p.Skills == nil {
			p.Skills = []string{}
		}
		if p.Sectors == nil {
			p.Sectors = []string{}
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read project rows: %w", err)
	}
	return projects, nil
}

// GetPersonRecord fetches a stored person as a flat record for review
// diffing. Returns nil (not an error) when no such person exists.
func (db *DB) GetPersonRecord(ctx context.Context, id uuid.UUID) (map[string]any, error) {
	var (
		name, title string
		skills      []string
		openToWork  bool
	)
	err := db.pool.QueryRow(ctx,
		`SELECT name, title, skills, open_to_work FROM people WHERE id = $1`,
		id,
	).Scan(&name, &title, &skills, &openToWork)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get person %s: %w", id, err)
	}
	if skills == nil {
		skills = []string{}
	}
	return map[string]any{
		"name":       name,
		"title":      title,
		"skills":     skills,
		"openToWork": openToWork,
	}, nil
}
