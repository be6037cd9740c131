// Package intake sequences the candidate content pipeline: canonicalize the
// extracted skills, build a prepared profile, and moderate the outcome. The
// pipeline performs no I/O and never fails; everything it finds is reported
// as data.
package intake

import (
	"github.com/morgan/talent-directory/internal/canonical"
	"github.com/morgan/talent-directory/internal/moderation"
	"github.com/morgan/talent-directory/internal/vocab"
)

// ExtractedProfile is what the external text-extraction service hands us.
// Fields may be absent, mistyped, duplicated, or over-length; the pipeline
// tolerates all of it.
type ExtractedProfile struct {
	Name       *string `json:"name"`
	Title      *string `json:"title"`
	Skills     []any   `json:"skills"`
	OpenToWork *bool   `json:"openToWork"`
	SourceText string  `json:"sourceText,omitempty"`
}

// PreparedProfile is the canonical, review-ready form of an extracted
// profile. Skills are canonicalized, deduplicated, sorted, and capped;
// openToWork is a definite boolean.
type PreparedProfile struct {
	Name       *string  `json:"name"`
	Title      *string  `json:"title"`
	Skills     []string `json:"skills"`
	OpenToWork bool     `json:"openToWork"`
}

// Flat renders the profile as a flat record for diffing against a stored
// record. Absent fields are omitted rather than zeroed so the differ can
// tell "absent" from "empty".
func (p PreparedProfile) Flat() map[string]any {
	record := map[string]any{
		"skills":     p.Skills,
		"openToWork": p.OpenToWork,
	}
	if p.Name != nil {
		record["name"] = *p.Name
	}
	if p.Title != nil {
		record["title"] = *p.Title
	}
	return record
}

// Normalization reports how the raw skill list was rewritten.
type Normalization struct {
	Renamed []canonical.Rename `json:"renamed"`
	Dropped []string           `json:"dropped"`
}

// Result is the single reviewable outcome of one intake run.
type Result struct {
	Prepared      PreparedProfile   `json:"prepared"`
	Moderation    moderation.Report `json:"moderation"`
	Normalization Normalization     `json:"normalization"`
}

// Pipeline runs Normalize → Moderate over extracted profiles. It holds only
// the immutable vocabulary, so a single instance is safe for concurrent use.
type Pipeline struct {
	vocab     *vocab.Vocabulary
	maxSkills int
}

// New builds a pipeline over the given vocabulary with the default skill cap.
func New(v *vocab.Vocabulary) *Pipeline {
	return &Pipeline{vocab: v, maxSkills: canonical.DefaultMaxSkills}
}

// Run executes the pipeline over one extracted profile.
func (p *Pipeline) Run(profile ExtractedProfile) Result {
	skills := canonical.Canonicalize(p.vocab, profile.Skills, p.maxSkills)

	prepared := PreparedProfile{
		Name:       profile.Name,
		Title:      profile.Title,
		Skills:     skills.Normalized,
		OpenToWork: profile.OpenToWork != nil && *profile.OpenToWork,
	}

	report := moderation.Moderate(moderation.Candidate{
		Name:   deref(prepared.Name),
		Title:  deref(prepared.Title),
		Skills: prepared.Skills,
	}, profile.SourceText)

	return Result{
		Prepared:      prepared,
		Moderation:    report,
		Normalization: Normalization{Renamed: skills.Renamed, Dropped: skills.Dropped},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
