package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morgan/talent-directory/internal/canonical"
	"github.com/morgan/talent-directory/internal/vocab"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestPipelineRun(t *testing.T) {
	p := New(vocab.Default())

	result := p.Run(ExtractedProfile{
		Name:       strPtr("Jane Doe"),
		Title:      strPtr("Frontend Engineer"),
		Skills:     []any{"js", "React.js", "js", "typescript"},
		OpenToWork: boolPtr(true),
		SourceText: "reach jane at jane@x.com",
	})

	assert.Equal(t, []string{"JavaScript", "React", "TypeScript"}, result.Prepared.Skills)
	assert.True(t, result.Prepared.OpenToWork)
	require.NotNil(t, result.Prepared.Name)
	assert.Equal(t, "Jane Doe", *result.Prepared.Name)

	assert.Equal(t, []canonical.Rename{
		{From: "js", To: "JavaScript"},
		{From: "React.js", To: "React"},
		{From: "js", To: "JavaScript"},
		{From: "typescript", To: "TypeScript"},
	}, result.Normalization.Renamed)
	assert.Empty(t, result.Normalization.Dropped)

	assert.Empty(t, result.Moderation.Errors)
	assert.Equal(t, []string{"jane@x.com"}, result.Moderation.PII.Emails)
	assert.Len(t, result.Moderation.Warnings, 1)
}

func TestPipelineNilFieldsCoerced(t *testing.T) {
	p := New(vocab.Default())

	result := p.Run(ExtractedProfile{})

	assert.False(t, result.Prepared.OpenToWork, "nil openToWork coerces to false")
	assert.Nil(t, result.Prepared.Name)
	assert.Equal(t, []string{}, result.Prepared.Skills)
	assert.Contains(t, result.Moderation.Errors, "Name is required.")
}

func TestPipelineModeratesPreparedNotRaw(t *testing.T) {
	p := New(vocab.Default())

	// 14 raw skills collapse to one after canonicalization, so the prepared
	// profile stays under the skill-count warning threshold.
	raw := make([]any, 14)
	for i := range raw {
		raw[i] = "go"
	}
	result := p.Run(ExtractedProfile{Name: strPtr("Jane Doe"), Skills: raw})

	assert.Equal(t, []string{"Go"}, result.Prepared.Skills)
	assert.Empty(t, result.Moderation.Warnings)
}

func TestPipelineFlatRecord(t *testing.T) {
	p := New(vocab.Default())

	result := p.Run(ExtractedProfile{Title: strPtr("Engineer"), Skills: []any{"go"}})
	flat := result.Prepared.Flat()

	assert.Equal(t, "Engineer", flat["title"])
	assert.Equal(t, []string{"Go"}, flat["skills"])
	assert.Equal(t, false, flat["openToWork"])
	_, hasName := flat["name"]
	assert.False(t, hasName, "absent name stays absent in the flat record")
}

func TestPipelineDeterministic(t *testing.T) {
	p := New(vocab.Default())
	profile := ExtractedProfile{
		Name:   strPtr("Jane Doe"),
		Skills: []any{"vue", "react", "go", "postgres"},
	}

	first := p.Run(profile)
	second := p.Run(profile)
	assert.Equal(t, first, second)
}
