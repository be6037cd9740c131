package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/morgan/talent-directory/internal/intake"
	"github.com/morgan/talent-directory/internal/search"
)

func TestPrintIntakeResult(t *testing.T) {
	name := "Jane Doe"
	result := &intake.Result{
		Prepared: intake.PreparedProfile{
			Name:   &name,
			Skills: []string{"Go", "React"},
		},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintIntakeResult(result)

	out := buf.String()
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Go, React")
	assert.Contains(t, out, "publishable")
}

func TestPrintIntakeResultBlocked(t *testing.T) {
	result := &intake.Result{}
	result.Moderation.Errors = []string{"Name is required."}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintIntakeResult(result)

	assert.Contains(t, buf.String(), "BLOCKED")
}

func TestPrintNilResultsNoOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.PrintIntakeResult(nil)
	p.PrintSearchResults(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSearchResults(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSearchResults(&search.Results{
		People:   []search.Person{{Name: "Ada", Title: "Engineer", Score: 0.9}},
		Projects: []search.Project{{Title: "Atlas", Score: 0.5}},
	})

	out := buf.String()
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "Atlas")
	assert.Contains(t, out, "0.900")
}
