// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/morgan/talent-directory/internal/intake"
	"github.com/morgan/talent-directory/internal/search"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintIntakeResult outputs a human-readable summary of one pipeline run.
func (p *Printer) PrintIntakeResult(result *intake.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder

	name := "(none)"
	if result.Prepared.Name != nil {
		name = *result.Prepared.Name
	}
	title := "(none)"
	if result.Prepared.Title != nil {
		title = *result.Prepared.Title
	}
	sb.WriteString(fmt.Sprintf("Name:   %s\n", name))
	sb.WriteString(fmt.Sprintf("Title:  %s\n", title))
	sb.WriteString(fmt.Sprintf("Open:   %t\n", result.Prepared.OpenToWork))
	sb.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(result.Prepared.Skills, ", ")))
	sb.WriteString("\n")

	for _, rename := range result.Normalization.Renamed {
		sb.WriteString(fmt.Sprintf("renamed: %s -> %s\n", rename.From, rename.To))
	}
	for _, dropped := range result.Normalization.Dropped {
		sb.WriteString(fmt.Sprintf("dropped: %s\n", dropped))
	}

	for _, e := range result.Moderation.Errors {
		sb.WriteString(fmt.Sprintf("ERROR:   %s\n", e))
	}
	for _, w := range result.Moderation.Warnings {
		sb.WriteString(fmt.Sprintf("warning: %s\n", w))
	}

	verdict := "publishable"
	if !result.Moderation.Publishable() {
		verdict = "BLOCKED"
	}
	sb.WriteString(fmt.Sprintf("\nVerdict: %s", verdict))

	p.printBox("Intake Result", sb.String())
}

// PrintSearchResults outputs ranked people and projects with their scores.
func (p *Printer) PrintSearchResults(results *search.Results) {
	if results == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("People (%d)\n", len(results.People)))
	for _, person := range results.People {
		sb.WriteString(fmt.Sprintf("  %.3f  %s (%s)\n", person.Score, person.Name, person.Title))
	}
	sb.WriteString(fmt.Sprintf("\nProjects (%d)\n", len(results.Projects)))
	for _, project := range results.Projects {
		sb.WriteString(fmt.Sprintf("  %.3f  %s\n", project.Score, project.Title))
	}

	p.printBox("Search Results", sb.String())
}
