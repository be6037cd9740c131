// Package moderation scans candidate records for policy violations, PII
// exposure, and shape problems before they reach the review queue.
//
// Findings are data, never Go errors: blocking problems land in
// Report.Errors, advisory ones in Report.Warnings. A record is publishable
// exactly when Errors is empty.
package moderation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLength  = 80
	maxTitleLength = 80
	maxSkillCount  = 12
	maxSkillLength = 30
	maxPhoneHits   = 5
)

// Candidate is the record under moderation. It may be un-normalized; the
// moderator makes no assumptions about upstream processing.
type Candidate struct {
	Name   string
	Title  string
	Skills []string
}

// PII holds contact details found in the raw source text.
type PII struct {
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
	URLs   []string `json:"urls"`
}

// Report is the full moderation outcome for one candidate.
type Report struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	PII      PII      `json:"pii"`
}

// Publishable reports whether the record may be published. Warnings never
// block.
func (r Report) Publishable() bool {
	return len(r.Errors) == 0
}

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s().\-]*\d`)
	urlPattern   = regexp.MustCompile(`https?://[^\s]+`)
	namePattern  = regexp.MustCompile(`^[\p{L}\p{N} .'\-]+$`)
)

// Deliberately small; the point is blocking obvious abuse, not a full
// profanity classifier.
var denylist = []string{
	"fuck",
	"shit",
	"bitch",
	"asshole",
	"bastard",
	"wanker",
}

// Moderate evaluates every rule against the candidate and, when non-empty,
// the raw source text. Rules are independent and never short-circuit, so one
// call surfaces every issue at once. Moderate never fails.
func Moderate(c Candidate, sourceText string) Report {
	report := Report{
		Errors:   []string{},
		Warnings: []string{},
		PII:      PII{Emails: []string{}, Phones: []string{}, URLs: []string{}},
	}

	if sourceText != "" {
		report.PII = extractPII(sourceText)
		if len(report.PII.Emails) > 0 || len(report.PII.Phones) > 0 {
			report.Warnings = append(report.Warnings,
				"Source text contains contact details (emails or phone numbers); remove them before publishing.")
		}
	}

	name := strings.TrimSpace(c.Name)
	switch {
	case name == "":
		report.Errors = append(report.Errors, "Name is required.")
	case utf8.RuneCountInString(name) > maxNameLength:
		report.Errors = append(report.Errors,
			fmt.Sprintf("Name must be %d characters or fewer.", maxNameLength))
	}
	if name != "" && !namePattern.MatchString(name) {
		report.Warnings = append(report.Warnings, "Name contains unusual characters.")
	}

	if utf8.RuneCountInString(c.Title) > maxTitleLength {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("Title is longer than %d characters.", maxTitleLength))
	}

	for _, field := range []struct{ label, value string }{
		{"Name", c.Name},
		{"Title", c.Title},
	} {
		if hit := scanDenylist(field.value); hit != "" {
			report.Errors = append(report.Errors,
				fmt.Sprintf("%s contains disallowed language.", field.label))
		}
	}

	if len(c.Skills) > maxSkillCount {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("More than %d skills listed; extra entries will be trimmed.", maxSkillCount))
	}
	for _, skill := range c.Skills {
		if utf8.RuneCountInString(skill) > maxSkillLength {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("Skill %q exceeds %d characters.", skill, maxSkillLength))
		}
	}

	return report
}

// scanDenylist returns the first denylist entry found in the text, matched
// as a case-insensitive substring.
func scanDenylist(text string) string {
	lower := strings.ToLower(text)
	for _, word := range denylist {
		if strings.Contains(lower, word) {
			return word
		}
	}
	return ""
}

// extractPII pulls email addresses, phone-like digit runs, and URLs out of
// free text, each deduplicated in order of first appearance.
func extractPII(text string) PII {
	pii := PII{
		Emails: dedupe(emailPattern.FindAllString(text, -1)),
		Phones: []string{},
		URLs:   dedupe(urlPattern.FindAllString(text, -1)),
	}

	// Phone matching is deliberately permissive: any separator-joined digit
	// run with at least 8 significant digits counts, capped to the first 5.
	for _, match := range phonePattern.FindAllString(text, -1) {
		if significantDigits(match) < 8 {
			continue
		}
		pii.Phones = append(pii.Phones, strings.TrimSpace(match))
		if len(pii.Phones) >= maxPhoneHits {
			break
		}
	}
	pii.Phones = dedupe(pii.Phones)

	return pii
}

func significantDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
