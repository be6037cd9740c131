// Package canonical maps raw extracted skill strings onto the canonical
// vocabulary, producing a normalization report for human review.
package canonical

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/morgan/talent-directory/internal/vocab"
)

const (
	// MaxSkillLength is the longest accepted canonical skill string.
	MaxSkillLength = 30
	// DefaultMaxSkills caps the prepared skill list.
	DefaultMaxSkills = 12
)

// Rename records one raw skill whose spelling changed during canonicalization.
type Rename struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Result is the outcome of canonicalizing one raw skill list.
type Result struct {
	Normalized []string `json:"normalized"`
	Renamed    []Rename `json:"renamed"`
	Dropped    []string `json:"dropped"`
}

var spaceRun = regexp.MustCompile(`\s+`)

// Canonicalize normalizes a raw skill list against the vocabulary: trims and
// collapses whitespace, substitutes known synonyms, applies casing rules,
// drops over-length entries, deduplicates case-insensitively (preferring the
// vocabulary's display spelling), sorts, and truncates to max. Non-string
// entries are silently skipped; the function has no failure mode.
func Canonicalize(v *vocab.Vocabulary, raw []any, max int) Result {
	if max < 0 {
		max = 0
	}
	res := Result{
		Normalized: []string{},
		Renamed:    []Rename{},
		Dropped:    []string{},
	}

	candidates := make([]string, 0, len(raw))

	for _, entry := range raw {
		s, ok := entry.(string)
		if !ok {
			continue
		}
		trimmed := spaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
		if trimmed == "" {
			continue
		}

		canon, found := v.Synonym(trimmed)
		if !found {
			if cased, ok := v.Casing(trimmed); ok {
				canon = cased
			} else {
				canon = titleFirst(trimmed)
			}
		}

		if utf8.RuneCountInString(canon) > MaxSkillLength {
			res.Dropped = append(res.Dropped, canon)
			continue
		}
		if canon != s {
			res.Renamed = append(res.Renamed, Rename{From: s, To: canon})
		}
		candidates = append(candidates, canon)
	}

	// Case-insensitive dedup; the vocabulary's exact spelling wins when the
	// value matches a vocabulary entry.
	seen := make(map[string]struct{}, len(candidates))
	kept := make([]string, 0, len(candidates))
	for _, value := range candidates {
		key := strings.ToLower(value)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if display, ok := v.Display(value); ok {
			value = display
		}
		kept = append(kept, value)
	}

	collate.New(language.English).SortStrings(kept)

	if len(kept) > max {
		res.Dropped = append(res.Dropped, kept[max:]...)
		kept = kept[:max]
	}
	res.Normalized = kept
	return res
}

// CanonicalizeStrings is Canonicalize over a well-typed skill list.
func CanonicalizeStrings(v *vocab.Vocabulary, raw []string, max int) Result {
	loose := make([]any, len(raw))
	for i, s := range raw {
		loose[i] = s
	}
	return Canonicalize(v, loose, max)
}

// titleFirst upper-cases the first rune only, preserving the rest verbatim.
func titleFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
