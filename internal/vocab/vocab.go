// Package vocab provides the canonical skill vocabulary and synonym table.
// The vocabulary is immutable after construction and safe for concurrent use.
package vocab

import "strings"

// Vocabulary is a read-only lookup structure over canonical skill spellings
// and their known synonyms. Lookups are case-insensitive; display forms are
// case-preserving.
type Vocabulary struct {
	display  map[string]string // lowercased canonical -> display spelling
	synonyms map[string]string // lowercased variant -> display spelling
	casing   map[string]string // lowercased well-known name -> display spelling
}

// New builds a Vocabulary from a list of canonical display spellings, a
// synonym table (variant -> canonical display form), and casing rules for
// well-known technology names. All keys are matched case-insensitively.
func New(canonical []string, synonyms map[string]string, casing map[string]string) *Vocabulary {
	v := &Vocabulary{
		display:  make(map[string]string, len(canonical)),
		synonyms: make(map[string]string, len(synonyms)),
		casing:   make(map[string]string, len(casing)),
	}
	for _, name := range canonical {
		v.display[strings.ToLower(name)] = name
	}
	for variant, name := range synonyms {
		v.synonyms[strings.ToLower(variant)] = name
	}
	for variant, name := range casing {
		v.casing[strings.ToLower(variant)] = name
	}
	return v
}

// Synonym returns the canonical display spelling for a known variant.
func (v *Vocabulary) Synonym(s string) (string, bool) {
	name, ok := v.synonyms[strings.ToLower(s)]
	return name, ok
}

// Casing returns the preferred casing for a well-known technology name.
func (v *Vocabulary) Casing(s string) (string, bool) {
	name, ok := v.casing[strings.ToLower(s)]
	return name, ok
}

// Display returns the vocabulary's exact display spelling for a skill, if the
// skill is part of the canonical vocabulary.
func (v *Vocabulary) Display(s string) (string, bool) {
	name, ok := v.display[strings.ToLower(s)]
	return name, ok
}

// Default returns the process-wide seed vocabulary. It is built once per call;
// callers hold onto one instance and inject it where needed.
func Default() *Vocabulary {
	return New(defaultCanonical, defaultSynonyms, defaultCasing)
}

var defaultCanonical = []string{
	"Go",
	"JavaScript",
	"TypeScript",
	"React",
	"Next.js",
	"Vue",
	"Node.js",
	"Python",
	"Ruby",
	"Rust",
	"Java",
	"Kotlin",
	"Swift",
	"PHP",
	"C++",
	"C#",
	"Postgres",
	"MySQL",
	"SQLite",
	"MongoDB",
	"Redis",
	"GraphQL",
	"Docker",
	"Kubernetes",
	"Terraform",
	"AWS",
	"GCP",
	"Azure",
	"Figma",
	"Tailwind",
	"Svelte",
	"Django",
	"Rails",
	"Flutter",
	"Unity",
}

var defaultSynonyms = map[string]string{
	"js":            "JavaScript",
	"javascript":    "JavaScript",
	"ts":            "TypeScript",
	"react.js":      "React",
	"reactjs":       "React",
	"vue.js":        "Vue",
	"vuejs":         "Vue",
	"node":          "Node.js",
	"nodejs":        "Node.js",
	"node.js":       "Node.js",
	"nextjs":        "Next.js",
	"golang":        "Go",
	"go lang":       "Go",
	"k8s":           "Kubernetes",
	"postgresql":    "Postgres",
	"psql":          "Postgres",
	"mongo":         "MongoDB",
	"tailwindcss":   "Tailwind",
	"ror":           "Rails",
	"ruby on rails": "Rails",
}

var defaultCasing = map[string]string{
	"typescript": "TypeScript",
	"next.js":    "Next.js",
	"graphql":    "GraphQL",
	"mysql":      "MySQL",
	"sqlite":     "SQLite",
	"mongodb":    "MongoDB",
	"php":        "PHP",
	"aws":        "AWS",
	"gcp":        "GCP",
	"ios":        "iOS",
	"devops":     "DevOps",
	"ci/cd":      "CI/CD",
}
