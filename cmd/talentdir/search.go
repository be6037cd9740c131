package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/morgan/talent-directory/internal/db"
	"github.com/morgan/talent-directory/internal/embedding"
	"github.com/morgan/talent-directory/internal/observability"
	"github.com/morgan/talent-directory/internal/search"
)

var (
	searchText    string
	searchType    string
	searchSkills  []string
	searchSectors []string
	searchOpen    bool
	searchLimit   int
	searchVerbose bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the directory for people and projects",
	Long: `Run one hybrid search request against the directory. Semantic ranking is
used when --q is set and GEMINI_API_KEY is configured; otherwise results are
ordered by name/title with zero scores.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchText, "q", "", "Free-text query")
	searchCmd.Flags().StringVar(&searchType, "type", "all", "Entity types: people, projects, or all")
	searchCmd.Flags().StringSliceVar(&searchSkills, "skills", nil, "Required skills (AND semantics)")
	searchCmd.Flags().StringSliceVar(&searchSectors, "sectors", nil, "Required sectors (AND semantics, projects only)")
	searchCmd.Flags().BoolVar(&searchOpen, "open", false, "Only people open to work")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Per-type result limit (1-30)")
	searchCmd.Flags().BoolVarP(&searchVerbose, "verbose", "v", false, "Print a formatted report")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	var gateway embedding.Gateway
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		gemini, err := embedding.NewGemini(ctx, apiKey)
		if err != nil {
			return err
		}
		defer func() { _ = gemini.Close() }()
		gateway = gemini
	}

	query := search.Query{
		Text: searchText,
		Facets: search.Facets{
			Skills:  searchSkills,
			Sectors: searchSectors,
		},
		Limit: searchLimit,
	}
	if cmd.Flags().Changed("open") {
		query.Facets.OpenToWork = &searchOpen
	}
	switch searchType {
	case "people":
		query.Kinds = []search.Kind{search.KindPerson}
	case "projects":
		query.Kinds = []search.Kind{search.KindProject}
	case "all":
		query.Kinds = []search.Kind{search.KindPerson, search.KindProject}
	default:
		return fmt.Errorf("invalid --type %q: must be people, projects, or all", searchType)
	}

	results, err := search.NewEngine(database, gateway).Search(ctx, query)
	if err != nil {
		return err
	}

	if searchVerbose {
		observability.NewPrinter(os.Stdout).PrintSearchResults(&results)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
