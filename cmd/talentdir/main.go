// Package main provides the entry point for the talent directory service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talentdir",
	Short: "Talent directory content pipeline and search",
	Long:  "talentdir canonicalizes extracted profile material, checks it against content policy, and serves faceted hybrid search over people and projects.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
