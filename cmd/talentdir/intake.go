package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/morgan/talent-directory/internal/intake"
	"github.com/morgan/talent-directory/internal/observability"
	"github.com/morgan/talent-directory/internal/schemas"
	"github.com/morgan/talent-directory/internal/vocab"
)

var intakeVerbose bool

var intakeCmd = &cobra.Command{
	Use:   "intake <profile.json>",
	Short: "Run the content pipeline over one extracted profile",
	Long: `Read an extracted profile JSON file, canonicalize its skills, moderate the
result, and print the reviewable outcome. With --verbose a formatted report is
printed instead of raw JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runIntake,
}

func init() {
	intakeCmd.Flags().BoolVarP(&intakeVerbose, "verbose", "v", false, "Print a formatted report")
	rootCmd.AddCommand(intakeCmd)
}

func runIntake(_ *cobra.Command, args []string) error {
	payload, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}

	if err := schemas.ValidateExtractedProfile(payload); err != nil {
		return err
	}

	var profile intake.ExtractedProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	result := intake.New(vocab.Default()).Run(profile)

	if intakeVerbose {
		observability.NewPrinter(os.Stdout).PrintIntakeResult(&result)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
