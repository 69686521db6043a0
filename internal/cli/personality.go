package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newQuizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Inspect and answer the personality quiz",
	}

	cmd.AddCommand(newQuizQuestionsCmd())
	cmd.AddCommand(newQuizAnalyzeCmd())

	return cmd
}

func newQuizQuestionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "Show the personality quiz questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			questions, err := apiClient.Personality().Questions(context.Background())
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(questions)
			}

			for _, q := range questions {
				fmt.Printf("%d. %s\n", q.ID, q.Question)
				for _, opt := range q.Options {
					fmt.Printf("   %-18s %s\n", opt.Value, opt.Label)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func newQuizAnalyzeCmd() *cobra.Command {
	var answers []string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze quiz answers into a personality profile",
		Example: `  ecotour quiz analyze -a 1=nature -a 2=very_high -a 4=medium -a 5=moderate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseAnswers(answers)
			if err != nil {
				return err
			}

			profile, err := apiClient.Personality().Analyze(context.Background(), parsed)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(profile)
			}

			fmt.Printf("Profil: %s\n", profile.PersonalityType)
			fmt.Println(strings.Repeat("=", 40))
			fmt.Println(profile.ProfileDescription)
			fmt.Printf("\nScore écologique:  %.0f/100\n", profile.EcoScore)
			fmt.Printf("Budget estimé:     %.0f EUR\n", profile.Preferences.BudgetRange)
			fmt.Printf("Durée conseillée:  %d jours\n", profile.TripDurationDays)
			if len(profile.RecommendedActivities) > 0 {
				fmt.Printf("Activités:         %s\n", strings.Join(profile.RecommendedActivities, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&answers, "answer", "a", nil, "quiz answer as question=value (repeatable)")
	_ = cmd.MarkFlagRequired("answer")

	return cmd
}

func newPackageCmd() *cobra.Command {
	var answers []string

	cmd := &cobra.Command{
		Use:   "package",
		Short: "Generate a full trip package from quiz answers",
		Example: `  ecotour package -a 1=adventure -a 2=very_high -a 4=short -a 5=budget`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseAnswers(answers)
			if err != nil {
				return err
			}

			pkg, err := apiClient.Personality().GeneratePackage(context.Background(), parsed)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(pkg)
			}

			fmt.Printf("%s (%d jours, %.0f EUR)\n", pkg.PackageName, pkg.DurationDays, pkg.TotalBudget)
			fmt.Println(strings.Repeat("=", 40))
			fmt.Println(pkg.Description)

			fmt.Println("\nItinéraire:")
			for _, day := range pkg.Itinerary {
				fmt.Printf("  %s\n", day.Title)
				for _, highlight := range day.EcoHighlights {
					fmt.Printf("    * %s\n", highlight)
				}
			}

			fmt.Println("\nBudget:")
			fmt.Printf("  Hébergement: %.0f EUR\n", pkg.Breakdown.Accommodation)
			fmt.Printf("  Activités:   %.0f EUR\n", pkg.Breakdown.Activities)
			fmt.Printf("  Transport:   %.0f EUR\n", pkg.Breakdown.Transport)
			fmt.Printf("  Repas:       %.0f EUR\n", pkg.Breakdown.Meals)
			fmt.Printf("  Total:       %.0f EUR\n", pkg.Breakdown.Total)

			if len(pkg.SustainabilityHighlights) > 0 {
				fmt.Println("\nDurabilité:")
				for _, h := range pkg.SustainabilityHighlights {
					fmt.Printf("  * %s\n", h)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&answers, "answer", "a", nil, "quiz answer as question=value (repeatable)")
	_ = cmd.MarkFlagRequired("answer")

	return cmd
}

// parseAnswers converts repeated question=value flags into the answers map
func parseAnswers(pairs []string) (map[string]string, error) {
	answers := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" || value == "" {
			return nil, fmt.Errorf("invalid answer %q, expected question=value", pair)
		}
		answers[key] = value
	}
	return answers, nil
}
