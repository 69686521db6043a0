package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/nouraboussaoud/Eco-Tourisme/pkg/client"
	"github.com/spf13/cobra"
)

func newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the traveler profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := apiClient.Recommendations().Profiles(context.Background())
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(profiles)
			}

			table := NewTable("ID", "NAME", "DESCRIPTION", "PREFERENCES")
			for _, p := range profiles {
				table.AddRow(p.ID, p.Name, truncate(p.Description, 45), truncate(strings.Join(p.Preferences, ", "), 50))
			}
			table.Render()
			return nil
		},
	}
}

func newRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Generate and inspect travel recommendations",
	}

	cmd.AddCommand(newRecommendGenerateCmd())
	cmd.AddCommand(newRecommendActivitiesCmd())
	cmd.AddCommand(newRecommendAccommodationsCmd())
	cmd.AddCommand(newRecommendTransportsCmd())
	cmd.AddCommand(newRecommendCompareCmd())

	return cmd
}

func newRecommendGenerateCmd() *cobra.Command {
	var (
		profile        string
		destination    string
		budget         float64
		days           int
		carbonPriority bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a recommendation for a traveler profile",
		Example: `  ecotour recommend generate --profile Adventure --destination Zaghouan --budget 1200 --days 4
  ecotour recommend generate --profile Famille --carbon-priority`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := apiClient.Recommendations().Generate(context.Background(), client.GenerateRequest{
				Profile:        profile,
				Destination:    destination,
				Budget:         budget,
				DurationDays:   days,
				CarbonPriority: carbonPriority,
			})
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(rec)
			}

			fmt.Printf("Recommandation %s", rec.Profile)
			if rec.Destination != "" {
				fmt.Printf(" pour %s", rec.Destination)
			}
			fmt.Printf(" (score %.1f/100)\n", rec.RecommendationScore)
			fmt.Println(strings.Repeat("=", 40))

			if len(rec.Activities) > 0 {
				fmt.Println("Activités:")
				for _, a := range rec.Activities {
					fmt.Printf("  - %s (compatibilité %.0f)\n", a.Name, a.MatchScore)
				}
			}
			if rec.Accommodation != nil {
				fmt.Printf("Hébergement:   %s (durabilité %.0f, %.0f EUR/nuit)\n",
					rec.Accommodation.Name, rec.Accommodation.SustainabilityScore, rec.Accommodation.Price)
			}
			if rec.Transport != nil {
				fmt.Printf("Transport:     %s (%s, %.1f kg CO2)\n",
					rec.Transport.Name, formatCarbonLevel(rec.Transport.Carbon.Level), rec.Transport.CO2Kg)
			}
			for _, reason := range rec.Reasons {
				fmt.Printf("  * %s\n", reason)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "traveler profile (Adventure, Culture, BienEtre, Famille)")
	cmd.Flags().StringVar(&destination, "destination", "", "destination name")
	cmd.Flags().Float64Var(&budget, "budget", 0, "trip budget in EUR")
	cmd.Flags().IntVar(&days, "days", 0, "trip duration in days")
	cmd.Flags().BoolVar(&carbonPriority, "carbon-priority", false, "prefer the lowest-carbon transport")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func newRecommendActivitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activities <profile>",
		Short: "List activities ranked for a traveler profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := apiClient.Recommendations().Activities(context.Background(), args[0])
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(activities)
			}

			table := NewTable("NAME", "CATEGORY", "COMPATIBILITY", "SUSTAINABILITY")
			for _, a := range activities {
				table.AddRow(truncate(a.Name, 40), a.Category,
					fmt.Sprintf("%.0f", a.MatchScore), fmt.Sprintf("%.0f", a.SustainabilityScore))
			}
			table.Render()
			return nil
		},
	}
}

func newRecommendAccommodationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accommodations <profile>",
		Short: "List eco-friendly accommodations for a traveler profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accommodations, err := apiClient.Recommendations().Accommodations(context.Background(), args[0])
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(accommodations)
			}

			table := NewTable("NAME", "SUSTAINABILITY", "PRICE/NIGHT", "CERTIFICATIONS")
			for _, a := range accommodations {
				table.AddRow(truncate(a.Name, 40), fmt.Sprintf("%.0f", a.SustainabilityScore),
					fmt.Sprintf("%.0f EUR", a.Price), a.Certifications)
			}
			table.Render()
			return nil
		},
	}
}

func newRecommendTransportsCmd() *cobra.Command {
	var carbonSensitive bool

	cmd := &cobra.Command{
		Use:   "transports",
		Short: "List transport options with their carbon rating",
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := apiClient.Recommendations().Transports(context.Background(), carbonSensitive)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(options)
			}

			table := NewTable("NAME", "CO2 (KG)", "LEVEL", "SCORE")
			for _, o := range options {
				table.AddRow(truncate(o.Name, 40), fmt.Sprintf("%.1f", o.CO2Kg),
					formatCarbonLevel(o.Carbon.Level), fmt.Sprintf("%.0f", o.Carbon.Score))
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&carbonSensitive, "carbon-sensitive", false, "sort cleanest first")
	return cmd
}

func newRecommendCompareCmd() *cobra.Command {
	var (
		destination string
		budget      float64
		days        int
	)

	cmd := &cobra.Command{
		Use:   "compare <profile> <profile> [profile...]",
		Short: "Compare recommendations across traveler profiles",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			comparison, err := apiClient.Recommendations().Compare(context.Background(), client.CompareRequest{
				Profiles:     args,
				Destination:  destination,
				Budget:       budget,
				DurationDays: days,
			})
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(comparison)
			}

			table := NewTable("PROFILE", "ECO", "VALUE", "EXPERIENCE", "TOTAL")
			for _, p := range comparison.Packages {
				table.AddRow(p.Profile, fmt.Sprintf("%.1f", p.EcoScore), fmt.Sprintf("%.1f", p.ValueScore),
					fmt.Sprintf("%.1f", p.ExperienceScore), fmt.Sprintf("%.1f", p.TotalScore))
			}
			table.Render()

			if comparison.BestEco != nil {
				fmt.Printf("\nMeilleur choix écologique: %s\n", comparison.BestEco.Profile)
			}
			if comparison.BestValue != nil {
				fmt.Printf("Meilleur rapport qualité-prix: %s\n", comparison.BestValue.Profile)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&destination, "destination", "", "destination name")
	cmd.Flags().Float64Var(&budget, "budget", 0, "trip budget in EUR")
	cmd.Flags().IntVar(&days, "days", 0, "trip duration in days")

	return cmd
}

func newCarbonCmd() *cobra.Command {
	var distance float64

	cmd := &cobra.Command{
		Use:   "carbon <transport>",
		Short: "Compute the carbon footprint of a transport choice",
		Example: `  ecotour carbon Avion --distance 1000
  ecotour carbon Train --distance 250`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			carbon, err := apiClient.Recommendations().CarbonCalculator(context.Background(), client.CarbonRequest{
				Transport:  args[0],
				DistanceKm: distance,
			})
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(carbon)
			}

			fmt.Printf("%s sur %.0f km: %.1f kg CO2 (%s, score %.0f/100)\n",
				carbon.Transport, carbon.DistanceKm, carbon.TotalCO2Kg,
				formatCarbonLevel(carbon.CarbonLevel), carbon.CarbonScore)

			for _, alt := range carbon.Alternatives {
				fmt.Printf("  Alternative %s: %.1f kg CO2 (économie %.1f kg)\n", alt.Transport, alt.CO2Kg, alt.Savings)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&distance, "distance", 0, "distance in kilometers")
	_ = cmd.MarkFlagRequired("distance")

	return cmd
}
