package client_test

import (
	"context"
	"fmt"
	"log"

	"github.com/nouraboussaoud/Eco-Tourisme/pkg/client"
)

// Example demonstrates basic usage of the Eco-Tourisme client
func Example() {
	// Create a new client
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8000",
	})

	ctx := context.Background()

	// List traveler profiles
	profiles, err := c.Recommendations().Profiles(ctx)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found %d traveler profiles\n", len(profiles))

	// Generate a recommendation
	rec, err := c.Recommendations().Generate(ctx, client.GenerateRequest{
		Profile:      "Adventure",
		Destination:  "Zaghouan",
		Budget:       1200,
		DurationDays: 4,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Recommendation score: %.1f\n", rec.RecommendationScore)
}

// ExamplePersonalityService_GeneratePackage demonstrates the quiz-driven mode
func ExamplePersonalityService_GeneratePackage() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8000",
	})

	pkg, err := c.Personality().GeneratePackage(context.Background(), map[string]string{
		"1": "nature",
		"2": "very_high",
		"4": "medium",
		"5": "moderate",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s: %d jours, %.0f EUR\n", pkg.PackageName, pkg.DurationDays, pkg.TotalBudget)
}

// ExampleQueryService_Ask demonstrates the natural-language query endpoint
func ExampleQueryService_Ask() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8000",
	})

	result, err := c.Query().Ask(context.Background(), "Quels hébergements écologiques à Tozeur ?")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d résultats via: %s\n", result.Count, result.SparqlQuery)
}
