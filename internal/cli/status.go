package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show platform status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			format := getOutputFormat()
			if format != "table" {
				summary := map[string]interface{}{}

				if health, err := apiClient.Health(ctx); err == nil {
					summary["api"] = health.Status
				} else {
					summary["api"] = "unreachable"
				}
				if ready, err := apiClient.Ready(ctx); err == nil {
					summary["store"] = ready.Store
				} else {
					summary["store"] = "unreachable"
				}
				if profiles, err := apiClient.Recommendations().Profiles(ctx); err == nil {
					summary["profiles"] = len(profiles)
				}
				return printOutput(summary)
			}

			fmt.Println("Eco-Tourisme Platform")
			fmt.Println(strings.Repeat("=", 40))

			// API
			if _, err := apiClient.Health(ctx); err != nil {
				fmt.Printf("  API:           (error: %v)\n", err)
				return nil
			}
			fmt.Println("  API:           up")

			// Knowledge store
			if ready, err := apiClient.Ready(ctx); err != nil {
				fmt.Printf("  Store:         (error: %v)\n", err)
			} else {
				fmt.Printf("  Store:         %s\n", ready.Store)
			}

			// Profiles
			if profiles, err := apiClient.Recommendations().Profiles(ctx); err == nil {
				fmt.Printf("  Profiles:      %d available\n", len(profiles))
			}

			return nil
		},
	}
}
