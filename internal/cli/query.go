package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/nouraboussaoud/Eco-Tourisme/pkg/client"
	"github.com/spf13/cobra"
)

func newAskCmd() *cobra.Command {
	var showQuery bool

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a question in French about the tourism ontology",
		Example: `  ecotour ask "Quels hébergements écologiques à Tozeur ?"
  ecotour ask "Que faire à Zaghouan ?" --show-query`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")

			result, err := apiClient.Query().Ask(context.Background(), question)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(result)
			}

			if showQuery {
				fmt.Println(result.SparqlQuery)
				fmt.Println(strings.Repeat("-", 40))
			}

			if result.Count == 0 {
				fmt.Println("Aucun résultat.")
				return nil
			}

			// Collect the variable names from the first row for the header
			var headers []string
			for variable := range result.Results[0] {
				headers = append(headers, variable)
			}
			sort.Strings(headers)

			table := NewTable(headers...)
			for _, row := range result.Results {
				cols := make([]string, len(headers))
				for i, h := range headers {
					cols[i] = truncate(row[h], 60)
				}
				table.AddRow(cols...)
			}
			table.Render()

			fmt.Printf("\n%d résultats (%d ms)\n", result.Count, result.ExecutionTimeMs)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showQuery, "show-query", false, "print the generated SPARQL query")
	return cmd
}

func newContributeCmd() *cobra.Command {
	var (
		user        string
		description string
		contribType string
		quantity    float64
		unit        string
	)

	cmd := &cobra.Command{
		Use:   "contribute",
		Short: "Record a community contribution in the ontology",
		Example: `  ecotour contribute --user amine --description "Plantation de 20 arbres" --quantity 20 --unit arbres`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := apiClient.Query().Contribute(context.Background(), client.ContributionRequest{
				Utilisateur: user,
				Description: description,
				Type:        contribType,
				Quantite:    quantity,
				Unite:       unit,
			})
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(map[string]string{"id": id})
			}

			fmt.Printf("Contribution enregistrée: %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "contributor name")
	cmd.Flags().StringVar(&description, "description", "", "contribution description")
	cmd.Flags().StringVar(&contribType, "type", "", "contribution type")
	cmd.Flags().Float64Var(&quantity, "quantity", 0, "contribution quantity")
	cmd.Flags().StringVar(&unit, "unit", "", "quantity unit")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}
