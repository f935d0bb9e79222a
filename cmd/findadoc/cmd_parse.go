package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/application/services"
)

type parseOutput struct {
	Query         string                 `json:"query"`
	Parsed        services.ParsedSummary `json:"parsed"`
	Gibberish     bool                   `json:"gibberish"`
	Meaningful    bool                   `json:"meaningful"`
	NeedsFallback bool                   `json:"needsFallback"`
}

// newParseCmd creates the "findadoc parse" subcommand. It never touches a store.
func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <query...>",
		Short: "Show how a query is understood",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			parsed := services.ParseQuery(query)

			return writeJSON(cmd.OutOrStdout(), parseOutput{
				Query:         query,
				Parsed:        services.SummarizeParsed(parsed),
				Gibberish:     services.IsLikelyGibberish(query),
				Meaningful:    services.HasMeaningfulInfo(parsed),
				NeedsFallback: services.NeedsFallback(query, parsed),
			})
		},
	}
}
