package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/adapters/database"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/application/services"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/infrastructure/clients"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/infrastructure/observability"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/pkg/config"
)

type searcher interface {
	Search(ctx context.Context, req services.SearchRequest) (*services.SearchResponse, error)
}

// openSearcherFunc builds a searcher and returns a func releasing what it opened.
type openSearcherFunc func(ctx context.Context) (searcher, func(), error)

// newSearchCmdWith creates the "findadoc search" subcommand backed by open.
func newSearchCmdWith(open openSearcherFunc) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Run a search against the provider store",
		Long:  "Parse the query, filter the provider store and print the response JSON.\nLow-signal queries return a sample of popular specialties instead.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, release, err := open(cmd.Context())
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}
			defer release()

			resp, err := s.Search(cmd.Context(), services.SearchRequest{
				Query: strings.Join(args, " "),
				Limit: limit,
			})
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of results (default 12, at most 100)")
	return cmd
}

// newSearchCmd creates the "findadoc search" subcommand using the configured store.
func newSearchCmd() *cobra.Command {
	return newSearchCmdWith(openConfiguredSearcher)
}

func openConfiguredSearcher(ctx context.Context) (searcher, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	observability.InitLogger("findadoc", cfg.Log.Env, cfg.Log.Level)

	store, err := clients.OpenProviderStore(ctx, &cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	svc := services.NewSearchService(
		services.NewProviderService(database.NewProviderAdapter(store, nil), cfg.Search),
		cfg.Search,
	)
	return svc, func() { _ = store.Close() }, nil
}
