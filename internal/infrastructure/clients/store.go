// Package clients opens the provider store for the configured driver.
package clients

import (
	"context"
	"database/sql"

	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/infrastructure/clients/postgres"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/infrastructure/clients/sqlite"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/pkg/config"
)

// ProviderStore is an open provider database
type ProviderStore interface {
	DB() *sql.DB
	Dialect() string
	Ping(ctx context.Context) error
	Close() error
}

// OpenProviderStore connects to PostgreSQL, or opens the SQLite file and
// creates its schema when Driver is sqlite.
func OpenProviderStore(ctx context.Context, cfg *config.DatabaseConfig) (ProviderStore, error) {
	if cfg.Driver == config.DriverSQLite {
		client, err := sqlite.NewClient(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		if err := client.EnsureSchema(ctx); err != nil {
			_ = client.Close()
			return nil, err
		}
		return client, nil
	}
	return postgres.NewClient(ctx, cfg)
}
