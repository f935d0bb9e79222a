package repositories

import (
	"context"

	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/domain/entities"
)

// ProviderFilter is a fully sanitised provider query.
// Empty fields are not filtered on.
type ProviderFilter struct {
	Specialty string
	City      string // case-insensitive contains match
	State     string
	Limit     int
}

// ProviderRepository defines the read-only queries against the providers table
type ProviderRepository interface {
	// Search returns providers matching every set field of filter, ordered by
	// specialty then city, capped at filter.Limit rows.
	Search(ctx context.Context, filter ProviderFilter) ([]*entities.Provider, error)

	// ListBySpecialties returns distinct providers whose specialty is in
	// specialties, ordered by NPI, capped at limit rows in total.
	ListBySpecialties(ctx context.Context, specialties []string, limit int) ([]*entities.Provider, error)
}
