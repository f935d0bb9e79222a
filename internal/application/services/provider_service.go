package services

import (
	"context"
	"strings"

	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/domain/entities"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/domain/repositories"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/pkg/config"
	apperrors "github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/pkg/errors"
)

// ProviderService translates filters into provider store queries
type ProviderService struct {
	repo repositories.ProviderRepository
	cfg  config.SearchConfig
}

// NewProviderService creates a new provider service
func NewProviderService(repo repositories.ProviderRepository, cfg config.SearchConfig) *ProviderService {
	return &ProviderService{
		repo: repo,
		cfg:  cfg,
	}
}

// SearchProviders returns up to OverFetchFactor times the sanitised limit of
// providers matching filters. A zero limit means the default. Callers slice
// the result down to the limit they show.
func (s *ProviderService) SearchProviders(ctx context.Context, filters entities.Filters, limit int) ([]*entities.Provider, error) {
	limit = clampLimit(limit, s.cfg.DefaultLimit, s.cfg.ServiceMaxLimit)

	return s.repo.Search(ctx, repositories.ProviderFilter{
		Specialty: filters.Specialty,
		City:      filters.City,
		State:     filters.State,
		Limit:     min(limit*s.cfg.OverFetchFactor, s.cfg.ServiceMaxLimit),
	})
}

// GetFallbackProviders returns a small sample of providers across specialties.
// Blank entries are dropped; if nothing remains the call is rejected.
func (s *ProviderService) GetFallbackProviders(ctx context.Context, specialties []string) ([]*entities.Provider, error) {
	if len(specialties) == 0 {
		return nil, apperrors.NewValidationError("Specialties must be a non-empty array")
	}

	valid := make([]string, 0, len(specialties))
	for _, sp := range specialties {
		if sp = strings.TrimSpace(sp); sp != "" {
			valid = append(valid, sp)
		}
	}
	if len(valid) == 0 {
		return nil, apperrors.NewValidationError("All specialties must be non-empty strings")
	}

	return s.repo.ListBySpecialties(ctx, valid, s.cfg.FallbackLimit)
}

// clampLimit maps zero to def and then bounds the result to [1, ceiling].
func clampLimit(limit, def, ceiling int) int {
	if limit == 0 {
		limit = def
	}
	return max(1, min(limit, ceiling))
}
