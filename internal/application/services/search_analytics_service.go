package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/domain/entities"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/domain/repositories"
)

const trackTimeout = 5 * time.Second

// SearchAnalyticsService records search outcomes off the request path
type SearchAnalyticsService struct {
	repo repositories.SearchAnalyticsRepository
	wg   sync.WaitGroup
}

func NewSearchAnalyticsService(repo repositories.SearchAnalyticsRepository) *SearchAnalyticsService {
	return &SearchAnalyticsService{repo: repo}
}

// TrackSearch stores event in the background. Failures are logged and dropped.
func (s *SearchAnalyticsService) TrackSearch(ctx context.Context, event *entities.SearchEvent) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		// The request context is cancelled once the response is written.
		bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), trackTimeout)
		defer cancel()

		if err := s.repo.LogEvent(bgCtx, event); err != nil {
			log.Warn().Err(err).Str("event_id", event.ID).Msg("failed to log search event")
		}
	}()
}

// Wait blocks until every pending TrackSearch write has finished
func (s *SearchAnalyticsService) Wait() {
	s.wg.Wait()
}

func (s *SearchAnalyticsService) GetZeroResultQueries(ctx context.Context, limit int) ([]*entities.SearchEvent, error) {
	return s.repo.GetZeroResultQueries(ctx, limit)
}
