package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/application/services"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/domain/entities"
)

type MockSearchAnalyticsRepository struct {
	mock.Mock
}

func (m *MockSearchAnalyticsRepository) LogEvent(ctx context.Context, event *entities.SearchEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockSearchAnalyticsRepository) GetZeroResultQueries(ctx context.Context, limit int) ([]*entities.SearchEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.SearchEvent), args.Error(1)
}

func TestSearchAnalyticsService_TrackSearch(t *testing.T) {
	t.Run("fills id and timestamp and outlives the request context", func(t *testing.T) {
		repo := new(MockSearchAnalyticsRepository)
		service := services.NewSearchAnalyticsService(repo)

		repo.On("LogEvent", mock.MatchedBy(func(ctx context.Context) bool {
			return ctx.Err() == nil
		}), mock.MatchedBy(func(e *entities.SearchEvent) bool {
			return e.ID != "" && !e.CreatedAt.IsZero() && e.Query == "cardiologist"
		})).Return(nil)

		ctx, cancel := context.WithCancel(context.Background())
		service.TrackSearch(ctx, &entities.SearchEvent{Query: "cardiologist"})
		cancel()
		service.Wait()

		repo.AssertExpectations(t)
	})

	t.Run("keeps caller supplied id", func(t *testing.T) {
		repo := new(MockSearchAnalyticsRepository)
		service := services.NewSearchAnalyticsService(repo)

		repo.On("LogEvent", mock.Anything, mock.MatchedBy(func(e *entities.SearchEvent) bool {
			return e.ID == "evt-1"
		})).Return(nil)

		service.TrackSearch(context.Background(), &entities.SearchEvent{ID: "evt-1"})
		service.Wait()

		repo.AssertExpectations(t)
	})

	t.Run("store failure is swallowed", func(t *testing.T) {
		repo := new(MockSearchAnalyticsRepository)
		service := services.NewSearchAnalyticsService(repo)

		repo.On("LogEvent", mock.Anything, mock.Anything).Return(errors.New("redis down"))

		assert.NotPanics(t, func() {
			service.TrackSearch(context.Background(), &entities.SearchEvent{Query: "x"})
			service.Wait()
		})
		repo.AssertNumberOfCalls(t, "LogEvent", 1)
	})
}

func TestSearchAnalyticsService_GetZeroResultQueries(t *testing.T) {
	repo := new(MockSearchAnalyticsRepository)
	service := services.NewSearchAnalyticsService(repo)

	events := []*entities.SearchEvent{{ID: "1", Query: "dentist in Fargo"}}
	repo.On("GetZeroResultQueries", mock.Anything, 10).Return(events, nil)

	got, err := service.GetZeroResultQueries(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, events, got)
}
