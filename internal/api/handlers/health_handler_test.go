package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/api/handlers"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/domain/entities"
)

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockZeroResultQuerier struct {
	mock.Mock
}

func (m *MockZeroResultQuerier) GetZeroResultQueries(ctx context.Context, limit int) ([]*entities.SearchEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.SearchEvent), args.Error(1)
}

func TestHealthHandler_Root(t *testing.T) {
	handler := handlers.NewHealthHandler(new(MockPinger))

	rec := httptest.NewRecorder()
	handler.Root(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"status": "Backend is running"}, decode(t, rec))
}

func TestHealthHandler_Health(t *testing.T) {
	t.Run("store reachable", func(t *testing.T) {
		pinger := new(MockPinger)
		pinger.On("Ping", mock.Anything).Return(nil)

		rec := httptest.NewRecorder()
		handlers.NewHealthHandler(pinger).Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]any{"status": "ok"}, decode(t, rec))
	})

	t.Run("store down", func(t *testing.T) {
		pinger := new(MockPinger)
		pinger.On("Ping", mock.Anything).Return(errors.New("connection refused"))

		rec := httptest.NewRecorder()
		handlers.NewHealthHandler(pinger).Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, map[string]any{"status": "unavailable", "error": "connection refused"}, decode(t, rec))
	})
}

func TestAnalyticsHandler_GetZeroResultQueries(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handlers.NewAnalyticsHandler(nil).GetZeroResultQueries(rec,
			httptest.NewRequest(http.MethodGet, "/api/analytics/zero-result-queries", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("default limit", func(t *testing.T) {
		querier := new(MockZeroResultQuerier)
		querier.On("GetZeroResultQueries", mock.Anything, 100).
			Return([]*entities.SearchEvent{{ID: "1", Query: "dentist in Fargo"}}, nil)

		rec := httptest.NewRecorder()
		handlers.NewAnalyticsHandler(querier).GetZeroResultQueries(rec,
			httptest.NewRequest(http.MethodGet, "/api/analytics/zero-result-queries", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, float64(1), body["count"])
		querier.AssertExpectations(t)
	})

	t.Run("explicit limit", func(t *testing.T) {
		querier := new(MockZeroResultQuerier)
		querier.On("GetZeroResultQueries", mock.Anything, 5).Return([]*entities.SearchEvent{}, nil)

		rec := httptest.NewRecorder()
		handlers.NewAnalyticsHandler(querier).GetZeroResultQueries(rec,
			httptest.NewRequest(http.MethodGet, "/api/analytics/zero-result-queries?limit=5", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		querier.AssertExpectations(t)
	})

	t.Run("bad limit", func(t *testing.T) {
		for _, raw := range []string{"abc", "0", "-3"} {
			querier := new(MockZeroResultQuerier)
			rec := httptest.NewRecorder()
			handlers.NewAnalyticsHandler(querier).GetZeroResultQueries(rec,
				httptest.NewRequest(http.MethodGet, "/api/analytics/zero-result-queries?limit="+raw, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code, raw)
			querier.AssertNotCalled(t, "GetZeroResultQueries", mock.Anything, mock.Anything)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		querier := new(MockZeroResultQuerier)
		querier.On("GetZeroResultQueries", mock.Anything, 100).Return(nil, errors.New("redis down"))

		rec := httptest.NewRecorder()
		handlers.NewAnalyticsHandler(querier).GetZeroResultQueries(rec,
			httptest.NewRequest(http.MethodGet, "/api/analytics/zero-result-queries", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
