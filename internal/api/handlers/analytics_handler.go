package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/domain/entities"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/infrastructure/observability"
)

const defaultZeroResultLimit = 100

// ZeroResultQuerier lists recent searches that found nothing
type ZeroResultQuerier interface {
	GetZeroResultQueries(ctx context.Context, limit int) ([]*entities.SearchEvent, error)
}

// AnalyticsHandler serves search analytics. A nil querier means analytics is disabled.
type AnalyticsHandler struct {
	querier ZeroResultQuerier
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(querier ZeroResultQuerier) *AnalyticsHandler {
	return &AnalyticsHandler{querier: querier}
}

// GetZeroResultQueries handles GET /api/analytics/zero-result-queries
func (h *AnalyticsHandler) GetZeroResultQueries(w http.ResponseWriter, r *http.Request) {
	if h.querier == nil {
		respondWithError(w, http.StatusServiceUnavailable, "search analytics is disabled")
		return
	}

	limit := defaultZeroResultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	events, err := h.querier.GetZeroResultQueries(r.Context(), limit)
	if err != nil {
		observability.LoggerFromContext(r.Context()).Error().Err(err).Msg("failed to get zero result queries")
		respondWithError(w, http.StatusInternalServerError, "failed to get zero result queries")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"queries": events,
		"count":   len(events),
	})
}
