package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/application/services"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/infrastructure/observability"
	apperrors "github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/pkg/errors"
)

const maxSearchBodyBytes = 1 << 20

// Searcher runs a free-text provider search
type Searcher interface {
	Search(ctx context.Context, req services.SearchRequest) (*services.SearchResponse, error)
}

// SearchHandler handles POST /api/search
type SearchHandler struct {
	searcher Searcher
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searcher Searcher) *SearchHandler {
	return &SearchHandler{searcher: searcher}
}

// searchRequest keeps both fields untyped so that a wrong JSON type is
// treated like a missing value instead of failing the decode.
type searchRequest struct {
	Query any `json:"query"`
	Limit any `json:"limit"`
}

// Search handles POST /api/search
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var body searchRequest
	err := json.NewDecoder(io.LimitReader(r.Body, maxSearchBodyBytes)).Decode(&body)
	if err != nil && !errors.Is(err, io.EOF) {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	query, _ := body.Query.(string)

	resp, err := h.searcher.Search(r.Context(), services.SearchRequest{
		Query: query,
		Limit: parseLimit(body.Limit),
	})
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeValidation) {
			respondWithError(w, http.StatusBadRequest, apperrors.Cause(err))
			return
		}
		observability.LoggerFromContext(r.Context()).Error().Err(err).Msg("search error")
		respondWithError(w, http.StatusInternalServerError, apperrors.Cause(err))
		return
	}

	respondWithJSON(w, http.StatusOK, resp)
}

// parseLimit reads a limit the way a lenient base-10 integer parse would:
// numbers are truncated, strings contribute their leading integer and
// anything unparsable yields 0, which the search service maps to the default.
func parseLimit(v any) int {
	switch l := v.(type) {
	case float64:
		if math.IsNaN(l) {
			return 0
		}
		return int(math.Max(math.MinInt32, math.Min(math.MaxInt32, math.Trunc(l))))
	case string:
		return leadingInt(l)
	default:
		return 0
	}
}

func leadingInt(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	// Out of range input comes back clamped to the int32 bounds.
	n, _ := strconv.ParseInt(s[:end], 10, 32)
	return int(n)
}
