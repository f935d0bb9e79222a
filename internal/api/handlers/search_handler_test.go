package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/api/handlers"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/application/services"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/domain/entities"
	apperrors "github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/pkg/errors"
)

type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, req services.SearchRequest) (*services.SearchResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.SearchResponse), args.Error(1)
}

func postSearch(t *testing.T, h *handlers.SearchHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Search(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestSearchHandler_Success(t *testing.T) {
	searcher := new(MockSearcher)
	handler := handlers.NewSearchHandler(searcher)

	specialty := "Cardiology"
	searcher.On("Search", mock.Anything, services.SearchRequest{Query: "cardiologist", Limit: 5}).
		Return(&services.SearchResponse{
			Results: []*entities.Provider{{NPI: "1", Specialty: "Cardiology"}},
			Parsed: services.ParsedSummary{
				Specialty:  &specialty,
				Procedures: []string{},
			},
		}, nil)

	rec := postSearch(t, handler, `{"query":"cardiologist","limit":5}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Len(t, body["results"], 1)
	assert.NotContains(t, body, "message")
	assert.NotContains(t, body, "isFallback")

	parsed := body["parsed"].(map[string]any)
	assert.Equal(t, "Cardiology", parsed["specialty"])
	location := parsed["location"].(map[string]any)
	assert.Contains(t, location, "city")
	assert.Nil(t, location["city"])
	searcher.AssertExpectations(t)
}

func TestSearchHandler_LimitParsing(t *testing.T) {
	tests := []struct {
		body  string
		limit int
	}{
		{`{"query":"q"}`, 0},
		{`{"query":"q","limit":null}`, 0},
		{`{"query":"q","limit":150}`, 150},
		{`{"query":"q","limit":7.9}`, 7},
		{`{"query":"q","limit":-5}`, -5},
		{`{"query":"q","limit":"25"}`, 25},
		{`{"query":"q","limit":" 30abc"}`, 30},
		{`{"query":"q","limit":"abc"}`, 0},
		{`{"query":"q","limit":true}`, 0},
		{`{"query":"q","limit":1e12}`, 2147483647},
		{`{"query":"q","limit":1e21}`, 2147483647},
		{`{"query":"q","limit":-1e21}`, -2147483648},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			searcher := new(MockSearcher)
			handler := handlers.NewSearchHandler(searcher)
			searcher.On("Search", mock.Anything, services.SearchRequest{Query: "q", Limit: tt.limit}).
				Return(&services.SearchResponse{Results: []*entities.Provider{}}, nil)

			rec := postSearch(t, handler, tt.body)

			assert.Equal(t, http.StatusOK, rec.Code)
			searcher.AssertExpectations(t)
		})
	}
}

func TestSearchHandler_ValidationError(t *testing.T) {
	for _, body := range []string{``, `{}`, `{"query":"   "}`, `{"query":42}`} {
		t.Run(body, func(t *testing.T) {
			searcher := new(MockSearcher)
			handler := handlers.NewSearchHandler(searcher)
			searcher.On("Search", mock.Anything, mock.MatchedBy(func(req services.SearchRequest) bool {
				return strings.TrimSpace(req.Query) == ""
			})).Return(nil, apperrors.NewValidationError("Query is required"))

			rec := postSearch(t, handler, body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, map[string]any{"error": "Query is required"}, decode(t, rec))
		})
	}
}

func TestSearchHandler_InvalidJSON(t *testing.T) {
	searcher := new(MockSearcher)
	handler := handlers.NewSearchHandler(searcher)

	rec := postSearch(t, handler, `{"query":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request payload", decode(t, rec)["error"])
	searcher.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestSearchHandler_StoreFailure(t *testing.T) {
	searcher := new(MockSearcher)
	handler := handlers.NewSearchHandler(searcher)

	searcher.On("Search", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewExternalError("failed to search providers", errors.New("Database connection failed")))

	rec := postSearch(t, handler, `{"query":"cardiologist"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]any{"error": "Database connection failed"}, decode(t, rec))
}
