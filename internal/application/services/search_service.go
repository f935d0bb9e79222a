package services

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/domain/entities"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/domain/lexicon"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/pkg/config"
	apperrors "github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/pkg/errors"
)

const (
	FallbackMessage   = "We couldn't find any doctors matching your input. Try a specialty (like cardiology) or city."
	NoResultsMessage  = "No doctors found matching your criteria. Try adjusting your search - maybe try a different city or a broader specialty."
	queryRequiredText = "Query is required"

	outcomeResults  = "results"
	outcomeEmpty    = "empty"
	outcomeFallback = "fallback"
)

const instrumentationName = "github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/search"

var (
	searchCounterOnce sync.Once
	searchCounter     metric.Int64Counter
)

// SearchRequest is one free-text search. Limit 0 means the default.
type SearchRequest struct {
	Query string
	Limit int
}

// LocationSummary is the location part of ParsedSummary; unmatched fields are null.
type LocationSummary struct {
	City    *string `json:"city"`
	State   *string `json:"state"`
	Keyword *string `json:"keyword"`
}

// ParsedSummary echoes what was understood from the query.
type ParsedSummary struct {
	Specialty  *string         `json:"specialty"`
	Location   LocationSummary `json:"location"`
	Procedures []string        `json:"procedures"`
}

// SearchResponse is the result of a search. IsFallback is only set on the
// fallback and empty-result paths.
type SearchResponse struct {
	Results    []*entities.Provider `json:"results"`
	Message    string               `json:"message,omitempty"`
	IsFallback *bool                `json:"isFallback,omitempty"`
	Parsed     ParsedSummary        `json:"parsed"`
}

// SearchTracker receives a record of every completed search
type SearchTracker interface {
	TrackSearch(ctx context.Context, event *entities.SearchEvent)
}

// ShuffleFunc reorders n elements in place through swap, like rand.Shuffle.
type ShuffleFunc func(n int, swap func(i, j int))

// SearchOption configures optional SearchService collaborators
type SearchOption func(*SearchService)

// WithShuffle replaces the randomness used to reorder fallback results
func WithShuffle(shuffle ShuffleFunc) SearchOption {
	return func(s *SearchService) { s.shuffle = shuffle }
}

// WithTracker records every successful search with tracker
func WithTracker(tracker SearchTracker) SearchOption {
	return func(s *SearchService) { s.tracker = tracker }
}

// SearchService turns a free-text query into a provider result set, routing
// low-signal queries to a shuffled sample of popular specialties.
type SearchService struct {
	providers *ProviderService
	cfg       config.SearchConfig
	shuffle   ShuffleFunc
	tracker   SearchTracker
}

// NewSearchService creates a new search service
func NewSearchService(providers *ProviderService, cfg config.SearchConfig, opts ...SearchOption) *SearchService {
	s := &SearchService{
		providers: providers,
		cfg:       cfg,
		shuffle:   rand.Shuffle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search runs one query. Only a blank query or a failing primary store
// query returns an error; fallback failures degrade to an empty result set.
func (s *SearchService) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "SearchService.Search")
	defer span.End()

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, apperrors.NewValidationError(queryRequiredText)
	}

	start := time.Now()
	limit := clampLimit(req.Limit, s.cfg.DefaultLimit, s.cfg.PublicMaxLimit)

	parsed := ParseQuery(query)
	log.Debug().
		Str("query", query).
		Str("specialty", parsed.Specialty).
		Str("city", parsed.Location.City).
		Str("state", parsed.Location.State).
		Strs("procedures", parsed.Procedures).
		Msg("parsed query")

	span.SetAttributes(
		attribute.String("search.specialty", parsed.Specialty),
		attribute.String("search.city", parsed.Location.City),
		attribute.String("search.state", parsed.Location.State),
		attribute.Int("search.limit", limit),
	)

	if NeedsFallback(query, parsed) {
		resp := s.fallback(ctx, parsed)
		s.finish(ctx, outcomeFallback, parsed, resp, start)
		return resp, nil
	}

	rows, err := s.providers.SearchProviders(ctx, parsed.Filters(), limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider search failed")
		log.Error().Err(err).Str("query", query).Msg("provider search failed")
		return nil, err
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}

	resp := &SearchResponse{
		Results: withSearchURLs(rows),
		Parsed:  SummarizeParsed(parsed),
	}
	outcome := outcomeResults
	if len(rows) == 0 {
		resp.Message = NoResultsMessage
		resp.IsFallback = boolPtr(false)
		outcome = outcomeEmpty
	}

	s.finish(ctx, outcome, parsed, resp, start)
	return resp, nil
}

func (s *SearchService) fallback(ctx context.Context, parsed entities.ParsedQuery) *SearchResponse {
	rows, err := s.providers.GetFallbackProviders(ctx, lexicon.PopularSpecialties())
	if err != nil {
		log.Error().Err(err).Msg("error fetching fallback results")
		rows = nil
	}
	s.shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })

	return &SearchResponse{
		Results:    withSearchURLs(rows),
		Message:    FallbackMessage,
		IsFallback: boolPtr(true),
		Parsed:     SummarizeParsed(parsed),
	}
}

func (s *SearchService) finish(ctx context.Context, outcome string, parsed entities.ParsedQuery, resp *SearchResponse, start time.Time) {
	searchCounterOnce.Do(initSearchCounter)
	if searchCounter != nil {
		searchCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("search.outcome", outcome)))
	}

	if s.tracker == nil {
		return
	}
	s.tracker.TrackSearch(ctx, &entities.SearchEvent{
		Query:       parsed.OriginalQuery,
		Specialty:   parsed.Specialty,
		City:        parsed.Location.City,
		State:       parsed.Location.State,
		Procedures:  parsed.Procedures,
		ResultCount: len(resp.Results),
		IsFallback:  outcome == outcomeFallback,
		LatencyMs:   time.Since(start).Milliseconds(),
	})
}

func initSearchCounter() {
	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"search.request.count",
		metric.WithDescription("Number of searches by outcome"),
	)
	if err == nil {
		searchCounter = counter
	}
}

func withSearchURLs(rows []*entities.Provider) []*entities.Provider {
	if rows == nil {
		return []*entities.Provider{}
	}
	for _, p := range rows {
		p.SearchURL = p.BuildSearchURL()
	}
	return rows
}

// SummarizeParsed renders parsed in its response shape
func SummarizeParsed(parsed entities.ParsedQuery) ParsedSummary {
	procedures := parsed.Procedures
	if procedures == nil {
		procedures = []string{}
	}
	return ParsedSummary{
		Specialty: nullable(parsed.Specialty),
		Location: LocationSummary{
			City:    nullable(parsed.Location.City),
			State:   nullable(parsed.Location.State),
			Keyword: nullable(parsed.Location.Keyword),
		},
		Procedures: procedures,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func boolPtr(b bool) *bool { return &b }
