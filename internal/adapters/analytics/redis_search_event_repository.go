package analytics

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/domain/entities"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/domain/repositories"
	redisclient "github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/infrastructure/clients/redis"
	apperrors "github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/pkg/errors"
)

const (
	eventsKey     = "search:events"
	zeroResultKey = "search:events:zero_results"

	defaultZeroResultLimit = 100
)

// RedisSearchEventRepository keeps the most recent search events in capped
// Redis lists, newest first.
type RedisSearchEventRepository struct {
	client    *redisclient.Client
	maxEvents int64
}

// NewRedisSearchEventRepository creates a repository that retains at most maxEvents per list
func NewRedisSearchEventRepository(client *redisclient.Client, maxEvents int) repositories.SearchAnalyticsRepository {
	return &RedisSearchEventRepository{
		client:    client,
		maxEvents: int64(max(1, maxEvents)),
	}
}

// LogEvent implements SearchAnalyticsRepository
func (r *RedisSearchEventRepository) LogEvent(ctx context.Context, event *entities.SearchEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return apperrors.NewInternalError("failed to encode search event", err)
	}

	_, err = r.client.Client().TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, eventsKey, payload)
		pipe.LTrim(ctx, eventsKey, 0, r.maxEvents-1)
		if event.ResultCount == 0 {
			pipe.LPush(ctx, zeroResultKey, payload)
			pipe.LTrim(ctx, zeroResultKey, 0, r.maxEvents-1)
		}
		return nil
	})
	if err != nil {
		return apperrors.NewExternalError("failed to log search event", err)
	}
	return nil
}

// GetZeroResultQueries implements SearchAnalyticsRepository
func (r *RedisSearchEventRepository) GetZeroResultQueries(ctx context.Context, limit int) ([]*entities.SearchEvent, error) {
	if limit <= 0 {
		limit = defaultZeroResultLimit
	}

	raw, err := r.client.Client().LRange(ctx, zeroResultKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, apperrors.NewExternalError("failed to get zero result queries", err)
	}

	events := make([]*entities.SearchEvent, 0, len(raw))
	for _, item := range raw {
		e := &entities.SearchEvent{}
		if err := json.Unmarshal([]byte(item), e); err != nil {
			return nil, apperrors.NewInternalError("failed to decode search event", err)
		}
		events = append(events, e)
	}
	return events, nil
}
