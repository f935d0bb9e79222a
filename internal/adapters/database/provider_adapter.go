package database

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/doug-martin/goqu/v9/exp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/domain/entities"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/domain/repositories"
	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/infrastructure/observability"
	apperrors "github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/pkg/errors"
)

const (
	providersTable = "providers"

	colNPI       = "rndrng_npi"
	colFirstName = "rndrng_prvdr_first_name"
	colLastName  = "rndrng_prvdr_last_org_name"
	colSpecialty = "rndrng_prvdr_type"
	colCity      = "rndrng_prvdr_city"
	colState     = "rndrng_prvdr_state_abrvtn"
	colZip       = "rndrng_prvdr_zip5"
)

var providerColumns = []any{
	goqu.C(colNPI).As("npi"),
	goqu.C(colFirstName).As("first_name"),
	goqu.C(colLastName).As("last_name"),
	goqu.C(colSpecialty).As("specialty"),
	goqu.C(colCity).As("city"),
	goqu.C(colState).As("state"),
	goqu.C(colZip).As("zip"),
}

// SQLClient is a pooled connection together with the goqu dialect it speaks
type SQLClient interface {
	DB() *sql.DB
	Dialect() string
}

// ProviderAdapter implements ProviderRepository over the providers table
type ProviderAdapter struct {
	client  SQLClient
	db      *goqu.Database
	metrics *observability.Metrics
}

// NewProviderAdapter creates a new provider adapter. metrics may be nil.
func NewProviderAdapter(client SQLClient, metrics *observability.Metrics) *ProviderAdapter {
	return &ProviderAdapter{
		client:  client,
		db:      goqu.New(client.Dialect(), client.DB()),
		metrics: metrics,
	}
}

var _ repositories.ProviderRepository = (*ProviderAdapter)(nil)

// Search implements ProviderRepository
func (a *ProviderAdapter) Search(ctx context.Context, filter repositories.ProviderFilter) ([]*entities.Provider, error) {
	query, args, err := a.searchQuery(filter).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build provider search query", err)
	}

	providers, err := a.query(ctx, "providers.search", query, args)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to search providers", err)
	}
	return providers, nil
}

// ListBySpecialties implements ProviderRepository
func (a *ProviderAdapter) ListBySpecialties(ctx context.Context, specialties []string, limit int) ([]*entities.Provider, error) {
	query, args, err := a.fallbackQuery(specialties, limit).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build fallback provider query", err)
	}

	providers, err := a.query(ctx, "providers.list_by_specialties", query, args)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to fetch fallback providers", err)
	}
	return providers, nil
}

func (a *ProviderAdapter) searchQuery(filter repositories.ProviderFilter) *goqu.SelectDataset {
	var conditions []exp.Expression
	if filter.Specialty != "" {
		conditions = append(conditions, goqu.C(colSpecialty).Eq(filter.Specialty))
	}
	if filter.City != "" {
		pattern := "%" + strings.ToLower(filter.City) + "%"
		conditions = append(conditions, goqu.Func("LOWER", goqu.C(colCity)).Like(pattern))
	}
	if filter.State != "" {
		conditions = append(conditions, goqu.C(colState).Eq(filter.State))
	}

	ds := a.db.From(providersTable).
		Prepared(true).
		Select(providerColumns...).
		Distinct()
	if len(conditions) > 0 {
		ds = ds.Where(conditions...)
	}
	return ds.
		Order(goqu.C(colSpecialty).Asc(), goqu.C(colCity).Asc()).
		Limit(uint(filter.Limit))
}

func (a *ProviderAdapter) fallbackQuery(specialties []string, limit int) *goqu.SelectDataset {
	return a.db.From(providersTable).
		Prepared(true).
		Select(providerColumns...).
		Distinct().
		Where(goqu.C(colSpecialty).In(specialties)).
		Order(goqu.C(colNPI).Asc()).
		Limit(uint(limit))
}

func (a *ProviderAdapter) query(ctx context.Context, operation, query string, args []any) ([]*entities.Provider, error) {
	ctx, span := otel.Tracer("github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/database").Start(ctx, operation)
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", a.client.Dialect()),
		attribute.String("db.statement", query),
	)

	start := time.Now()
	defer func() {
		if a.metrics != nil {
			observability.RecordDBMetric(ctx, a.metrics, operation, time.Since(start))
		}
	}()

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer rows.Close()

	providers := []*entities.Provider{}
	for rows.Next() {
		p := &entities.Provider{}
		var firstName, lastName, specialty, city, state, zip sql.NullString
		if err := rows.Scan(&p.NPI, &firstName, &lastName, &specialty, &city, &state, &zip); err != nil {
			span.RecordError(err)
			return nil, err
		}
		p.FirstName = firstName.String
		p.LastName = lastName.String
		p.Specialty = specialty.String
		p.City = city.String
		p.State = state.String
		p.Zip = zip.String
		providers = append(providers, p)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("db.rows", len(providers)))
	return providers, nil
}
