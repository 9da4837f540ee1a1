package trips

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
)

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ Repository = (*PostgresRepository)(nil)

const tripsTable = "saved_trips"

var tripColumns = []string{"id", "destination", "duration", "budget", "travelers", "itinerary", "created_at"}

type PostgresRepository struct {
	db     DB
	psql   sq.StatementBuilderType
	logger *zap.Logger
}

func NewPostgresRepository(db DB, logger *zap.Logger) *PostgresRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresRepository{
		db:     db,
		psql:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		logger: logger,
	}
}

func startSpan(ctx context.Context, name, operation string) (context.Context, trace.Span) {
	return otel.Tracer("TripsRepo").Start(ctx, name, trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", operation),
		attribute.String("db.sql.table", tripsTable),
	))
}

func failSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// Ids are bound as canonical strings; squirrel would expand a uuid.UUID
// array into an IN list.
func parseOwner(owner string) (string, error) {
	id, err := uuid.Parse(owner)
	if err != nil {
		return "", fmt.Errorf("%w: invalid owner id", models.ErrValidation)
	}
	return id.String(), nil
}

func parseTripID(id string) (string, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

func (r *PostgresRepository) List(ctx context.Context, owner string) ([]models.SavedTrip, error) {
	ctx, span := startSpan(ctx, "List", "SELECT")
	defer span.End()

	ownerID, err := parseOwner(owner)
	if err != nil {
		return nil, err
	}

	query, args, err := r.psql.Select(tripColumns...).
		From(tripsTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build list query: %v", models.ErrStorage, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		failSpan(span, err)
		r.logger.Error("Failed to list saved trips", zap.String("owner", owner), zap.Error(err))
		return nil, fmt.Errorf("%w: list trips: %v", models.ErrStorage, err)
	}
	defer rows.Close()

	trips := []models.SavedTrip{}
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			failSpan(span, err)
			return nil, fmt.Errorf("%w: scan trip: %v", models.ErrStorage, err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		failSpan(span, err)
		return nil, fmt.Errorf("%w: iterate trips: %v", models.ErrStorage, err)
	}

	span.SetAttributes(attribute.Int("trips.count", len(trips)))
	return trips, nil
}

func (r *PostgresRepository) Append(ctx context.Context, owner string, trip models.SavedTrip) error {
	ctx, span := startSpan(ctx, "Append", "INSERT")
	defer span.End()

	ownerID, err := parseOwner(owner)
	if err != nil {
		return err
	}
	tripID, ok := parseTripID(trip.ID)
	if !ok {
		return fmt.Errorf("%w: invalid trip id", models.ErrValidation)
	}

	query, args, err := r.psql.Insert(tripsTable).
		Columns("id", "owner_id", "destination", "duration", "budget", "travelers", "itinerary", "created_at").
		Values(tripID, ownerID, trip.Destination, trip.Duration, string(trip.Budget), trip.Travelers, trip.Itinerary, trip.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: build insert: %v", models.ErrStorage, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		failSpan(span, err)
		r.logger.Error("Failed to insert saved trip", zap.String("owner", owner), zap.Error(err))
		return fmt.Errorf("%w: insert trip: %v", models.ErrStorage, err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, owner, id string) (models.SavedTrip, error) {
	ctx, span := startSpan(ctx, "Get", "SELECT")
	defer span.End()

	ownerID, err := parseOwner(owner)
	if err != nil {
		return models.SavedTrip{}, err
	}
	tripID, ok := parseTripID(id)
	if !ok {
		return models.SavedTrip{}, fmt.Errorf("%w: trip %s", models.ErrNotFound, id)
	}

	query, args, err := r.psql.Select(tripColumns...).
		From(tripsTable).
		Where(sq.And{sq.Eq{"owner_id": ownerID}, sq.Eq{"id": tripID}}).
		ToSql()
	if err != nil {
		return models.SavedTrip{}, fmt.Errorf("%w: build get query: %v", models.ErrStorage, err)
	}

	trip, err := scanTrip(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.SavedTrip{}, fmt.Errorf("%w: trip %s", models.ErrNotFound, id)
	}
	if err != nil {
		failSpan(span, err)
		return models.SavedTrip{}, fmt.Errorf("%w: get trip: %v", models.ErrStorage, err)
	}
	return trip, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, owner, id string) error {
	ctx, span := startSpan(ctx, "Delete", "DELETE")
	defer span.End()

	ownerID, err := parseOwner(owner)
	if err != nil {
		return err
	}
	tripID, ok := parseTripID(id)
	if !ok {
		return fmt.Errorf("%w: trip %s", models.ErrNotFound, id)
	}

	query, args, err := r.psql.Delete(tripsTable).
		Where(sq.And{sq.Eq{"owner_id": ownerID}, sq.Eq{"id": tripID}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: build delete: %v", models.ErrStorage, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		failSpan(span, err)
		r.logger.Error("Failed to delete saved trip", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("%w: delete trip: %v", models.ErrStorage, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: trip %s", models.ErrNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (models.SavedTrip, error) {
	var (
		trip   models.SavedTrip
		budget string
	)
	if err := row.Scan(&trip.ID, &trip.Destination, &trip.Duration, &budget, &trip.Travelers, &trip.Itinerary, &trip.CreatedAt); err != nil {
		return models.SavedTrip{}, err
	}
	trip.Budget = models.Budget(budget)
	trip.CreatedAt = trip.CreatedAt.UTC()
	return trip, nil
}
