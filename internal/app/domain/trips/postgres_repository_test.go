package trips

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
)

const testTripID = "5f0c7b8e-2f1d-4a0b-8c3e-9d6a1b2c3d4e"

func newMockRepo(t *testing.T) (*PostgresRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPostgresRepository(mock, nil), mock
}

func tripRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "destination", "duration", "budget", "travelers", "itinerary", "created_at"})
}

func TestPostgresRepositoryList(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM saved_trips WHERE owner_id = $1 ORDER BY created_at ASC")).
		WithArgs(testOwner).
		WillReturnRows(tripRows().
			AddRow(testTripID, "Madurai", 3, "budget", 2, "# Madurai", created).
			AddRow("7a1b2c3d-4e5f-4061-8172-93a4b5c6d7e8", "Ooty", 5, "luxury", 4, "# Ooty", created.Add(time.Hour)))

	trips, err := repo.List(context.Background(), testOwner)
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, testTripID, trips[0].ID)
	assert.Equal(t, models.BudgetBudget, trips[0].Budget)
	assert.Equal(t, "Ooty", trips[1].Destination)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepositoryListFailure(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("FROM saved_trips").WithArgs(testOwner).WillReturnError(errors.New("connection reset"))

	_, err := repo.List(context.Background(), testOwner)
	assert.ErrorIs(t, err, models.ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepositoryAppend(t *testing.T) {
	repo, mock := newMockRepo(t)
	trip := sampleTrip(testTripID, "Kanyakumari")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO saved_trips (id,owner_id,destination,duration,budget,travelers,itinerary,created_at)")).
		WithArgs(testTripID, testOwner, "Kanyakumari", 3, "moderate", 2, "# Kanyakumari", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Append(context.Background(), testOwner, trip))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepositoryRejectsBadIDs(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	assert.ErrorIs(t, repo.Append(ctx, "not-a-uuid", sampleTrip(testTripID, "x")), models.ErrValidation)
	assert.ErrorIs(t, repo.Append(ctx, testOwner, sampleTrip("short", "x")), models.ErrValidation)
	_, err := repo.Get(ctx, testOwner, "short")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, testOwner, "short"), models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepositoryGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE (owner_id = $1 AND id = $2)")).
			WithArgs(testOwner, testTripID).
			WillReturnRows(tripRows().AddRow(testTripID, "Madurai", 3, "moderate", 2, "# Madurai", time.Now()))

		trip, err := repo.Get(context.Background(), testOwner, testTripID)
		require.NoError(t, err)
		assert.Equal(t, "Madurai", trip.Destination)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("FROM saved_trips").WithArgs(testOwner, testTripID).WillReturnRows(tripRows())

		_, err := repo.Get(context.Background(), testOwner, testTripID)
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresRepositoryDelete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM saved_trips WHERE (owner_id = $1 AND id = $2)")).
			WithArgs(testOwner, testTripID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, repo.Delete(context.Background(), testOwner, testTripID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing matched", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec("DELETE FROM saved_trips").
			WithArgs(testOwner, testTripID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), testOwner, testTripID), models.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
