package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/practicum/shareit/server/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestRepository(t *testing.T) (repository.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := repository.NewRepository(sqlx.NewDb(db, "pgx"), zap.NewNop())
	require.NoError(t, err)
	return repo, mock
}

func noBookings() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id"})
}

// The time buckets partition on strict comparisons: a booking whose start or
// end equals the query instant matches neither FUTURE, PAST nor CURRENT.
func TestRepository_ListByBooker_timeBuckets(t *testing.T) {
	t.Run("future is strictly after now", func(t *testing.T) {
		repo, mock := newTestRepository(t)
		mock.ExpectQuery(`b\.booker_id = \$1 AND b\.start_ts > \$2 ORDER BY b\.start_ts desc LIMIT 3 OFFSET 6`).
			WithArgs(int64(7), testNow).
			WillReturnRows(noBookings())

		_, err := repo.ListByBookerAndStartAfter(context.Background(), 7, testNow, 2, 3)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("past is strictly before now", func(t *testing.T) {
		repo, mock := newTestRepository(t)
		mock.ExpectQuery(`b\.booker_id = \$1 AND b\.end_ts < \$2 ORDER BY b\.start_ts desc`).
			WithArgs(int64(7), testNow).
			WillReturnRows(noBookings())

		_, err := repo.ListByBookerAndEndBefore(context.Background(), 7, testNow, 0, 10)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("current excludes both boundaries", func(t *testing.T) {
		repo, mock := newTestRepository(t)
		mock.ExpectQuery(`b\.booker_id = \$1 AND b\.start_ts < \$2 AND b\.end_ts > \$3 ORDER BY b\.start_ts desc`).
			WithArgs(int64(7), testNow, testNow).
			WillReturnRows(noBookings())

		_, err := repo.ListByBookerCurrent(context.Background(), 7, testNow, 0, 10)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ListByOwner_timeBuckets(t *testing.T) {
	t.Run("future is strictly after now", func(t *testing.T) {
		repo, mock := newTestRepository(t)
		mock.ExpectQuery(`i\.owner_id = \$1 AND b\.start_ts > \$2 ORDER BY b\.start_ts desc`).
			WithArgs(int64(3), testNow).
			WillReturnRows(noBookings())

		_, err := repo.ListByOwnerAndStartAfter(context.Background(), 3, testNow, 0, 10)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("past is strictly before now", func(t *testing.T) {
		repo, mock := newTestRepository(t)
		mock.ExpectQuery(`i\.owner_id = \$1 AND b\.end_ts < \$2 ORDER BY b\.start_ts desc`).
			WithArgs(int64(3), testNow).
			WillReturnRows(noBookings())

		_, err := repo.ListByOwnerAndEndBefore(context.Background(), 3, testNow, 0, 10)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("current excludes both boundaries", func(t *testing.T) {
		repo, mock := newTestRepository(t)
		mock.ExpectQuery(`i\.owner_id = \$1 AND b\.start_ts < \$2 AND b\.end_ts > \$3 ORDER BY b\.start_ts desc`).
			WithArgs(int64(3), testNow, testNow).
			WillReturnRows(noBookings())

		_, err := repo.ListByOwnerCurrent(context.Background(), 3, testNow, 0, 10)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

// A booking ending exactly at now is not finished yet, so it does not unlock
// commenting. No status filter: any booking of the item counts once it ended.
func TestRepository_HasFinishedBooking(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		expected bool
	}{
		{name: "finished booking exists", count: 1, expected: true},
		{name: "no finished booking", count: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepository(t)
			mock.ExpectQuery(`item_id = \$1 AND booker_id = \$2 AND end_ts < \$3`).
				WithArgs(int64(10), int64(7), testNow).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			ok, err := repo.HasFinishedBooking(context.Background(), 10, 7, testNow)
			require.NoError(t, err)
			require.Equal(t, tt.expected, ok)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
