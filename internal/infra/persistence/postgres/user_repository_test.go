package postgres

import (
	"context"
	"testing"

	"estate/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_IncrementListingCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "users" SET "listing_count"=listing_count \+ 1,"updated_at"=\$1 WHERE id = \$2`).
		WithArgs(sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.IncrementListingCount(context.Background(), id))
}

func TestUserRepository_IncrementListingCount_MissingUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET "listing_count"=listing_count \+ 1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.IncrementListingCount(context.Background(), uuid.New()), repository.ErrUserNotFound)
}

func TestUserRepository_DecrementListingCount(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		wantFound    bool
	}{
		{name: "existing user", rowsAffected: 1, wantFound: true},
		{name: "dangling owner", rowsAffected: 0, wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserRepository(db)
			id := uuid.New()

			mock.ExpectExec(`UPDATE "users" SET "listing_count"=GREATEST\(listing_count - 1, 0\),"updated_at"=\$1 WHERE id = \$2`).
				WithArgs(sqlmock.AnyArg(), id).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			found, err := repo.DecrementListingCount(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestUserRepository_AssignSerialNumber_OnlyWhenUnset(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "users" SET "serial_number"=\$1,"updated_at"=\$2 WHERE id = \$3 AND serial_number IS NULL`).
		WithArgs(int64(9), sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.AssignSerialNumber(context.Background(), id, 9))
}

func TestUserRepository_ReconcileListingCounts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE users u\s+SET listing_count = c.cnt`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	fixed, err := repo.ReconcileListingCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), fixed)
}

func TestUserRepository_FindUserByPhone_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE phone = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindUserByPhone(context.Background(), "+919800000000")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
