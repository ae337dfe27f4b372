package postgres

import (
	"context"
	"testing"
	"time"

	"estate/internal/domain/entity"
	"estate/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingRepository_FindNearby_ExcludesCallerListings(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db)

	caller := entity.NewUserPrincipal(uuid.New())
	otherOwner := uuid.New()
	listingID := uuid.New()
	center := entity.GeoPoint{Latitude: 28.6139, Longitude: 77.2090}

	rows := sqlmock.NewRows([]string{"id", "custom_id", "owner_user_id", "locality", "city", "state", "postal_code", "latitude", "longitude", "price", "purpose", "property_type", "created_at"}).
		AddRow(listingID.String(), "S3-1", otherOwner.String(), "Connaught Place", "New Delhi", "Delhi", "110001", 28.6315, 77.2167, 5500000.0, "Sell", "Residential", time.Now())

	mock.ExpectQuery(`ST_DWithin\(\s+l.location,\s+ST_SetSRID\(ST_MakePoint\(\$1, \$2\), 4326\)::geography,\s+\$3\s+\)\s+AND l.owner_user_id IS DISTINCT FROM \$4\s+ORDER BY ST_Distance`).
		WithArgs(center.Longitude, center.Latitude, 20000.0, caller.ID, center.Longitude, center.Latitude).
		WillReturnRows(rows)

	listings, err := repo.FindNearby(context.Background(), repository.NearbyQuery{
		Center:       center,
		RadiusMeters: 20000,
		Exclude:      caller,
	})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, listingID, listings[0].ID)
	assert.Equal(t, "S3-1", listings[0].CustomID)
	assert.Equal(t, otherOwner, *listings[0].OwnerUserID)
	assert.InDelta(t, 28.6315, listings[0].Location.Latitude, 1e-9)
	assert.Empty(t, listings[0].Images)
}

func TestListingRepository_FindNearby_AdminCallerFiltersAdminColumn(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db)

	admin := entity.NewAdminPrincipal(uuid.New())

	mock.ExpectQuery(`AND l.owner_admin_id IS DISTINCT FROM \$4`).
		WithArgs(77.0, 28.0, 5000.0, admin.ID, 77.0, 28.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	listings, err := repo.FindNearby(context.Background(), repository.NearbyQuery{
		Center:       entity.GeoPoint{Latitude: 28, Longitude: 77},
		RadiusMeters: 5000,
		Exclude:      admin,
	})
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestListingRepository_CreateListing_DuplicateCustomID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db)

	owner := uuid.New()
	listing := &entity.Listing{
		CustomID:     "S1-1",
		OwnerUserID:  &owner,
		Address:      entity.Address{Locality: "Baner", City: "Pune", State: "Maharashtra", PostalCode: "411045"},
		Price:        25000,
		Purpose:      entity.PurposeRentLease,
		PropertyType: entity.PropertyTypeResidential,
	}

	mock.ExpectQuery(`INSERT INTO "listings"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "listings_custom_id_key"})

	err := repo.CreateListing(context.Background(), listing)
	assert.ErrorIs(t, err, repository.ErrDuplicateCustomID)
}

func TestListingRepository_FindListingByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "listings" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindListingByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrListingNotFound)
}

func TestListingRepository_DeleteListing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM "listings" WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteListing(context.Background(), id))

	mock.ExpectExec(`DELETE FROM "listings" WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.DeleteListing(context.Background(), id), repository.ErrListingNotFound)
}

func TestListingRepository_CountByAdmin(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db)
	adminID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "listings" WHERE owner_admin_id = \$1`).
		WithArgs(adminID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	count, err := repo.CountByAdmin(context.Background(), adminID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
