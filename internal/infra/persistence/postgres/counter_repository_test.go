package postgres

import (
	"context"
	"errors"
	"testing"

	"estate/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterRepository_Next(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCounterRepository(db)

	mock.ExpectQuery(`INSERT INTO counters \(key, value\) VALUES \(\$1, 1\)\s+ON CONFLICT \(key\) DO UPDATE SET value = counters.value \+ 1\s+RETURNING value`).
		WithArgs(repository.UserSerialCounter).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(int64(42)))

	value, err := repo.Next(context.Background(), repository.UserSerialCounter)
	require.NoError(t, err)
	assert.Equal(t, int64(42), value)
}

func TestCounterRepository_NextError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCounterRepository(db)

	mock.ExpectQuery(`INSERT INTO counters`).
		WithArgs("userSerialId").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.Next(context.Background(), "userSerialId")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `failed to advance counter "userSerialId"`)
}
