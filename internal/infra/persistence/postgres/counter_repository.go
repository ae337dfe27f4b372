package postgres

import (
	"context"

	"estate/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// nextCounterValueQuery creates the counter at 1 or bumps it, in one statement.
// ON CONFLICT DO UPDATE row-locks the counter, so concurrent callers are
// serialized and each RETURNING sees a distinct value.
const nextCounterValueQuery = `
	INSERT INTO counters (key, value) VALUES (?, 1)
	ON CONFLICT (key) DO UPDATE SET value = counters.value + 1
	RETURNING value
`

type counterRepository struct {
	db *gorm.DB
}

// NewCounterRepository is the constructor for counterRepository.
func NewCounterRepository(db *gorm.DB) repository.CounterRepository {
	return &counterRepository{db: db}
}

func (repo *counterRepository) Next(ctx context.Context, key string) (int64, error) {
	var value int64

	if err := repo.db.WithContext(ctx).Raw(nextCounterValueQuery, key).Scan(&value).Error; err != nil {
		return 0, errors.Wrapf(err, "failed to advance counter %q", key)
	}
	if value <= 0 {
		return 0, errors.Errorf("counter %q returned no value", key)
	}

	return value, nil
}
