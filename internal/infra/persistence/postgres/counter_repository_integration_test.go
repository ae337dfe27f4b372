//go:build integration

package postgres

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run with: ESTATE_TEST_POSTGRES_DSN=postgres://... go test -tags integration ./internal/infra/persistence/postgres/
func TestCounterRepository_NextIsUniqueUnderConcurrency(t *testing.T) {
	dsn := os.Getenv("ESTATE_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("ESTATE_TEST_POSTGRES_DSN not set")
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec(`CREATE TABLE IF NOT EXISTS counters (key VARCHAR(64) PRIMARY KEY, value BIGINT NOT NULL)`).Error)

	key := "it-" + uuid.NewString()
	t.Cleanup(func() {
		db.Exec(`DELETE FROM counters WHERE key = ?`, key)
	})

	repo := NewCounterRepository(db)

	const callers = 64
	ctx := context.Background()
	seen := make(map[int64]int, callers)
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := repo.Next(ctx, key)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			seen[value]++
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	require.Len(t, seen, callers, "every caller must observe a distinct serial")
	for value := int64(1); value <= callers; value++ {
		assert.Equal(t, 1, seen[value], "serial %d", value)
	}
}
