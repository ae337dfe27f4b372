package repository

import "context"

// UserSerialCounter is the counter key backing user serial numbers.
const UserSerialCounter = "userSerialId"

// CounterRepository hands out monotonically increasing values per key.
type CounterRepository interface {
	// Next atomically increments the counter, creating it at 1, and returns
	// the new value. Concurrent callers never observe the same value.
	Next(ctx context.Context, key string) (int64, error)
}
