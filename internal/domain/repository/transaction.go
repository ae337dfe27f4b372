package repository

import "context"

// TransactionManager runs a unit of work in one database transaction.
type TransactionManager interface {
	// Execute runs fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository

	NewListingRepository() ListingRepository

	NewCounterRepository() CounterRepository

	NewMarkRepository() MarkRepository
}
