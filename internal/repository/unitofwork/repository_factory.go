package unitofwork

import "context"

// RepositoryFactory hands out request-scoped units of work over the
// catalog database.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
