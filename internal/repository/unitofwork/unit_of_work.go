package unitofwork

import (
	"context"

	"cinemotion-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	MovieRepository() contract.MovieRepository
	HistoryRepository() contract.HistoryRepository
	MovieEmbeddingRepository() contract.MovieEmbeddingRepository
}
