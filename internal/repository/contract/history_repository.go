package contract

import (
	"context"

	"cinemotion-be/internal/entity"
	"cinemotion-be/internal/repository/specification"

	"github.com/google/uuid"
)

type HistoryRepository interface {
	Create(ctx context.Context, entry *entity.HistoryEntry) error
	Delete(ctx context.Context, userId uuid.UUID, movieId int64) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.HistoryEntry, error)
}
