package contract

import (
	"context"

	"cinemotion-be/internal/entity"
	"cinemotion-be/internal/repository/specification"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	Update(ctx context.Context, movie *entity.Movie) error
	UpdateMood(ctx context.Context, id int64, mood []string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Movie, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Movie, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
