package mapper

import (
	"time"

	"cinemotion-be/internal/entity"
	"cinemotion-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type MovieEmbeddingMapper struct{}

func NewMovieEmbeddingMapper() *MovieEmbeddingMapper {
	return &MovieEmbeddingMapper{}
}

func (m *MovieEmbeddingMapper) ToEntity(e *model.MovieEmbedding) *entity.MovieEmbedding {
	if e == nil {
		return nil
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.MovieEmbedding{
		Id:             e.Id,
		MovieId:        e.MovieId,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *MovieEmbeddingMapper) ToModel(e *entity.MovieEmbedding) *model.MovieEmbedding {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.MovieEmbedding{
		Id:             e.Id,
		MovieId:        e.MovieId,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}
