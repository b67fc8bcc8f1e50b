package entity

import (
	"time"

	"github.com/google/uuid"
)

type MovieEmbedding struct {
	Id             uuid.UUID
	MovieId        int64
	Document       string
	EmbeddingValue []float32
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
