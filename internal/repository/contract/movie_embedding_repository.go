package contract

import (
	"context"

	"cinemotion-be/internal/entity"
)

type MovieEmbeddingRepository interface {
	// Upsert replaces the embedding for a movie (one row per movie).
	Upsert(ctx context.Context, embedding *entity.MovieEmbedding) error
	DeleteByMovieId(ctx context.Context, movieId int64) error

	// SearchSimilar returns the movies whose embeddings are nearest to
	// the query vector by cosine distance, nearest first.
	SearchSimilar(ctx context.Context, vector []float32, limit int) ([]*entity.Movie, error)
}
