package implementation

import (
	"context"

	"cinemotion-be/internal/entity"
	"cinemotion-be/internal/mapper"
	"cinemotion-be/internal/model"
	"cinemotion-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MovieEmbeddingRepositoryImpl struct {
	db          *gorm.DB
	mapper      *mapper.MovieEmbeddingMapper
	movieMapper *mapper.MovieMapper
}

func NewMovieEmbeddingRepository(db *gorm.DB) contract.MovieEmbeddingRepository {
	return &MovieEmbeddingRepositoryImpl{
		db:          db,
		mapper:      mapper.NewMovieEmbeddingMapper(),
		movieMapper: mapper.NewMovieMapper(),
	}
}

func (r *MovieEmbeddingRepositoryImpl) Upsert(ctx context.Context, embedding *entity.MovieEmbedding) error {
	m := r.mapper.ToModel(embedding)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "movie_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "embedding_value", "updated_at"}),
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

func (r *MovieEmbeddingRepositoryImpl) DeleteByMovieId(ctx context.Context, movieId int64) error {
	return r.db.WithContext(ctx).Where("movie_id = ?", movieId).Delete(&model.MovieEmbedding{}).Error
}

func (r *MovieEmbeddingRepositoryImpl) SearchSimilar(ctx context.Context, vector []float32, limit int) ([]*entity.Movie, error) {
	if limit <= 0 {
		limit = 5
	}
	var models []*model.Movie

	// Cosine distance via pgvector: embedding_value <=> query vector.
	err := r.db.WithContext(ctx).
		Table("movies").
		Select("movies.*").
		Joins("JOIN movie_embeddings ON movie_embeddings.movie_id = movies.id").
		Order(gorm.Expr("movie_embeddings.embedding_value <=> ?", pgvector.NewVector(vector))).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.movieMapper.ToEntities(models), nil
}
