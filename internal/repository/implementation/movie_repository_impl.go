package implementation

import (
	"context"
	"errors"

	"cinemotion-be/internal/entity"
	"cinemotion-be/internal/mapper"
	"cinemotion-be/internal/model"
	"cinemotion-be/internal/repository/contract"
	"cinemotion-be/internal/repository/specification"

	"gorm.io/gorm"
)

type MovieRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MovieMapper
}

func NewMovieRepository(db *gorm.DB) contract.MovieRepository {
	return &MovieRepositoryImpl{
		db:     db,
		mapper: mapper.NewMovieMapper(),
	}
}

func (r *MovieRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MovieRepositoryImpl) Create(ctx context.Context, movie *entity.Movie) error {
	m := r.mapper.ToModel(movie)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*movie = *r.mapper.ToEntity(m)
	return nil
}

func (r *MovieRepositoryImpl) Update(ctx context.Context, movie *entity.Movie) error {
	m := r.mapper.ToModel(movie)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*movie = *r.mapper.ToEntity(m)
	return nil
}

func (r *MovieRepositoryImpl) UpdateMood(ctx context.Context, id int64, mood []string) error {
	return r.db.WithContext(ctx).
		Model(&model.Movie{}).
		Where("id = ?", id).
		Update("mood", model.StringArray(mood)).Error
}

func (r *MovieRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Movie, error) {
	var m model.Movie
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MovieRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Movie, error) {
	var models []*model.Movie
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MovieRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Movie{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
