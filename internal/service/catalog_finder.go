package service

import (
	"context"

	"cinemotion-be/internal/entity"
	"cinemotion-be/internal/repository/specification"
	"cinemotion-be/internal/repository/unitofwork"
	"cinemotion-be/pkg/mood"
)

// catalogFinder adapts the movie repository to the mood matcher's
// catalog interface.
type catalogFinder struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCatalogFinder(uowFactory unitofwork.RepositoryFactory) mood.CatalogFinder {
	return &catalogFinder{uowFactory: uowFactory}
}

func (f *catalogFinder) FindByMoodOverlap(ctx context.Context, tags []mood.Tag, excludeIDs []int64, limit int) ([]mood.Movie, error) {
	uow := f.uowFactory.NewUnitOfWork(ctx)
	movies, err := uow.MovieRepository().FindAll(ctx,
		specification.MoodOverlaps{Moods: mood.Strings(tags)},
		specification.ExcludeIDs{IDs: excludeIDs},
		specification.OrderByRating{},
		specification.Limit{N: limit},
	)
	if err != nil {
		return nil, err
	}
	return toMoodMovies(movies), nil
}

func (f *catalogFinder) FindRandom(ctx context.Context, excludeIDs []int64, limit int) ([]mood.Movie, error) {
	uow := f.uowFactory.NewUnitOfWork(ctx)
	movies, err := uow.MovieRepository().FindAll(ctx,
		specification.ExcludeIDs{IDs: excludeIDs},
		specification.RandomOrder{},
		specification.Limit{N: limit},
	)
	if err != nil {
		return nil, err
	}
	return toMoodMovies(movies), nil
}

// PopularLoader feeds the popular-movies cache with the top-rated rows.
func PopularLoader(uowFactory unitofwork.RepositoryFactory) func(ctx context.Context, limit int) ([]mood.Movie, error) {
	return func(ctx context.Context, limit int) ([]mood.Movie, error) {
		uow := uowFactory.NewUnitOfWork(ctx)
		movies, err := uow.MovieRepository().FindAll(ctx,
			specification.OrderByRating{},
			specification.Limit{N: limit},
		)
		if err != nil {
			return nil, err
		}
		return toMoodMovies(movies), nil
	}
}

func toMoodMovies(movies []*entity.Movie) []mood.Movie {
	out := make([]mood.Movie, 0, len(movies))
	for _, m := range movies {
		out = append(out, toMoodMovie(m))
	}
	return out
}

func toMoodMovie(m *entity.Movie) mood.Movie {
	return mood.Movie{
		ID:        m.Id,
		Title:     m.Title,
		Year:      m.Year,
		Genre:     m.Genre,
		PosterURL: m.PosterURL,
		Overview:  m.Overview,
		Rating:    m.Rating,
		Mood:      mood.Tags(m.Mood),
	}
}
