package service

import (
	"context"

	"cinemotion-be/internal/dto"
	"cinemotion-be/internal/repository/specification"
	"cinemotion-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const moviesPageSize = 24

type IMovieService interface {
	FetchMovies(ctx context.Context, req *dto.FetchMoviesRequest) ([]*dto.MovieResponse, error)
	// FetchMoodPicks returns a small personal sample excluding watched
	// movies when a user is known, or a random sample otherwise.
	FetchMoodPicks(ctx context.Context, userId *uuid.UUID) ([]*dto.MovieResponse, error)
}

type movieService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMovieService(uowFactory unitofwork.RepositoryFactory) IMovieService {
	return &movieService{
		uowFactory: uowFactory,
	}
}

func (s *movieService) FetchMovies(ctx context.Context, req *dto.FetchMoviesRequest) ([]*dto.MovieResponse, error) {
	specs := make([]specification.Specification, 0, 8)

	if req.Search != "" {
		specs = append(specs, specification.TitleLike{Search: req.Search})
	}
	if req.YearMin > 0 {
		specs = append(specs, specification.YearMin{Year: req.YearMin})
	}
	if req.YearMax > 0 {
		specs = append(specs, specification.YearMax{Year: req.YearMax})
	}
	if req.RatingMin > 0 {
		specs = append(specs, specification.RatingMin{Rating: req.RatingMin})
	}
	if len(req.Genres) > 0 {
		specs = append(specs, specification.GenreOverlaps{Genres: req.Genres})
	}
	if len(req.Regions) > 0 {
		specs = append(specs, specification.ByCountryIn{Countries: req.Regions})
	}

	switch req.Sort {
	case "rating":
		specs = append(specs, specification.OrderByRating{})
	case "alpha":
		specs = append(specs, specification.OrderByTitle{})
	default: // "newest"
		specs = append(specs, specification.OrderByNewest{})
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	specs = append(specs, specification.Pagination{
		Limit:  moviesPageSize,
		Offset: (page - 1) * moviesPageSize,
	})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	movies, err := uow.MovieRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, toMovieResponse(m))
	}
	return out, nil
}

func (s *movieService) FetchMoodPicks(ctx context.Context, userId *uuid.UUID) ([]*dto.MovieResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var excludeIds []int64
	if userId != nil {
		watched, err := uow.HistoryRepository().FindAll(ctx, specification.ByUserID{UserID: *userId})
		if err == nil {
			for _, h := range watched {
				excludeIds = append(excludeIds, h.MovieId)
			}
		}
	}

	movies, err := uow.MovieRepository().FindAll(ctx,
		specification.ExcludeIDs{IDs: excludeIds},
		specification.RandomOrder{},
		specification.Limit{N: 10},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, toMovieResponse(m))
	}
	return out, nil
}
