package service

import (
	"context"

	"cinemotion-be/internal/dto"
	"cinemotion-be/internal/repository/specification"
	"cinemotion-be/internal/repository/unitofwork"
	"cinemotion-be/pkg/mood"

	"github.com/google/uuid"
)

const recommendationLimit = 10

type IRecommendationService interface {
	GetPersonalRecommendations(ctx context.Context, userId uuid.UUID) ([]*dto.MovieResponse, error)
	GetRandomRecommendations(ctx context.Context) ([]*dto.MovieResponse, error)
}

type recommendationService struct {
	uowFactory unitofwork.RepositoryFactory
	matcher    *mood.Matcher
}

func NewRecommendationService(uowFactory unitofwork.RepositoryFactory, matcher *mood.Matcher) IRecommendationService {
	return &recommendationService{
		uowFactory: uowFactory,
		matcher:    matcher,
	}
}

// GetPersonalRecommendations builds a mood profile from the user's last
// five watched movies and matches the catalog against it, excluding
// everything already watched. New users and exhausted profiles fall back
// to random picks.
func (s *recommendationService) GetPersonalRecommendations(ctx context.Context, userId uuid.UUID) ([]*dto.MovieResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	recent, err := uow.HistoryRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderByWatched{},
		specification.Limit{N: 5},
	)
	if err != nil {
		return nil, err
	}

	allWatched, err := uow.HistoryRepository().FindAll(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, err
	}
	watchedIds := make([]int64, 0, len(allWatched))
	for _, h := range allWatched {
		watchedIds = append(watchedIds, h.MovieId)
	}

	// Flatten the recent movies' mood tags, first-seen order, deduped.
	var profile []mood.Tag
	if len(recent) > 0 {
		recentIds := make([]int64, 0, len(recent))
		for _, h := range recent {
			recentIds = append(recentIds, h.MovieId)
		}
		recentMovies, err := uow.MovieRepository().FindAll(ctx, specification.ByIDs{IDs: recentIds})
		if err != nil {
			return nil, err
		}
		seen := make(map[mood.Tag]bool)
		for _, m := range recentMovies {
			for _, tag := range mood.Tags(m.Mood) {
				if !seen[tag] {
					seen[tag] = true
					profile = append(profile, tag)
				}
			}
		}
	}

	movies, err := s.matcher.Match(ctx, profile, watchedIds, recommendationLimit, mood.FallbackRandom)
	if err != nil {
		return nil, err
	}
	return toRecommendationResponses(movies), nil
}

func (s *recommendationService) GetRandomRecommendations(ctx context.Context) ([]*dto.MovieResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	movies, err := uow.MovieRepository().FindAll(ctx,
		specification.RandomOrder{},
		specification.Limit{N: recommendationLimit},
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

func toRecommendationResponses(movies []mood.Movie) []*dto.MovieResponse {
	out := make([]*dto.MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, &dto.MovieResponse{
			Id:        m.ID,
			Title:     m.Title,
			Year:      m.Year,
			Genre:     m.Genre,
			Overview:  m.Overview,
			PosterURL: m.PosterURL,
			Rating:    m.Rating,
			Mood:      mood.Strings(m.Mood),
		})
	}
	return out
}
