package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinemotion-be/internal/dto"
	"cinemotion-be/internal/entity"
	"cinemotion-be/internal/repository/specification"
	"cinemotion-be/internal/repository/unitofwork"
	"cinemotion-be/pkg/events"
	pktNats "cinemotion-be/pkg/nats"
	"cinemotion-be/pkg/store"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	SaveMovie(ctx context.Context, userId uuid.UUID, req *dto.SaveMovieRequest) error
	GetSavedMovies(ctx context.Context, userId uuid.UUID) ([]*dto.MovieResponse, error)
	GetHistory(ctx context.Context, userId uuid.UUID) ([]*dto.HistoryItemResponse, error)
	AddHistory(ctx context.Context, userId uuid.UUID, req *dto.SaveMovieRequest) error
	DeleteHistory(ctx context.Context, userId uuid.UUID, movieId int64) error
}

type userService struct {
	uowFactory     unitofwork.RepositoryFactory
	savedStore     *store.SavedMovieStore
	eventPublisher *pktNats.Publisher
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, savedStore *store.SavedMovieStore, eventPublisher *pktNats.Publisher) IUserService {
	return &userService{
		uowFactory:     uowFactory,
		savedStore:     savedStore,
		eventPublisher: eventPublisher,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUUID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	return &dto.UserProfileResponse{
		Id:               user.Id,
		Email:            user.Email,
		Name:             user.Name,
		Locale:           user.Locale,
		Region:           user.Region,
		ComfortOnDefault: user.ComfortOnDefault,
		VibesPref:        user.VibesPref,
	}, nil
}

func (s *userService) SaveMovie(ctx context.Context, userId uuid.UUID, req *dto.SaveMovieRequest) error {
	return s.savedStore.Save(ctx, userId, req.MovieId)
}

func (s *userService) GetSavedMovies(ctx context.Context, userId uuid.UUID) ([]*dto.MovieResponse, error) {
	ids, err := s.savedStore.List(ctx, userId)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*dto.MovieResponse{}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	movies, err := uow.MovieRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}

	out := make([]*dto.MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, toMovieResponse(m))
	}
	return out, nil
}

func (s *userService) GetHistory(ctx context.Context, userId uuid.UUID) ([]*dto.HistoryItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.HistoryRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderByWatched{},
		specification.Limit{N: 50},
	)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []*dto.HistoryItemResponse{}, nil
	}

	movieIds := make([]int64, 0, len(entries))
	for _, e := range entries {
		movieIds = append(movieIds, e.MovieId)
	}

	movies, err := uow.MovieRepository().FindAll(ctx, specification.ByIDs{IDs: movieIds})
	if err != nil {
		return nil, err
	}
	byId := make(map[int64]*entity.Movie, len(movies))
	for _, m := range movies {
		byId[m.Id] = m
	}

	out := make([]*dto.HistoryItemResponse, 0, len(entries))
	for _, e := range entries {
		item := &dto.HistoryItemResponse{
			Id:        e.Id,
			MovieId:   e.MovieId,
			WatchedAt: e.WatchedAt,
		}
		if m, ok := byId[e.MovieId]; ok {
			item.Movie = &dto.HistoryMovie{
				Id:        m.Id,
				Title:     m.Title,
				Year:      m.Year,
				Genre:     m.Genre,
				PosterURL: m.PosterURL,
				Overview:  m.Overview,
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *userService) AddHistory(ctx context.Context, userId uuid.UUID, req *dto.SaveMovieRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry := &entity.HistoryEntry{
		UserId:    userId,
		MovieId:   req.MovieId,
		WatchedAt: time.Now(),
	}
	if err := uow.HistoryRepository().Create(ctx, entry); err != nil {
		return err
	}

	// PUBLISH EVENT (best effort)
	if s.eventPublisher != nil {
		evt := events.NewHistoryAdded(userId, req.MovieId)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish HISTORY_ADDED event: %v\n", err)
		}
	}
	return nil
}

func (s *userService) DeleteHistory(ctx context.Context, userId uuid.UUID, movieId int64) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.HistoryRepository().Delete(ctx, userId, movieId)
}

func toMovieResponse(m *entity.Movie) *dto.MovieResponse {
	return &dto.MovieResponse{
		Id:          m.Id,
		Title:       m.Title,
		Year:        m.Year,
		Genre:       m.Genre,
		Country:     m.Country,
		Overview:    m.Overview,
		YoutubeLink: m.YoutubeLink,
		PosterURL:   m.PosterURL,
		Rating:      m.Rating,
		Mood:        m.Mood,
	}
}
