package service

import (
	"context"
	"reflect"
	"testing"

	"cinemotion-be/internal/entity"
	"cinemotion-be/internal/repository/specification"
	"cinemotion-be/pkg/mood"

	"github.com/google/uuid"
)

type memHistoryRepo struct {
	recent []*entity.HistoryEntry
	all    []*entity.HistoryEntry
}

func (r *memHistoryRepo) Create(ctx context.Context, entry *entity.HistoryEntry) error { return nil }
func (r *memHistoryRepo) Delete(ctx context.Context, userId uuid.UUID, movieId int64) error {
	return nil
}

// A Limit spec marks the recent-history query; the watched-id scan has none.
func (r *memHistoryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.HistoryEntry, error) {
	for _, spec := range specs {
		if _, ok := spec.(specification.Limit); ok {
			return r.recent, nil
		}
	}
	return r.all, nil
}

type memMovieRepo struct {
	stubMovieRepo
	byIDs  []*entity.Movie
	random []*entity.Movie
}

func (r *memMovieRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Movie, error) {
	for _, spec := range specs {
		switch spec.(type) {
		case specification.ByIDs:
			return r.byIDs, nil
		case specification.RandomOrder:
			return r.random, nil
		}
	}
	return nil, nil
}

func historyOf(userId uuid.UUID, movieIds ...int64) []*entity.HistoryEntry {
	out := make([]*entity.HistoryEntry, len(movieIds))
	for i, id := range movieIds {
		out[i] = &entity.HistoryEntry{UserId: userId, MovieId: id}
	}
	return out
}

func TestGetPersonalRecommendations(t *testing.T) {
	userId := uuid.New()
	uow := &stubUow{
		histories: &memHistoryRepo{
			recent: historyOf(userId, 1, 2),
			all:    historyOf(userId, 1, 2, 3),
		},
		movies: &memMovieRepo{
			byIDs: []*entity.Movie{
				{Id: 1, Mood: []string{"sad", "healing"}},
				{Id: 2, Mood: []string{"healing", "warm"}},
			},
		},
	}
	catalog := &stubCatalog{movies: []mood.Movie{
		{ID: 10, Title: "Pick One", Mood: []mood.Tag{"healing"}, Rating: 8.1},
		{ID: 11, Title: "Pick Two", Mood: []mood.Tag{"warm"}, Rating: 7.9},
	}}
	svc := NewRecommendationService(&stubUowFactory{uow: uow}, mood.NewMatcher(catalog, nil))

	got, err := svc.GetPersonalRecommendations(context.Background(), userId)
	if err != nil {
		t.Fatalf("GetPersonalRecommendations() error = %v", err)
	}

	// Mood profile: flattened recent tags, first-seen order, deduped.
	wantProfile := []mood.Tag{"sad", "healing", "warm"}
	if !reflect.DeepEqual(catalog.gotTags, wantProfile) {
		t.Errorf("profile = %v, want %v", catalog.gotTags, wantProfile)
	}
	// Everything watched is excluded, not just the recent five.
	if !reflect.DeepEqual(catalog.gotExclude, []int64{1, 2, 3}) {
		t.Errorf("excludeIDs = %v, want [1 2 3]", catalog.gotExclude)
	}
	if catalog.gotLimit != 10 {
		t.Errorf("limit = %d, want 10", catalog.gotLimit)
	}

	if len(got) != 2 || got[0].Id != 10 || got[1].Id != 11 {
		t.Fatalf("recommendations = %+v, want catalog order 10, 11", got)
	}
	if got[0].Title != "Pick One" || got[0].Rating != 8.1 {
		t.Errorf("got[0] = %+v", got[0])
	}
}

func TestGetPersonalRecommendationsNewUserFallsBackToRandom(t *testing.T) {
	uow := &stubUow{
		histories: &memHistoryRepo{},
		movies:    &memMovieRepo{},
	}
	catalog := &stubCatalog{random: []mood.Movie{{ID: 5, Title: "Random Pick"}}}
	svc := NewRecommendationService(&stubUowFactory{uow: uow}, mood.NewMatcher(catalog, nil))

	got, err := svc.GetPersonalRecommendations(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetPersonalRecommendations() error = %v", err)
	}
	if len(got) != 1 || got[0].Id != 5 {
		t.Errorf("recommendations = %+v, want the random pick", got)
	}
}

func TestGetRandomRecommendations(t *testing.T) {
	uow := &stubUow{
		movies: &memMovieRepo{random: []*entity.Movie{
			{Id: 21, Title: "Any", Rating: 6.4, Mood: []string{"funny"}},
		}},
	}
	svc := NewRecommendationService(&stubUowFactory{uow: uow}, nil)

	got, err := svc.GetRandomRecommendations(context.Background())
	if err != nil {
		t.Fatalf("GetRandomRecommendations() error = %v", err)
	}
	if len(got) != 1 || got[0].Id != 21 || got[0].Title != "Any" {
		t.Errorf("recommendations = %+v", got)
	}
}
