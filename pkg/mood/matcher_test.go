package mood

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"testing"
)

type fakeFinder struct {
	overlap    []Movie
	overlapErr error
	random     []Movie
	randomErr  error

	gotTags    []Tag
	gotExclude []int64
	gotLimit   int
	randomHits int
}

func (f *fakeFinder) FindByMoodOverlap(ctx context.Context, tags []Tag, excludeIDs []int64, limit int) ([]Movie, error) {
	f.gotTags = tags
	f.gotExclude = excludeIDs
	f.gotLimit = limit
	return f.overlap, f.overlapErr
}

func (f *fakeFinder) FindRandom(ctx context.Context, excludeIDs []int64, limit int) ([]Movie, error) {
	f.randomHits++
	f.gotExclude = excludeIDs
	f.gotLimit = limit
	return f.random, f.randomErr
}

type fakePopular struct {
	movies []Movie
	err    error
}

func (f *fakePopular) Popular(ctx context.Context, limit int) ([]Movie, error) {
	return f.movies, f.err
}

func someMovies(ids ...int64) []Movie {
	out := make([]Movie, len(ids))
	for i, id := range ids {
		out[i] = Movie{ID: id}
	}
	return out
}

func TestMatchPassesThroughOrderedResults(t *testing.T) {
	finder := &fakeFinder{overlap: someMovies(7, 3, 9)}
	m := NewMatcher(finder, nil)

	got, err := m.Match(context.Background(), []Tag{"sad", "healing"}, []int64{1, 2}, 3, FallbackError)
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if !reflect.DeepEqual(got, someMovies(7, 3, 9)) {
		t.Errorf("Match() = %v, want catalog order preserved", got)
	}
	if !reflect.DeepEqual(finder.gotTags, []Tag{"sad", "healing"}) {
		t.Errorf("tags = %v", finder.gotTags)
	}
	if !reflect.DeepEqual(finder.gotExclude, []int64{1, 2}) {
		t.Errorf("excludeIDs = %v", finder.gotExclude)
	}
	if finder.gotLimit != 3 {
		t.Errorf("limit = %d, want 3", finder.gotLimit)
	}
}

func TestMatchNoTags(t *testing.T) {
	t.Run("error policy", func(t *testing.T) {
		finder := &fakeFinder{}
		m := NewMatcher(finder, nil)

		_, err := m.Match(context.Background(), nil, nil, 3, FallbackError)
		if !errors.Is(err, ErrNoTags) {
			t.Errorf("Match() error = %v, want ErrNoTags", err)
		}
		if finder.randomHits != 0 {
			t.Error("FindRandom called despite FallbackError")
		}
	})

	t.Run("random policy skips the overlap query", func(t *testing.T) {
		finder := &fakeFinder{random: someMovies(4, 8)}
		m := NewMatcher(finder, nil)

		got, err := m.Match(context.Background(), nil, []int64{4}, 2, FallbackRandom)
		if err != nil {
			t.Fatalf("Match() error = %v", err)
		}
		if !reflect.DeepEqual(got, someMovies(4, 8)) {
			t.Errorf("Match() = %v, want random fallback", got)
		}
		if !reflect.DeepEqual(finder.gotExclude, []int64{4}) {
			t.Errorf("excludeIDs = %v, want carried into fallback", finder.gotExclude)
		}
	})
}

func TestMatchEmptyResultFallback(t *testing.T) {
	t.Run("error policy keeps empty set", func(t *testing.T) {
		finder := &fakeFinder{overlap: []Movie{}}
		m := NewMatcher(finder, nil)

		got, err := m.Match(context.Background(), []Tag{"chaotic"}, nil, 3, FallbackError)
		if err != nil {
			t.Fatalf("Match() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Match() = %v, want empty", got)
		}
		if finder.randomHits != 0 {
			t.Error("FindRandom called despite FallbackError")
		}
	})

	t.Run("random policy substitutes", func(t *testing.T) {
		finder := &fakeFinder{random: someMovies(11)}
		m := NewMatcher(finder, nil)

		got, err := m.Match(context.Background(), []Tag{"chaotic"}, nil, 1, FallbackRandom)
		if err != nil {
			t.Fatalf("Match() error = %v", err)
		}
		if !reflect.DeepEqual(got, someMovies(11)) {
			t.Errorf("Match() = %v, want random fallback", got)
		}
	})

	t.Run("popular policy uses the cache", func(t *testing.T) {
		finder := &fakeFinder{}
		popular := &fakePopular{movies: someMovies(5, 6)}
		m := NewMatcher(finder, popular)

		got, err := m.Match(context.Background(), []Tag{"chaotic"}, nil, 2, FallbackPopular)
		if err != nil {
			t.Fatalf("Match() error = %v", err)
		}
		if !reflect.DeepEqual(got, someMovies(5, 6)) {
			t.Errorf("Match() = %v, want popular movies", got)
		}
		if finder.randomHits != 0 {
			t.Error("FindRandom called although the popular cache served")
		}
	})

	t.Run("popular policy degrades to random", func(t *testing.T) {
		finder := &fakeFinder{random: someMovies(2)}
		popular := &fakePopular{err: errors.New("cache cold")}
		m := NewMatcher(finder, popular)

		got, err := m.Match(context.Background(), []Tag{"chaotic"}, nil, 1, FallbackPopular)
		if err != nil {
			t.Fatalf("Match() error = %v", err)
		}
		if !reflect.DeepEqual(got, someMovies(2)) {
			t.Errorf("Match() = %v, want random fallback", got)
		}
	})
}

// sortingCatalog behaves like the real catalog query: overlap filter,
// exclude set, rating DESC with id ASC tie-break, truncation to limit.
type sortingCatalog struct {
	rows []Movie
}

func (c *sortingCatalog) FindByMoodOverlap(ctx context.Context, tags []Tag, excludeIDs []int64, limit int) ([]Movie, error) {
	excluded := make(map[int64]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	tagSet := make(map[Tag]bool, len(tags))
	for _, tag := range tags {
		tagSet[tag] = true
	}

	var out []Movie
	for _, m := range c.rows {
		if excluded[m.ID] {
			continue
		}
		for _, tag := range m.Mood {
			if tagSet[tag] {
				out = append(out, m)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (c *sortingCatalog) FindRandom(ctx context.Context, excludeIDs []int64, limit int) ([]Movie, error) {
	return nil, errors.New("unexpected random query")
}

func TestMatchRatingOrderWithTieBreak(t *testing.T) {
	finder := &sortingCatalog{rows: []Movie{
		{ID: 9, Rating: 8.7, Mood: []Tag{"sad"}},
		{ID: 1, Rating: 7.0, Mood: []Tag{"sad"}},
		{ID: 4, Rating: 9.1, Mood: []Tag{"sad"}},
		{ID: 2, Rating: 8.7, Mood: []Tag{"sad"}},
		{ID: 7, Rating: 9.9, Mood: []Tag{"happy"}},
	}}
	m := NewMatcher(finder, nil)

	got, err := m.Match(context.Background(), []Tag{"sad"}, nil, 3, FallbackError)
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	// Rating descending; the 8.7 tie resolves to the lower id first.
	wantIDs := []int64{4, 2, 9}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Errorf("got[%d].ID = %d, want %d", i, got[i].ID, want)
		}
	}

	// Same query, same order.
	again, err := m.Match(context.Background(), []Tag{"sad"}, nil, 3, FallbackError)
	if err != nil {
		t.Fatalf("Match() second call error = %v", err)
	}
	if !reflect.DeepEqual(got, again) {
		t.Errorf("repeat Match() = %v, want %v", again, got)
	}
}

func TestMatchExcludeBeforeLimit(t *testing.T) {
	finder := &sortingCatalog{rows: []Movie{
		{ID: 1, Rating: 9.0, Mood: []Tag{"cozy"}},
		{ID: 2, Rating: 8.0, Mood: []Tag{"cozy"}},
		{ID: 3, Rating: 7.0, Mood: []Tag{"cozy"}},
	}}
	m := NewMatcher(finder, nil)

	got, err := m.Match(context.Background(), []Tag{"cozy"}, []int64{1}, 2, FallbackError)
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Errorf("Match() = %v, want ids 2, 3", got)
	}
}

func TestMatchPropagatesFinderError(t *testing.T) {
	finder := &fakeFinder{overlapErr: errors.New("db down")}
	m := NewMatcher(finder, nil)

	_, err := m.Match(context.Background(), []Tag{"sad"}, nil, 3, FallbackRandom)
	if err == nil || err.Error() != "db down" {
		t.Errorf("Match() error = %v, want db down", err)
	}
	if finder.randomHits != 0 {
		t.Error("query failure must not trigger the fallback")
	}
}
