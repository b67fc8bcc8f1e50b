package memory

import (
	"context"
	"errors"
	"testing"

	"cinemotion-be/pkg/mood"
)

// countingLoader hands out `have` movies regardless of limit and counts
// how often the catalog was hit.
type countingLoader struct {
	have  int
	calls int
	err   error
}

func (l *countingLoader) load(ctx context.Context, limit int) ([]mood.Movie, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	n := l.have
	if n > limit {
		n = limit
	}
	out := make([]mood.Movie, n)
	for i := range out {
		out[i] = mood.Movie{ID: int64(i + 1)}
	}
	return out, nil
}

func TestPopularCachesAndTruncates(t *testing.T) {
	loader := &countingLoader{have: 10}
	c := NewPopularCache(loader.load)

	got, err := c.Popular(context.Background(), 5)
	if err != nil {
		t.Fatalf("Popular() error = %v", err)
	}
	if len(got) != 5 {
		t.Errorf("len = %d, want 5", len(got))
	}
	if loader.calls != 1 {
		t.Errorf("calls = %d, want 1", loader.calls)
	}

	// A smaller follow-up is served from cache, truncated.
	got, err = c.Popular(context.Background(), 2)
	if err != nil {
		t.Fatalf("Popular() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
	if loader.calls != 1 {
		t.Errorf("calls = %d, want still 1", loader.calls)
	}
}

func TestPopularReloadsWhenCachedSetTooSmall(t *testing.T) {
	loader := &countingLoader{have: 10}
	c := NewPopularCache(loader.load)

	if _, err := c.Popular(context.Background(), 2); err != nil {
		t.Fatalf("Popular() error = %v", err)
	}

	// The larger query cannot be served by the 2-movie cache entry.
	got, err := c.Popular(context.Background(), 6)
	if err != nil {
		t.Fatalf("Popular() error = %v", err)
	}
	if len(got) != 6 {
		t.Errorf("len = %d, want 6", len(got))
	}
	if loader.calls != 2 {
		t.Errorf("calls = %d, want 2", loader.calls)
	}

	// And the refreshed entry serves subsequent calls again.
	if _, err := c.Popular(context.Background(), 6); err != nil {
		t.Fatalf("Popular() error = %v", err)
	}
	if loader.calls != 2 {
		t.Errorf("calls = %d, want still 2", loader.calls)
	}
}

func TestPopularInvalidate(t *testing.T) {
	loader := &countingLoader{have: 10}
	c := NewPopularCache(loader.load)

	if _, err := c.Popular(context.Background(), 3); err != nil {
		t.Fatalf("Popular() error = %v", err)
	}
	c.Invalidate()
	if _, err := c.Popular(context.Background(), 3); err != nil {
		t.Fatalf("Popular() error = %v", err)
	}
	if loader.calls != 2 {
		t.Errorf("calls = %d, want 2 after Invalidate", loader.calls)
	}
}

func TestPopularLoadFailure(t *testing.T) {
	loader := &countingLoader{err: errors.New("db down")}
	c := NewPopularCache(loader.load)

	if _, err := c.Popular(context.Background(), 3); err == nil {
		t.Error("Popular() error = nil, want load failure")
	}
}
