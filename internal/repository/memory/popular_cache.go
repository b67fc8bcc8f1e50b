package memory

import (
	"context"
	"time"

	"cinemotion-be/pkg/mood"

	"github.com/patrickmn/go-cache"
)

const popularKey = "popular_movies"

// LoadFunc fetches the popular set from the catalog when the cache misses.
type LoadFunc func(ctx context.Context, limit int) ([]mood.Movie, error)

// PopularCache is a short-lived in-memory cache over the highest-rated
// catalog rows. It backs the popular fallback of the mood matcher.
type PopularCache struct {
	cache *cache.Cache
	load  LoadFunc
}

func NewPopularCache(load LoadFunc) *PopularCache {
	// Popular set changes rarely; refresh every 15 minutes, purge every 5.
	c := cache.New(15*time.Minute, 5*time.Minute)
	return &PopularCache{
		cache: c,
		load:  load,
	}
}

func (r *PopularCache) Popular(ctx context.Context, limit int) ([]mood.Movie, error) {
	if x, found := r.cache.Get(popularKey); found {
		movies := x.([]mood.Movie)
		// A smaller earlier query must not starve a larger one; reload
		// when the cached set cannot cover the requested limit.
		if len(movies) >= limit {
			return movies[:limit], nil
		}
	}

	movies, err := r.load(ctx, limit)
	if err != nil {
		return nil, err
	}
	r.cache.Set(popularKey, movies, cache.DefaultExpiration)
	if len(movies) > limit {
		movies = movies[:limit]
	}
	return movies, nil
}

func (r *PopularCache) Invalidate() {
	r.cache.Delete(popularKey)
}
