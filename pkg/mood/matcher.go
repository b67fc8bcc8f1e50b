package mood

import "context"

// Movie is the catalog row snapshot the pipeline works with. Consumed
// read-only; Mood is assumed to stay inside the vocabulary (data-quality
// assumption, not enforced here).
type Movie struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Year      int      `json:"year"`
	Genre     []string `json:"genre"`
	PosterURL string   `json:"poster_url"`
	Overview  string   `json:"movie_overview"`
	Rating    float64  `json:"rating"`
	Mood      []Tag    `json:"mood"`
}

// CatalogFinder is the catalog query capability the matcher consumes.
// FindByMoodOverlap selects rows whose mood set intersects tags, ordered
// by rating descending with id ascending as the tie-break, truncated to
// limit. excludeIDs is an optional pre-filter.
type CatalogFinder interface {
	FindByMoodOverlap(ctx context.Context, tags []Tag, excludeIDs []int64, limit int) ([]Movie, error)
	FindRandom(ctx context.Context, excludeIDs []int64, limit int) ([]Movie, error)
}

// PopularSource serves the FallbackPopular policy, typically backed by a
// short-lived in-memory cache.
type PopularSource interface {
	Popular(ctx context.Context, limit int) ([]Movie, error)
}

// FallbackPolicy decides what happens when matching yields nothing.
// The matcher itself never substitutes unrelated data unless told to.
type FallbackPolicy int

const (
	// FallbackError reports ErrNoTags on an empty tag set and returns
	// the empty result set as-is.
	FallbackError FallbackPolicy = iota
	// FallbackRandom substitutes random catalog rows (still honoring the
	// exclude set).
	FallbackRandom
	// FallbackPopular substitutes cached popular rows.
	FallbackPopular
)

// Matcher translates a classification into an ordered catalog result.
type Matcher struct {
	finder  CatalogFinder
	popular PopularSource
}

func NewMatcher(finder CatalogFinder, popular PopularSource) *Matcher {
	return &Matcher{finder: finder, popular: popular}
}

// Match queries the catalog by tag overlap. An empty tag set is ErrNoTags
// under FallbackError; other policies substitute their fallback instead.
// An empty result set falls back the same way (FallbackError keeps it).
func (m *Matcher) Match(ctx context.Context, tags []Tag, excludeIDs []int64, limit int, policy FallbackPolicy) ([]Movie, error) {
	if len(tags) == 0 {
		if policy == FallbackError {
			return nil, ErrNoTags
		}
		return m.fallback(ctx, excludeIDs, limit, policy)
	}

	movies, err := m.finder.FindByMoodOverlap(ctx, tags, excludeIDs, limit)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 && policy != FallbackError {
		return m.fallback(ctx, excludeIDs, limit, policy)
	}
	return movies, nil
}

func (m *Matcher) fallback(ctx context.Context, excludeIDs []int64, limit int, policy FallbackPolicy) ([]Movie, error) {
	if policy == FallbackPopular && m.popular != nil {
		movies, err := m.popular.Popular(ctx, limit)
		if err == nil && len(movies) > 0 {
			return movies, nil
		}
		// Popular cache empty or failed, degrade to random.
	}
	return m.finder.FindRandom(ctx, excludeIDs, limit)
}
