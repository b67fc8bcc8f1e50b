package specification

import (
	"cinemotion-be/internal/model"

	"gorm.io/gorm"
)

// MoodOverlaps selects movies whose mood tag set intersects the given
// tags, via the Postgres array-overlap operator.
type MoodOverlaps struct {
	Moods []string
}

func (s MoodOverlaps) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("mood && ?::text[]", model.StringArray(s.Moods))
}

// GenreOverlaps selects movies whose genre array intersects the given set.
type GenreOverlaps struct {
	Genres []string
}

func (s GenreOverlaps) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("genre && ?::text[]", model.StringArray(s.Genres))
}

// ExcludeIDs removes already-seen movies. A nil/empty set is a no-op.
type ExcludeIDs struct {
	IDs []int64
}

func (s ExcludeIDs) Apply(db *gorm.DB) *gorm.DB {
	if len(s.IDs) == 0 {
		return db
	}
	return db.Where("id NOT IN ?", s.IDs)
}

// TitleLike is a case-insensitive substring search on the title.
type TitleLike struct {
	Search string
}

func (s TitleLike) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title ILIKE ?", "%"+s.Search+"%")
}

type YearMin struct {
	Year int
}

func (s YearMin) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("year >= ?", s.Year)
}

type YearMax struct {
	Year int
}

func (s YearMax) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("year <= ?", s.Year)
}

type RatingMin struct {
	Rating float64
}

func (s RatingMin) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("rating >= ?", s.Rating)
}

// ByCountryIn filters by region/country names.
type ByCountryIn struct {
	Countries []string
}

func (s ByCountryIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("country IN ?", s.Countries)
}

// OrderByRating sorts rating descending with id ascending as the stable,
// documented tie-break — the same tag overlap query must always return
// the same order.
type OrderByRating struct{}

func (s OrderByRating) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("rating DESC").Order("id ASC")
}

// OrderByNewest sorts by release year descending, id ascending tie-break.
type OrderByNewest struct{}

func (s OrderByNewest) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("year DESC").Order("id ASC")
}

// OrderByTitle sorts alphabetically.
type OrderByTitle struct{}

func (s OrderByTitle) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("title ASC").Order("id ASC")
}

// MoodMissing selects rows the batch mood-fill has not tagged yet.
type MoodMissing struct{}

func (s MoodMissing) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("mood IS NULL OR cardinality(mood) = 0")
}
