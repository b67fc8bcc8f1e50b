package specification

import "gorm.io/gorm"

type ByMovieID struct {
	MovieID int64
}

func (s ByMovieID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("movie_id = ?", s.MovieID)
}

// OrderByWatched sorts history most-recent first.
type OrderByWatched struct{}

func (s OrderByWatched) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("watched_at DESC")
}
