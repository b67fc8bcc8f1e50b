package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Locale           string    `json:"locale"`
	Region           string    `json:"region"`
	ComfortOnDefault bool      `json:"comfortOnDefault"`
	VibesPref        []string  `json:"vibesPref"`
}

type SaveMovieRequest struct {
	MovieId int64 `json:"movie_id" validate:"required"`
}

type SavedMoviesResponse struct {
	MovieIds []int64 `json:"movie_ids"`
}

// HistoryMovie is the catalog snippet joined onto a history row.
type HistoryMovie struct {
	Id        int64    `json:"id"`
	Title     string   `json:"title"`
	Year      int      `json:"year"`
	Genre     []string `json:"genre"`
	PosterURL string   `json:"poster_url"`
	Overview  string   `json:"movie_overview"`
}

type HistoryItemResponse struct {
	Id        int64         `json:"id"`
	MovieId   int64         `json:"movie_id"`
	WatchedAt time.Time     `json:"watched_at"`
	Movie     *HistoryMovie `json:"movies"`
}
