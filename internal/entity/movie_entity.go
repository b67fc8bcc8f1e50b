package entity

import "time"

type Movie struct {
	Id          int64
	Title       string
	Genre       []string
	Country     string
	Year        int
	Overview    string
	YoutubeLink string
	PosterURL   string
	Rating      float64
	Mood        []string
	CreatedAt   time.Time
}
