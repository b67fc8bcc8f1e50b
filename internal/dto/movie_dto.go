package dto

// FetchMoviesRequest carries the catalog browse filters, parsed from
// query parameters.
type FetchMoviesRequest struct {
	Search    string   `query:"search"`
	YearMin   int      `query:"year_min"`
	YearMax   int      `query:"year_max"`
	RatingMin float64  `query:"rating_min"`
	Genres    []string `query:"genres"`
	Regions   []string `query:"regions"`
	Sort      string   `query:"sort" validate:"omitempty,oneof=newest rating alpha"`
	Page      int      `query:"page"`
}

type MovieResponse struct {
	Id          int64    `json:"id"`
	Title       string   `json:"title"`
	Year        int      `json:"year"`
	Genre       []string `json:"genre"`
	Country     string   `json:"country"`
	Overview    string   `json:"movie_overview"`
	YoutubeLink string   `json:"youtube_link,omitempty"`
	PosterURL   string   `json:"poster_url"`
	Rating      float64  `json:"rating"`
	Mood        []string `json:"mood"`
}
