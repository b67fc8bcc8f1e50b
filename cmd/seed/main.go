package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"cinemotion-be/internal/config"
	"cinemotion-be/internal/entity"
	"cinemotion-be/internal/repository/unitofwork"
	"cinemotion-be/pkg/database"

	"github.com/fatih/color"
)

const (
	tmdbBaseURL   = "https://api.themoviedb.org/3"
	tmdbImageBase = "https://image.tmdb.org/t/p/w500"
	seedCount     = 10
	requestPacing = 250 * time.Millisecond
)

// TMDb genre ids mapped to Vietnamese names, matching the catalog's
// display language.
var genreMap = map[int]string{
	28:    "Hành động",
	12:    "Phiêu lưu",
	16:    "Hoạt hình",
	35:    "Hài",
	80:    "Hình sự",
	99:    "Tài liệu",
	18:    "Chính kịch",
	10751: "Gia đình",
	14:    "Giả tưởng",
	36:    "Lịch sử",
	27:    "Kinh dị",
	10402: "Âm nhạc",
	9648:  "Bí ẩn",
	10749: "Tình cảm",
	878:   "Khoa học viễn tưởng",
	10770: "Phim truyền hình",
	53:    "Gây cấn",
	10752: "Chiến tranh",
	37:    "Miền Tây",
}

var countryMap = map[string]string{
	"en": "Mỹ",
	"vi": "Việt Nam",
	"ko": "Hàn Quốc",
	"ja": "Nhật Bản",
	"zh": "Trung Quốc",
	"fr": "Pháp",
	"de": "Đức",
	"es": "Tây Ban Nha",
	"it": "Ý",
	"th": "Thái Lan",
	"hi": "Ấn Độ",
}

type tmdbMovie struct {
	Id               int    `json:"id"`
	Title            string `json:"title"`
	Overview         string `json:"overview"`
	GenreIds         []int  `json:"genre_ids"`
	PosterPath       string `json:"poster_path"`
	ReleaseDate      string `json:"release_date"`
	OriginalLanguage string `json:"original_language"`
}

type tmdbVideo struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
}

var httpClient = &http.Client{Timeout: 30 * time.Second}

func fetchPopularMovies(apiKey string) ([]tmdbMovie, error) {
	url := fmt.Sprintf("%s/movie/popular?api_key=%s&language=vi-VN&page=1", tmdbBaseURL, apiKey)
	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TMDb API error: %d", resp.StatusCode)
	}

	var payload struct {
		Results []tmdbMovie `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if len(payload.Results) > seedCount {
		payload.Results = payload.Results[:seedCount]
	}
	return payload.Results, nil
}

func fetchMovieTrailer(apiKey string, movieId int) string {
	url := fmt.Sprintf("%s/movie/%d/videos?api_key=%s", tmdbBaseURL, movieId, apiKey)
	resp, err := httpClient.Get(url)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var payload struct {
		Results []tmdbVideo `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ""
	}
	for _, v := range payload.Results {
		if v.Site == "YouTube" && v.Type == "Trailer" {
			return "https://www.youtube.com/watch?v=" + v.Key
		}
	}
	return ""
}

func mapGenreIds(ids []int) []string {
	genres := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := genreMap[id]; ok {
			genres = append(genres, name)
		} else {
			genres = append(genres, "Khác")
		}
	}
	return genres
}

func countryFromLanguage(language string) string {
	if name, ok := countryMap[language]; ok {
		return name
	}
	return "Khác"
}

func releaseYear(date string) int {
	parts := strings.SplitN(date, "-", 2)
	year, _ := strconv.Atoi(parts[0])
	return year
}

func main() {
	color.Cyan("🎬 Starting movie seed...\n")

	cfg := config.Load()
	if cfg.Keys.Tmdb == "" {
		color.Red("TMDb API key is missing. Set TMDB_API_KEY before running the seed.")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		color.Red("Unable to connect to DB: %v", err)
		os.Exit(1)
	}
	uowFactory := unitofwork.NewRepositoryFactory(db)

	color.Yellow("Fetching movies from TMDb...")
	movies, err := fetchPopularMovies(cfg.Keys.Tmdb)
	if err != nil {
		color.Red("Failed to fetch popular movies: %v", err)
		os.Exit(1)
	}
	color.Green("✓ Fetched %d movies\n", len(movies))

	ctx := context.Background()
	successCount := 0
	errorCount := 0

	for _, m := range movies {
		fmt.Printf("Processing: %s...\n", m.Title)

		overview := m.Overview
		if overview == "" {
			overview = "Chưa có mô tả"
		}
		posterURL := ""
		if m.PosterPath != "" {
			posterURL = tmdbImageBase + m.PosterPath
		}

		movie := &entity.Movie{
			Title:       m.Title,
			Genre:       mapGenreIds(m.GenreIds),
			Country:     countryFromLanguage(m.OriginalLanguage),
			Year:        releaseYear(m.ReleaseDate),
			Overview:    overview,
			YoutubeLink: fetchMovieTrailer(cfg.Keys.Tmdb, m.Id),
			PosterURL:   posterURL,
		}

		uow := uowFactory.NewUnitOfWork(ctx)
		if err := uow.MovieRepository().Create(ctx, movie); err != nil {
			color.Red("  ❌ Error: %v", err)
			errorCount++
		} else {
			color.Green("  ✓ Inserted successfully")
			successCount++
		}

		// Small delay to stay under TMDb rate limits.
		time.Sleep(requestPacing)
	}

	color.Cyan("\n📊 Seed Summary:")
	color.Green("✓ Success: %d", successCount)
	color.Red("❌ Errors: %d", errorCount)
	fmt.Printf("Total: %d\n", len(movies))
	color.Cyan("\n✨ Seed completed!")
}
