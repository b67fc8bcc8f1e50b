package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
	Mood     MoodConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	Clova  string
	OpenAI string
	Tmdb   string
}

type AIConfig struct {
	LLMProvider       string // "clova" or "openai"
	LLMModel          string // e.g. "HCX-DASH-001"
	LLMBaseURL        string
	LLMTimeoutSeconds int // 0 means no client timeout
	EmbeddingBaseURL  string
}

type MoodConfig struct {
	ScorerConcurrency int
	EmbedTopic        string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			Clova:  getEnv("CLOVA_API_KEY", ""),
			OpenAI: getEnv("OPENAI_API_KEY", ""),
			Tmdb:   getEnv("TMDB_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:       getEnv("LLM_PROVIDER", "clova"),
			LLMModel:          getEnv("LLM_MODEL", "HCX-DASH-001"),
			LLMBaseURL:        getEnv("LLM_BASE_URL", "https://clovastudio.stream.ntruss.com/testapp/v1"),
			LLMTimeoutSeconds: getEnvAsInt("LLM_TIMEOUT_SECONDS", 0),
			EmbeddingBaseURL:  getEnv("EMBEDDING_BASE_URL", ""),
		},
		Mood: MoodConfig{
			ScorerConcurrency: getEnvAsInt("MOOD_SCORER_CONCURRENCY", 1),
			EmbedTopic:        getEnv("EMBED_MOVIE_CONTENT_TOPIC_NAME", "EMBED_MOVIE_CONTENT"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
