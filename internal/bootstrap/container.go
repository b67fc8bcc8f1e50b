package bootstrap

import (
	"context"
	"log"
	"time"

	"cinemotion-be/internal/config"
	"cinemotion-be/internal/controller"
	"cinemotion-be/internal/pkg/logger"
	"cinemotion-be/internal/repository/memory"
	"cinemotion-be/internal/repository/unitofwork"
	"cinemotion-be/internal/service"
	"cinemotion-be/pkg/embedding"
	"cinemotion-be/pkg/llm/factory"
	"cinemotion-be/pkg/mood"
	"cinemotion-be/pkg/store"

	pktNats "cinemotion-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController           controller.IAuthController
	UserController           controller.IUserController
	MovieController          controller.IMovieController
	RecommendationController controller.IRecommendationController
	MoodController           controller.IMoodController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Shared Facades
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	llmTimeout := time.Duration(cfg.Ai.LLMTimeoutSeconds) * time.Second
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMBaseURL,
		apiKeyFor(cfg),
		llmTimeout,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	embeddingProvider := embedding.NewClovaProvider(cfg.Keys.Clova, cfg.Ai.EmbeddingBaseURL, nil)

	// 3.5 Infrastructure
	// NATS (best effort; a missing broker only disables events)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	savedStore := store.NewSavedMovieStore(rdb)

	// 4. Mood Pipeline
	finder := service.NewCatalogFinder(uowFactory)
	popularCache := memory.NewPopularCache(service.PopularLoader(uowFactory))
	classifier := mood.NewClassifier(llmProvider)
	matcher := mood.NewMatcher(finder, popularCache)
	scorer := mood.NewScorer(llmProvider, cfg.Mood.ScorerConcurrency)

	// 5. Services
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Mood.EmbedTopic,
		uowFactory,
		embeddingProvider,
	)

	authService := service.NewAuthService(uowFactory, natsPub)
	userService := service.NewUserService(uowFactory, savedStore, natsPub)
	movieService := service.NewMovieService(uowFactory)
	recommendationService := service.NewRecommendationService(uowFactory, matcher)
	moodService := service.NewMoodService(classifier, matcher, scorer, embeddingProvider, uowFactory)

	// 6. Controllers
	return &Container{
		AuthController:           controller.NewAuthController(authService),
		UserController:           controller.NewUserController(userService),
		MovieController:          controller.NewMovieController(movieService),
		RecommendationController: controller.NewRecommendationController(recommendationService),
		MoodController:           controller.NewMoodController(moodService),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}

func apiKeyFor(cfg *config.Config) string {
	if cfg.Ai.LLMProvider == "openai" {
		return cfg.Keys.OpenAI
	}
	return cfg.Keys.Clova
}
