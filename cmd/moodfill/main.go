package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"cinemotion-be/internal/config"
	"cinemotion-be/internal/dto"
	"cinemotion-be/internal/entity"
	"cinemotion-be/internal/repository/specification"
	"cinemotion-be/internal/repository/unitofwork"
	"cinemotion-be/internal/service"
	"cinemotion-be/pkg/database"
	"cinemotion-be/pkg/embedding"
	"cinemotion-be/pkg/llm"
	"cinemotion-be/pkg/llm/factory"
	"cinemotion-be/pkg/mood"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/fatih/color"
)

const (
	batchSize    = 200
	sleepBetween = 8 * time.Second
	maxRetries   = 5
	quotaBackoff = 20 * time.Second
	busyBackoff  = 10 * time.Second
	overviewCap  = 500
	drainWait    = 5 * time.Second
)

func movieInfo(m *entity.Movie) string {
	overview := m.Overview
	if len(overview) > overviewCap {
		overview = overview[:overviewCap]
	}
	genres := ""
	for i, g := range m.Genre {
		if i > 0 {
			genres += ", "
		}
		genres += g
	}
	return fmt.Sprintf("Title: %s\nGenres: %s\nDescription: %s", m.Title, genres, overview)
}

// classifyWithRetry retries quota (429) and overload (503) signals with
// fixed backoffs; anything else fails the movie immediately.
func classifyWithRetry(ctx context.Context, classifier *mood.Classifier, m *entity.Movie) ([]mood.Tag, error) {
	info := movieInfo(m)

	for attempt := 0; ; attempt++ {
		classification, err := classifier.Classify(ctx, mood.ModeSingle, info)
		if err == nil {
			return classification.QueryTags(), nil
		}

		var httpErr *llm.HTTPError
		if errors.As(err, &httpErr) && attempt < maxRetries {
			switch httpErr.StatusCode {
			case 429:
				color.Yellow("⏳ Quota exceeded. Retry %d/%d after %s...", attempt+1, maxRetries, quotaBackoff)
				time.Sleep(quotaBackoff)
				continue
			case 503:
				color.Yellow("⏳ Server overloaded. Retry %d/%d after %s...", attempt+1, maxRetries, busyBackoff)
				time.Sleep(busyBackoff)
				continue
			}
		}
		return nil, err
	}
}

func main() {
	color.Cyan("🚀 Start filling movie moods...")

	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		color.Red("Unable to connect to DB: %v", err)
		os.Exit(1)
	}
	uowFactory := unitofwork.NewRepositoryFactory(db)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMBaseURL,
		cfg.Keys.Clova,
		time.Duration(cfg.Ai.LLMTimeoutSeconds)*time.Second,
	)
	if err != nil {
		color.Red("Failed to initialize LLM provider: %v", err)
		os.Exit(1)
	}
	classifier := mood.NewClassifier(llmProvider)

	// In-process embedding pipeline: tagged movies are re-embedded so
	// character match sees fresh documents.
	ctx := context.Background()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	embeddingProvider := embedding.NewClovaProvider(cfg.Keys.Clova, cfg.Ai.EmbeddingBaseURL, nil)
	consumer := service.NewConsumerService(pubSub, cfg.Mood.EmbedTopic, uowFactory, embeddingProvider)
	if err := consumer.Consume(ctx); err != nil {
		color.Red("Failed to start embedding consumer: %v", err)
		os.Exit(1)
	}
	publisher := service.NewPublisherService(cfg.Mood.EmbedTopic, pubSub)

	for {
		uow := uowFactory.NewUnitOfWork(ctx)
		movies, err := uow.MovieRepository().FindAll(ctx,
			specification.MoodMissing{},
			specification.Limit{N: batchSize},
		)
		if err != nil {
			color.Red("Error fetching movies: %v", err)
			os.Exit(1)
		}

		if len(movies) == 0 {
			color.Green("🎉 Done! No more movies without mood.")
			break
		}

		color.Cyan("🔹 Found %d movies without mood. Processing...", len(movies))

		for _, m := range movies {
			fmt.Printf("\n--- Movie ID: %d | Title: %s\n", m.Id, m.Title)

			tags, err := classifyWithRetry(ctx, classifier, m)
			if err != nil || len(tags) == 0 {
				color.Yellow("⚠️ Skip movie %d (no mood returned): %v", m.Id, err)
				continue
			}

			if err := uow.MovieRepository().UpdateMood(ctx, m.Id, mood.Strings(tags)); err != nil {
				color.Red("Failed to update mood for movie %d: %v", m.Id, err)
				continue
			}
			color.Green("✅ Updated movie %d with mood %v", m.Id, mood.Strings(tags))

			payload, _ := json.Marshal(dto.EmbedMovieMessage{MovieId: m.Id})
			if err := publisher.Publish(ctx, payload); err != nil {
				color.Yellow("⚠️ Failed to queue embedding for movie %d: %v", m.Id, err)
			}

			time.Sleep(sleepBetween)
		}
	}

	// Let the in-process consumer drain queued embeddings.
	time.Sleep(drainWait)
	color.Green("✅ Pipeline finished.")
}
