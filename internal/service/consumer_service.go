package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"cinemotion-be/internal/dto"
	"cinemotion-be/internal/entity"
	"cinemotion-be/internal/repository/specification"
	"cinemotion-be/internal/repository/unitofwork"
	"cinemotion-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.EmbedMovieMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing movie embedding for MovieId: %d", payload.MovieId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	movie, err := uow.MovieRepository().FindOne(ctx, specification.ByID{ID: payload.MovieId})
	if err != nil {
		log.Printf("[ERROR] Failed to get movie %d: %v", payload.MovieId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if movie == nil {
		log.Printf("[ERROR] Movie not found: %d", payload.MovieId)
		msg.Ack() // Movie deleted? Ack.
		return
	}

	document := buildMovieDocument(movie)

	vector, err := cs.embeddingProvider.Generate(ctx, document)
	if err != nil {
		log.Printf("[ERROR] Failed to generate embedding for movie %d: %v", payload.MovieId, err)
		msg.Nack()
		return
	}

	embeddingEntity := &entity.MovieEmbedding{
		Id:             uuid.New(),
		MovieId:        movie.Id,
		Document:       document,
		EmbeddingValue: vector,
		CreatedAt:      time.Now(),
	}

	if err := uow.MovieEmbeddingRepository().Upsert(ctx, embeddingEntity); err != nil {
		log.Printf("[ERROR] Failed to upsert embedding for movie %d: %v", payload.MovieId, err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Movie embedding stored for MovieId: %d", payload.MovieId)
	msg.Ack()
}

func buildMovieDocument(movie *entity.Movie) string {
	return fmt.Sprintf(`Title: %s
Year: %d
Genre: %s
Country: %s
Mood: %s

%s`,
		movie.Title,
		movie.Year,
		strings.Join(movie.Genre, ", "),
		movie.Country,
		strings.Join(movie.Mood, ", "),
		movie.Overview,
	)
}
