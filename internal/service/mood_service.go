package service

import (
	"context"

	"cinemotion-be/internal/dto"
	"cinemotion-be/internal/repository/specification"
	"cinemotion-be/internal/repository/unitofwork"
	"cinemotion-be/pkg/embedding"
	"cinemotion-be/pkg/mood"
)

const (
	journeyLimit        = 3
	partyLimit          = 2
	characterCandidates = 10
)

type IMoodService interface {
	AnalyzeEmotionalJourney(ctx context.Context, req *dto.AnalyzeEmotionalJourneyRequest) (*dto.JourneyResponse, error)
	AnalyzePartyMood(ctx context.Context, req *dto.AnalyzePartyMoodRequest) (*dto.PartyMoodResponse, error)
	AnalyzeCharacterMatch(ctx context.Context, req *dto.AnalyzeCharacterMatchRequest) (*dto.CharacterMatchResponse, error)
}

type moodService struct {
	classifier *mood.Classifier
	matcher    *mood.Matcher
	scorer     *mood.Scorer
	embedder   embedding.EmbeddingProvider
	uowFactory unitofwork.RepositoryFactory
}

func NewMoodService(
	classifier *mood.Classifier,
	matcher *mood.Matcher,
	scorer *mood.Scorer,
	embedder embedding.EmbeddingProvider,
	uowFactory unitofwork.RepositoryFactory,
) IMoodService {
	return &moodService{
		classifier: classifier,
		matcher:    matcher,
		scorer:     scorer,
		embedder:   embedder,
		uowFactory: uowFactory,
	}
}

// AnalyzeEmotionalJourney classifies the mood text, queries the catalog
// by the top tags, and maps the ordered result onto release/reflect/
// rebuild roles.
func (s *moodService) AnalyzeEmotionalJourney(ctx context.Context, req *dto.AnalyzeEmotionalJourneyRequest) (*dto.JourneyResponse, error) {
	classification, err := s.classifier.Classify(ctx, mood.ModeSingle, req.MoodText)
	if err != nil {
		return nil, err
	}

	movies, err := s.matcher.Match(ctx, classification.QueryTags(), nil, journeyLimit, mood.FallbackError)
	if err != nil {
		return nil, err
	}

	journey := mood.AssembleJourney(movies)
	return &dto.JourneyResponse{
		Release: toJourneyMovie(journey.Release),
		Reflect: toJourneyMovie(journey.Reflect),
		Rebuild: toJourneyMovie(journey.Rebuild),
	}, nil
}

// AnalyzePartyMood merges 2-4 members into one composite text, classifies
// it, matches the catalog, and scores each candidate against the group
// context. Movies whose scoring call failed are dropped from the output.
func (s *moodService) AnalyzePartyMood(ctx context.Context, req *dto.AnalyzePartyMoodRequest) (*dto.PartyMoodResponse, error) {
	if len(req.Members) < mood.MinPartyMembers || len(req.Members) > mood.MaxPartyMembers {
		return nil, &mood.ValidationError{Reason: "party requires 2-4 members"}
	}

	members := make([]mood.PartyMember, 0, len(req.Members))
	for _, m := range req.Members {
		members = append(members, mood.PartyMember{Name: m.Name, Mood: m.Mood, MoodText: m.MoodText})
	}
	partyText := mood.RenderPartyText(members)

	classification, err := s.classifier.Classify(ctx, mood.ModeParty, partyText)
	if err != nil {
		return nil, err
	}

	movies, err := s.matcher.Match(ctx, classification.QueryTags(), nil, partyLimit, mood.FallbackError)
	if err != nil {
		return nil, err
	}

	scored := s.scorer.Score(ctx, mood.ScoreMovie, partyText, movies)
	merged := mood.MergeScored(scored)

	recs := make([]dto.PartyRecommendation, 0, len(merged))
	for _, sc := range merged {
		recs = append(recs, dto.PartyRecommendation{
			JourneyMovie: *toJourneyMovie(&sc.Movie),
			Analysis: &dto.MovieAnalysis{
				MatchScore: sc.Relevance.MatchScore,
				Reason:     sc.Relevance.Reason,
				Confidence: sc.Relevance.Confidence,
			},
		})
	}
	return &dto.PartyMoodResponse{Recommendations: recs}, nil
}

// AnalyzeCharacterMatch embeds the mood text, finds the closest movies by
// vector similarity, scores their main characters against the text, and
// returns the single best match with catalog details.
func (s *moodService) AnalyzeCharacterMatch(ctx context.Context, req *dto.AnalyzeCharacterMatchRequest) (*dto.CharacterMatchResponse, error) {
	vector, err := s.embedder.Generate(ctx, req.MoodText)
	if err != nil {
		return nil, &mood.ProviderError{Op: "embed", Err: err}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	candidates, err := uow.MovieEmbeddingRepository().SearchSimilar(ctx, vector, characterCandidates)
	if err != nil {
		return nil, err
	}

	scored := s.scorer.Score(ctx, mood.ScoreCharacter, req.MoodText, toMoodMovies(candidates))
	best, err := mood.BestCharacterMatch(scored)
	if err != nil {
		return nil, err
	}

	resp := &dto.CharacterMatchResponse{
		MovieId: best.Movie.ID,
		AiScore: dto.CharacterAnalysis{
			MatchScore:      best.Relevance.MatchScore,
			CharacterName:   best.Relevance.CharacterName,
			CharacterTraits: best.Relevance.CharacterTraits,
			Reason:          best.Relevance.Reason,
			Confidence:      best.Relevance.Confidence,
		},
	}

	// Catalog details are best effort; the match itself already stands.
	movie, err := uow.MovieRepository().FindOne(ctx, specification.ByID{ID: best.Movie.ID})
	if err == nil && movie != nil {
		resp.Movie = &dto.CharacterMovie{
			Title:     movie.Title,
			Year:      movie.Year,
			PosterURL: movie.PosterURL,
			Rating:    movie.Rating,
			Mood:      movie.Mood,
		}
	}
	return resp, nil
}

func toJourneyMovie(m *mood.Movie) *dto.JourneyMovie {
	if m == nil {
		return nil
	}
	return &dto.JourneyMovie{
		Id:        m.ID,
		Title:     m.Title,
		Year:      m.Year,
		Genre:     m.Genre,
		PosterURL: m.PosterURL,
		Overview:  m.Overview,
		Rating:    m.Rating,
		Mood:      mood.Strings(m.Mood),
	}
}
