package mood

import (
	"context"
	"encoding/json"
	"fmt"

	"cinemotion-be/pkg/llm"
)

// ScoreKind selects which scoring prompt is used.
type ScoreKind int

const (
	ScoreMovie ScoreKind = iota + 1
	ScoreCharacter
)

// Relevance is one per-(movie, mood-context) scoring result. Ephemeral;
// attached to a response payload only.
type Relevance struct {
	MatchScore      float64 `json:"match_score"`
	Reason          string  `json:"reason"`
	Confidence      float64 `json:"confidence"`
	CharacterName   string  `json:"character_name,omitempty"`
	CharacterTraits string  `json:"character_traits,omitempty"`
}

// Scored pairs a candidate movie with its score. Relevance is nil when
// the scoring call for that movie failed; such movies are excluded from
// merged output, never reported as score zero.
type Scored struct {
	Movie     Movie
	Relevance *Relevance
}

// Scorer requests one relevance score per candidate movie. Calls fan out
// with bounded concurrency; output order always matches input order.
type Scorer struct {
	provider    llm.LLMProvider
	concurrency int
}

func NewScorer(provider llm.LLMProvider, concurrency int) *Scorer {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Scorer{provider: provider, concurrency: concurrency}
}

type relevancePayload struct {
	MatchScore      *float64 `json:"match_score"`
	Reason          string   `json:"reason"`
	Confidence      *float64 `json:"confidence"`
	CharacterName   string   `json:"character_name"`
	CharacterTraits string   `json:"character_traits"`
}

// Score evaluates every movie against the mood context. A failure for one
// movie degrades that movie's score to absent without aborting the batch.
func (s *Scorer) Score(ctx context.Context, kind ScoreKind, moodContext string, movies []Movie) []Scored {
	results := make([]Scored, len(movies))
	sem := make(chan struct{}, s.concurrency)
	done := make(chan struct{})

	for i, movie := range movies {
		sem <- struct{}{}
		go func(idx int, m Movie) {
			defer func() {
				<-sem
				done <- struct{}{}
			}()
			rel, err := s.scoreOne(ctx, kind, moodContext, m)
			if err != nil {
				rel = nil
			}
			results[idx] = Scored{Movie: m, Relevance: rel}
		}(i, movie)
	}
	for range movies {
		<-done
	}
	return results
}

func (s *Scorer) scoreOne(ctx context.Context, kind ScoreKind, moodContext string, movie Movie) (*Relevance, error) {
	system := systemPromptScoreMovie
	label := "Thông tin phim"
	if kind == ScoreCharacter {
		system = systemPromptScoreCharacter
		label = "Thông tin nhân vật"
	}

	snapshot, err := json.Marshal(movie)
	if err != nil {
		return nil, err
	}
	user := fmt.Sprintf("%s\n\n---\n%s:\n%s", moodContext, label, snapshot)

	content, err := s.provider.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		llm.WithTemperature(0.3),
		llm.WithMaxTokens(256),
		llm.WithTopP(0.8),
	)
	if err != nil {
		return nil, &ProviderError{Op: "score", Err: err}
	}

	var payload relevancePayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, &MalformedResponseError{Reason: "score content is not valid JSON", Err: err}
	}
	if payload.MatchScore == nil {
		return nil, &MalformedResponseError{Reason: "missing match_score"}
	}

	rel := &Relevance{
		MatchScore:      *payload.MatchScore,
		Reason:          payload.Reason,
		CharacterName:   payload.CharacterName,
		CharacterTraits: payload.CharacterTraits,
	}
	if payload.Confidence != nil {
		rel.Confidence = *payload.Confidence
	}
	return rel, nil
}

// MergeScored keeps only movies that actually received a score, order
// preserved.
func MergeScored(scored []Scored) []Scored {
	out := make([]Scored, 0, len(scored))
	for _, s := range scored {
		if s.Relevance != nil {
			out = append(out, s)
		}
	}
	return out
}
