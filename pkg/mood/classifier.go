package mood

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cinemotion-be/pkg/llm"
)

// Classification is the validated result of one classifier call.
// Request-scoped; never persisted.
type Classification struct {
	MoodTags   []Tag
	Top3       []Tag
	Confidence float64
}

// Classifier turns free mood text into a Classification via one
// chat-completion call. No retry, caching, or rate-limit handling lives
// here; that is the caller's policy.
type Classifier struct {
	provider llm.LLMProvider
}

func NewClassifier(provider llm.LLMProvider) *Classifier {
	return &Classifier{provider: provider}
}

// classifyPayload mirrors the strict-JSON contract of the classification
// prompts. Pointers distinguish absent fields from zero values.
type classifyPayload struct {
	MoodTags   []string `json:"mood_tags"`
	Top3       []string `json:"top_3"`
	Confidence *float64 `json:"confidence"`
}

// Classify issues one classification call. Empty or whitespace-only text
// is rejected before the network call.
func (c *Classifier) Classify(ctx context.Context, mode Mode, text string) (*Classification, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Reason: "mood text is required"}
	}

	system, user := BuildClassifyPrompt(mode, text)
	content, err := c.provider.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		llm.WithTemperature(0.3),
		llm.WithMaxTokens(256),
		llm.WithTopP(0.8),
	)
	if err != nil {
		if errors.Is(err, llm.ErrEmptyContent) {
			return nil, ErrEmptyResponse
		}
		return nil, &ProviderError{Op: "classify", Err: err}
	}

	var payload classifyPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, &MalformedResponseError{Reason: "content is not valid JSON", Err: err}
	}

	return validateClassification(&payload)
}

func validateClassification(p *classifyPayload) (*Classification, error) {
	if p.Confidence == nil {
		return nil, &MalformedResponseError{Reason: "missing confidence"}
	}
	if p.MoodTags == nil {
		return nil, &MalformedResponseError{Reason: "missing mood_tags"}
	}

	moodTags := make([]Tag, 0, len(p.MoodTags))
	seen := make(map[Tag]struct{}, len(p.MoodTags))
	for _, raw := range p.MoodTags {
		t := Tag(raw)
		if !ValidTag(t) {
			return nil, &MalformedResponseError{Reason: fmt.Sprintf("mood tag %q is outside the vocabulary", raw)}
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		moodTags = append(moodTags, t)
	}

	if len(p.Top3) > 3 {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("top_3 has %d entries", len(p.Top3))}
	}
	top3 := make([]Tag, 0, len(p.Top3))
	for _, raw := range p.Top3 {
		t := Tag(raw)
		if _, ok := seen[t]; !ok {
			return nil, &MalformedResponseError{Reason: fmt.Sprintf("top_3 tag %q is not among mood_tags", raw)}
		}
		top3 = append(top3, t)
	}

	return &Classification{
		MoodTags:   moodTags,
		Top3:       top3,
		Confidence: *p.Confidence,
	}, nil
}

// QueryTags returns the tag set a catalog query should use: top_3 when
// present, the full mood_tags otherwise.
func (c *Classification) QueryTags() []Tag {
	if len(c.Top3) > 0 {
		return c.Top3
	}
	return c.MoodTags
}
