package clova

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"cinemotion-be/pkg/llm"
)

const defaultBaseURL = "https://clovastudio.stream.ntruss.com/testapp/v1"

// ClovaProvider talks to the Naver Clova Studio chat-completions API.
type ClovaProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// Request Payload Structure (Clova Studio)
type chatRequest struct {
	Messages         []llm.Message `json:"messages"`
	TopP             float64       `json:"topP"`
	TopK             int           `json:"topK"`
	MaxTokens        int           `json:"maxTokens"`
	Temperature      float64       `json:"temperature"`
	RepeatPenalty    float64       `json:"repeatPenalty"`
	IncludeAiFilters bool          `json:"includeAiFilters"`
	Seed             int           `json:"seed"`
}

type chatResponse struct {
	Status struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
	Result struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"result"`
}

func NewClovaProvider(apiKey, baseURL, model string, client *http.Client) *ClovaProvider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = &http.Client{}
	}
	return &ClovaProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  client,
	}
}

func (p *ClovaProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	opts := &llm.Options{
		Model:       p.model,
		MaxTokens:   256,
		Temperature: 0.3,
		TopP:        0.8,
	}
	for _, o := range options {
		o(opts)
	}

	reqBody := chatRequest{
		Messages:         history,
		TopP:             opts.TopP,
		TopK:             0,
		MaxTokens:        opts.MaxTokens,
		Temperature:      opts.Temperature,
		RepeatPenalty:    5.0,
		IncludeAiFilters: true,
		Seed:             0,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/chat-completions/%s", p.baseURL, opts.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.apiKey))

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", &llm.HTTPError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	// Clova signals application errors inside a 200 envelope.
	if chatResp.Status.Code != "" && chatResp.Status.Code != "20000" {
		return "", fmt.Errorf("clova api returned error %s: %s", chatResp.Status.Code, chatResp.Status.Message)
	}

	if chatResp.Result.Message.Content == "" {
		return "", llm.ErrEmptyContent
	}

	return chatResp.Result.Message.Content, nil
}

func (p *ClovaProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	messages := []llm.Message{
		{Role: "user", Content: prompt},
	}
	return p.Chat(ctx, messages, options...)
}
