package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultClovaEmbeddingURL = "https://clovastudio.stream.ntruss.com/v1/api-tools/embedding/v2/"

// ClovaProvider generates embeddings via the Clova Studio embedding-v2 API.
type ClovaProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type embeddingRequest struct {
	Text string `json:"text"`
}

type embeddingResponse struct {
	Status struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
	Result struct {
		Embedding []float32 `json:"embedding"`
	} `json:"result"`
}

func NewClovaProvider(apiKey, baseURL string, client *http.Client) *ClovaProvider {
	if baseURL == "" {
		baseURL = defaultClovaEmbeddingURL
	}
	if client == nil {
		client = &http.Client{}
	}
	return &ClovaProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
	}
}

func (p *ClovaProvider) Generate(ctx context.Context, text string) ([]float32, error) {
	jsonData, err := json.Marshal(embeddingRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.apiKey))

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("clova embedding api error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var embResp embeddingResponse
	if err := json.Unmarshal(bodyBytes, &embResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if embResp.Status.Code != "" && embResp.Status.Code != "20000" {
		return nil, fmt.Errorf("clova embedding api returned error %s: %s", embResp.Status.Code, embResp.Status.Message)
	}

	if len(embResp.Result.Embedding) == 0 {
		return nil, fmt.Errorf("no embedding in response")
	}

	return embResp.Result.Embedding, nil
}
