package factory

import (
	"fmt"
	"net/http"
	"time"

	"cinemotion-be/pkg/llm"
	"cinemotion-be/pkg/llm/clova"
	"cinemotion-be/pkg/llm/openai"
)

// NewLLMProvider builds a provider from config values.
// timeout == 0 keeps the client untimed (platform-level I/O timeouts apply).
func NewLLMProvider(providerType, modelName, baseURL, apiKey string, timeout time.Duration) (llm.LLMProvider, error) {
	client := &http.Client{Timeout: timeout}

	switch providerType {
	case "clova", "":
		if modelName == "" {
			modelName = "HCX-DASH-001" // Default
		}
		return clova.NewClovaProvider(apiKey, baseURL, modelName, client), nil
	case "openai":
		return openai.NewOpenAIProvider(apiKey, baseURL, modelName, client), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
