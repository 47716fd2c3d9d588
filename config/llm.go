package config

import (
	"context"
	"fmt"

	"github.com/yoockh/alumni-advisor/internal/providers/llm"
)

// InitLLM builds the completion provider selected by LLM_PROVIDER.
func InitLLM(ctx context.Context, c *Config) (llm.Provider, error) {
	switch c.LLMProvider {
	case LLMProviderVertex:
		p, err := llm.NewVertexGemini(ctx, c.VertexProject, c.VertexLocation, c.LLMModel)
		if err != nil {
			return nil, fmt.Errorf("vertex gemini init: %w", err)
		}
		return p, nil
	case LLMProviderGemini:
		p, err := llm.NewGeminiAPI(ctx, c.GeminiAPIKey, c.LLMModel)
		if err != nil {
			return nil, fmt.Errorf("gemini api init: %w", err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", c.LLMProvider)
	}
}
