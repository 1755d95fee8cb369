package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/meetingtools/meeting-scribe/internal/logger"
)

// GeminiClient calls the Gemini API, rotating through the supplied API keys
// on quota errors.
type GeminiClient struct {
	apiKeys     []string
	currentKey  int
	model       string
	temperature float64
	logger      logger.Logger
}

func NewGeminiClient(apiKeys []string, model string, temperature float64, log logger.Logger) *GeminiClient {
	return &GeminiClient{
		apiKeys:     apiKeys,
		model:       model,
		temperature: temperature,
		logger:      log,
	}
}

func (c *GeminiClient) Complete(ctx context.Context, system, prompt string, maxTokens int) (string, error) {
	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		key := c.apiKeys[c.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey()
			continue
		}

		cfg := &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			MaxOutputTokens:   int32(maxTokens),
			Temperature:       genai.Ptr(float32(c.temperature)),
		}

		result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				c.logger.Warn(ctx, "Key %d rate limited, rotating...", c.currentKey+1)
				c.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (c *GeminiClient) rotateKey() {
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
}
