package summarizer

import (
	"fmt"
	"strings"
	"time"

	"github.com/meetingtools/meeting-scribe/internal/config"
	"github.com/meetingtools/meeting-scribe/internal/logger"
)

type implSummarizer struct {
	provider     Provider
	logger       logger.Logger
	chunkChars   int
	chunkOverlap int
	maxTokens    int
	maxAttempts  int
	backoff      time.Duration
}

// New creates a Summarizer over the given provider using the configured
// chunking and retry settings.
func New(cfg config.SummarizerConfig, provider Provider, log logger.Logger) Summarizer {
	return &implSummarizer{
		provider:     provider,
		logger:       log,
		chunkChars:   cfg.ChunkChars,
		chunkOverlap: cfg.ChunkOverlap,
		maxTokens:    cfg.MaxTokens,
		maxAttempts:  cfg.MaxAttempts,
		backoff:      time.Duration(cfg.BackoffSeconds) * time.Second,
	}
}

// NewProvider builds the completion backend named by the config. The apiKey
// comes from the environment; for Gemini it may hold several keys separated
// by commas, rotated on quota errors.
func NewProvider(cfg config.SummarizerConfig, apiKey string, log logger.Logger) (Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("missing API key for provider %q", cfg.Provider)
	}

	switch cfg.Provider {
	case config.ProviderGroq:
		return NewGroqClient(apiKey, cfg.Model, cfg.Temperature), nil
	case config.ProviderGemini:
		var keys []string
		for _, k := range strings.Split(apiKey, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		return NewGeminiClient(keys, cfg.Model, cfg.Temperature, log), nil
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Provider)
	}
}
