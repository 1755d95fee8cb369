package config

import "fmt"

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

type Config struct {
	Whisper    WhisperConfig    `yaml:"whisper"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Paths      PathsConfig      `yaml:"paths"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type WhisperConfig struct {
	BinaryPath   string `yaml:"binary_path"`
	ModelPath    string `yaml:"model_path"`
	Language     string `yaml:"language"`
	Threads      int    `yaml:"threads"`
	ChunkSeconds int    `yaml:"chunk_seconds"`
}

type SummarizerConfig struct {
	Provider       string  `yaml:"provider"`
	Model          string  `yaml:"model"`
	MaxTokens      int     `yaml:"max_tokens"`
	Temperature    float64 `yaml:"temperature"`
	ChunkChars     int     `yaml:"chunk_chars"`
	ChunkOverlap   int     `yaml:"chunk_overlap"`
	MaxAttempts    int     `yaml:"max_attempts"`
	BackoffSeconds int     `yaml:"backoff_seconds"`
	ExportDocx     bool    `yaml:"export_docx"`
}

type PathsConfig struct {
	Videos      string `yaml:"videos"`
	Transcripts string `yaml:"transcripts"`
	Summaries   string `yaml:"summaries"`
	TempAudio   string `yaml:"temp_audio"`
}

type PipelineConfig struct {
	Watch            bool     `yaml:"watch"`
	ReuseTranscripts bool     `yaml:"reuse_transcripts"`
	Extensions       []string `yaml:"extensions"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) Validate() error {
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}

	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Whisper.ChunkSeconds == 0 {
		c.Whisper.ChunkSeconds = 600
	}

	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = ProviderGroq
	}
	switch c.Summarizer.Provider {
	case ProviderGroq:
		if c.Summarizer.Model == "" {
			c.Summarizer.Model = "llama3-70b-8192"
		}
	case ProviderGemini:
		if c.Summarizer.Model == "" {
			c.Summarizer.Model = "gemini-2.5-flash"
		}
	default:
		return fmt.Errorf("summarizer.provider must be %q or %q, got %q",
			ProviderGroq, ProviderGemini, c.Summarizer.Provider)
	}
	if c.Summarizer.MaxTokens == 0 {
		c.Summarizer.MaxTokens = 500
	}
	if c.Summarizer.Temperature == 0 {
		c.Summarizer.Temperature = 0.7
	}
	if c.Summarizer.ChunkChars == 0 {
		c.Summarizer.ChunkChars = 10000
	}
	if c.Summarizer.ChunkOverlap == 0 {
		c.Summarizer.ChunkOverlap = 500
	}
	if c.Summarizer.ChunkOverlap >= c.Summarizer.ChunkChars {
		return fmt.Errorf("summarizer.chunk_overlap must be smaller than chunk_chars")
	}
	if c.Summarizer.MaxAttempts == 0 {
		c.Summarizer.MaxAttempts = 3
	}
	if c.Summarizer.BackoffSeconds == 0 {
		c.Summarizer.BackoffSeconds = 15
	}

	if c.Paths.Videos == "" {
		c.Paths.Videos = "Meetings"
	}
	if c.Paths.Transcripts == "" {
		c.Paths.Transcripts = "transcripts"
	}
	if c.Paths.Summaries == "" {
		c.Paths.Summaries = "summaries"
	}
	if c.Paths.TempAudio == "" {
		c.Paths.TempAudio = "temp_audio"
	}

	if len(c.Pipeline.Extensions) == 0 {
		c.Pipeline.Extensions = []string{".mp4", ".mov", ".avi", ".mkv", ".wmv", ".flv"}
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
