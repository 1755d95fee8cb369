package processor

import (
	"github.com/meetingtools/meeting-scribe/internal/config"
	"github.com/meetingtools/meeting-scribe/internal/logger"
	"github.com/meetingtools/meeting-scribe/internal/summarizer"
	"github.com/meetingtools/meeting-scribe/internal/writer"
	"github.com/meetingtools/meeting-scribe/pkg/executor"
)

type implProcessor struct {
	cfg        *config.Config
	executor   executor.Executor
	summarizer summarizer.Summarizer
	writer     *writer.Writer
	logger     logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, summ summarizer.Summarizer, w *writer.Writer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		executor:   exec,
		summarizer: summ,
		writer:     w,
		logger:     log,
	}
}
