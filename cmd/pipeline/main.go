package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/meetingtools/meeting-scribe/internal/config"
	"github.com/meetingtools/meeting-scribe/internal/locator"
	"github.com/meetingtools/meeting-scribe/internal/logger"
	"github.com/meetingtools/meeting-scribe/internal/processor"
	"github.com/meetingtools/meeting-scribe/internal/summarizer"
	"github.com/meetingtools/meeting-scribe/internal/watcher"
	"github.com/meetingtools/meeting-scribe/internal/writer"
	"github.com/meetingtools/meeting-scribe/pkg/executor"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// A .env file is optional; the environment may set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Meeting Scribe pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Videos: %s", cfg.Paths.Videos)
	log.Info(ctx, "Transcripts: %s", cfg.Paths.Transcripts)
	log.Info(ctx, "Summaries: %s", cfg.Paths.Summaries)
	log.Info(ctx, "Summarizer: %s (%s)", cfg.Summarizer.Provider, cfg.Summarizer.Model)

	exec := executor.New()
	if err := checkTools(exec, cfg); err != nil {
		return err
	}

	if _, err := os.Stat(cfg.Paths.Videos); err != nil {
		return fmt.Errorf("video directory %s not accessible: %w", cfg.Paths.Videos, err)
	}
	if err := ensureDirectories(cfg); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	envVar := credentialVar(cfg.Summarizer.Provider)
	provider, err := summarizer.NewProvider(cfg.Summarizer, os.Getenv(envVar), log)
	if err != nil {
		return fmt.Errorf("summarizer setup: %w (set %s in the environment or a .env file)", err, envVar)
	}

	summ := summarizer.New(cfg.Summarizer, provider, log)
	w := writer.New(cfg.Paths.Transcripts, cfg.Paths.Summaries, log)
	proc := processor.New(cfg, exec, summ, w, log)
	loc := locator.New(cfg.Paths.Videos, cfg.Pipeline.Extensions)

	if err := runBatch(ctx, loc, proc, log); err != nil {
		return err
	}

	if cfg.Pipeline.Watch {
		return runWatch(ctx, cfg, loc, proc, log)
	}
	return nil
}

// runBatch processes every video currently in the directory, one at a time.
// Per-file failures are logged and counted; the run continues.
func runBatch(ctx context.Context, loc *locator.Locator, proc processor.Processor, log logger.Logger) error {
	start := time.Now()

	videos, err := loc.Videos()
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		log.Info(ctx, "No video files found")
		return nil
	}

	log.Info(ctx, "Processing %d video file(s)", len(videos))

	processed := 0
	failed := 0
	for i, video := range videos {
		log.Info(ctx, "[%d/%d] %s", i+1, len(videos), video)
		if err := proc.Process(ctx, video); err != nil {
			log.Error(ctx, "Failed to process %s: %v", video, err)
			failed++
			continue
		}
		processed++
	}

	log.Info(ctx, "========================================")
	log.Info(ctx, "Pipeline finished: %d found, %d processed, %d failed", len(videos), processed, failed)
	log.Info(ctx, "Total execution time: %s", time.Since(start).Round(time.Second))
	log.Info(ctx, "========================================")
	return nil
}

// runWatch keeps processing videos as they are dropped into the directory
// until SIGINT/SIGTERM.
func runWatch(ctx context.Context, cfg *config.Config, loc *locator.Locator, proc processor.Processor, log logger.Logger) error {
	w, err := watcher.New(cfg.Paths.Videos, loc.IsVideo, proc.Process, log)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watch mode ready. Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("watcher: %w", err)
	}

	cancel()
	log.Info(ctx, "Pipeline stopped")
	return nil
}

// checkTools verifies the external binaries before any work starts.
func checkTools(exec executor.Executor, cfg *config.Config) error {
	for _, tool := range []string{"ffmpeg", "ffprobe", cfg.Whisper.BinaryPath} {
		if err := exec.LookPath(tool); err != nil {
			return err
		}
	}
	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Videos,
		cfg.Paths.Transcripts,
		cfg.Paths.Summaries,
		cfg.Paths.TempAudio,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}

// credentialVar names the environment variable holding the API key for the
// configured provider.
func credentialVar(provider string) string {
	if provider == config.ProviderGemini {
		return "GEMINI_API_KEY"
	}
	return "GROQ_API_KEY"
}
