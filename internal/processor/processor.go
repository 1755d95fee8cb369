package processor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/meetingtools/meeting-scribe/internal/summarizer"
	"github.com/meetingtools/meeting-scribe/internal/writer"
)

// Process runs the pipeline for one meeting: audio extraction,
// transcription, summarization, persistence, temp cleanup.
// A summarization failure is logged but does not fail the meeting; the
// transcript is already persisted by then.
func (p *implProcessor) Process(ctx context.Context, videoPath string) error {
	startTime := time.Now()
	name := writer.MeetingName(videoPath)

	p.logger.Info(ctx, "Processing meeting: %s", videoPath)

	transcript, err := p.obtainTranscript(ctx, videoPath, name)
	if err != nil {
		return err
	}

	summary, err := p.summarizer.Summarize(ctx, transcript)
	if err != nil {
		p.logger.Error(ctx, "Summarization failed for %s: %v", name, err)
	} else {
		if err := p.writer.SaveSummary(ctx, name, summary); err != nil {
			return err
		}
		if p.cfg.Summarizer.ExportDocx {
			docxPath := p.writer.DocxSummaryPath(name)
			if err := summarizer.WriteDocx(name, summary, docxPath); err != nil {
				p.logger.Warn(ctx, "Failed to export docx summary %s: %v", docxPath, err)
			} else {
				p.logger.Info(ctx, "Docx summary saved: %s", docxPath)
			}
		}
	}

	p.logger.Info(ctx, "Finished %s in %s", name, time.Since(startTime))
	return nil
}

// obtainTranscript produces the transcript for a meeting, either by reading
// an existing one (reuse_transcripts) or by running extraction and
// transcription. The temporary audio is removed before returning, success
// or failure.
func (p *implProcessor) obtainTranscript(ctx context.Context, videoPath, name string) (string, error) {
	if p.cfg.Pipeline.ReuseTranscripts {
		if text, err := p.writer.ReadTranscript(name); err == nil && strings.TrimSpace(text) != "" {
			p.logger.Info(ctx, "Reusing existing transcript for %s", name)
			return text, nil
		}
	}

	audioPath, err := p.extractAudio(ctx, videoPath, name)
	if err != nil {
		return "", fmt.Errorf("extract audio: %w", err)
	}
	defer p.cleanupTempFile(ctx, audioPath)

	transcript, err := p.transcribe(ctx, audioPath)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}

	if err := p.writer.SaveTranscript(ctx, name, transcript); err != nil {
		return "", err
	}

	return transcript, nil
}
