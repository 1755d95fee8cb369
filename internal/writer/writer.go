package writer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/meetingtools/meeting-scribe/internal/logger"
)

// Writer persists transcript and summary text, one pair per meeting,
// named after the source video. The two writes are independent; a failed
// summary write does not roll back the transcript.
type Writer struct {
	transcriptDir string
	summaryDir    string
	logger        logger.Logger
}

func New(transcriptDir, summaryDir string, log logger.Logger) *Writer {
	return &Writer{
		transcriptDir: transcriptDir,
		summaryDir:    summaryDir,
		logger:        log,
	}
}

// MeetingName returns the base name of a video path without its extension.
func MeetingName(videoPath string) string {
	base := filepath.Base(videoPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// TranscriptPath returns the transcript destination for a meeting name.
func (w *Writer) TranscriptPath(name string) string {
	return filepath.Join(w.transcriptDir, name+".txt")
}

// SummaryPath returns the summary destination for a meeting name.
func (w *Writer) SummaryPath(name string) string {
	return filepath.Join(w.summaryDir, name+".txt")
}

// DocxSummaryPath returns the docx summary destination for a meeting name.
func (w *Writer) DocxSummaryPath(name string) string {
	return filepath.Join(w.summaryDir, name+".docx")
}

// SaveTranscript writes the transcript text for a meeting.
func (w *Writer) SaveTranscript(ctx context.Context, name, text string) error {
	return w.save(ctx, w.TranscriptPath(name), text)
}

// SaveSummary writes the summary text for a meeting.
func (w *Writer) SaveSummary(ctx context.Context, name, text string) error {
	return w.save(ctx, w.SummaryPath(name), text)
}

func (w *Writer) save(ctx context.Context, path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	w.logger.Info(ctx, "Output saved: %s", path)
	return nil
}

// ReadTranscript returns an existing transcript for a meeting, or an error
// if none exists. Used by the reuse_transcripts option.
func (w *Writer) ReadTranscript(name string) (string, error) {
	data, err := os.ReadFile(w.TranscriptPath(name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
