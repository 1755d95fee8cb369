package processor

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// transcribe converts an audio file to text. Audio longer than the
// configured window is split into sequential fixed-duration windows,
// transcribed one by one, and concatenated in order. Seam artifacts at
// window boundaries are accepted; windows do not overlap.
func (p *implProcessor) transcribe(ctx context.Context, audioPath string) (string, error) {
	duration, err := p.probeDuration(ctx, audioPath)
	if err != nil {
		return "", err
	}

	window := p.cfg.Whisper.ChunkSeconds
	if duration <= float64(window) {
		return p.transcribeFile(ctx, audioPath)
	}

	numWindows := int(math.Ceil(duration / float64(window)))
	p.logger.Info(ctx, "Audio is %.0fs, splitting into %d windows of %ds", duration, numWindows, window)

	var parts []string
	for i := 0; i < numWindows; i++ {
		windowPath, err := p.extractWindow(ctx, audioPath, i*window, window, i)
		if err != nil {
			return "", fmt.Errorf("extract window %d: %w", i, err)
		}

		text, err := p.transcribeFile(ctx, windowPath)
		p.cleanupTempFile(ctx, windowPath)
		if err != nil {
			return "", fmt.Errorf("transcribe window %d: %w", i, err)
		}
		parts = append(parts, text)
	}

	return strings.Join(parts, " "), nil
}

// probeDuration returns the audio duration in seconds via ffprobe.
func (p *implProcessor) probeDuration(ctx context.Context, path string) (float64, error) {
	out, err := p.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", strings.TrimSpace(out), err)
	}
	return duration, nil
}

// extractWindow cuts one fixed-duration window out of the audio file.
// Stream copy, no re-encode.
func (p *implProcessor) extractWindow(ctx context.Context, audioPath string, offset, window, index int) (string, error) {
	base := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))
	windowPath := fmt.Sprintf("%s_chunk%03d.wav", base, index)

	args := []string{
		"-ss", strconv.Itoa(offset),
		"-i", audioPath,
		"-t", strconv.Itoa(window),
		"-c", "copy",
		"-y",
		windowPath,
	}

	if _, err := p.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg cut window: %w", err)
	}
	return windowPath, nil
}

// transcribeFile runs whisper on a single audio file and returns the text.
func (p *implProcessor) transcribeFile(ctx context.Context, audioPath string) (string, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	p.logger.Info(ctx, "Transcribing %s with %d threads", audioPath, p.cfg.Whisper.Threads)

	args := []string{
		"-m", p.cfg.Whisper.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-l", p.cfg.Whisper.Language,
		"-t", strconv.Itoa(p.cfg.Whisper.Threads),
		"--output-file", outputPrefix,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.Whisper.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	txtPath := outputPrefix + ".txt"
	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}
	p.cleanupTempFile(ctx, txtPath)

	return strings.TrimSpace(string(data)), nil
}
