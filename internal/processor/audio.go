package processor

import (
	"context"
	"fmt"
	"path/filepath"
)

// extractAudio pulls the audio track from a video into the temp-audio
// directory as 16kHz mono WAV, the format whisper expects.
func (p *implProcessor) extractAudio(ctx context.Context, videoPath, name string) (string, error) {
	audioPath := filepath.Join(p.cfg.Paths.TempAudio, name+".wav")

	p.logger.Info(ctx, "Extracting audio: %s -> %s", videoPath, audioPath)

	args := []string{
		"-i", videoPath,
		"-vn", // No video
		"-ar", "16000", // 16kHz sample rate
		"-ac", "1", // Mono
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	return audioPath, nil
}
