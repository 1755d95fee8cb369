package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetingtools/meeting-scribe/internal/config"
	"github.com/meetingtools/meeting-scribe/internal/logger"
	"github.com/meetingtools/meeting-scribe/internal/writer"
)

// fakeExecutor simulates ffmpeg/ffprobe/whisper. ffmpeg writes its output
// file, whisper writes "<prefix>.txt" containing a marker derived from the
// input name so chunk ordering is observable.
type fakeExecutor struct {
	commands    [][]string
	duration    string
	failFFmpeg  bool
	failWhisper bool
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.commands = append(f.commands, append([]string{name}, args...))

	switch name {
	case "ffprobe":
		return f.duration + "\n", nil
	case "ffmpeg":
		if f.failFFmpeg {
			return "", fmt.Errorf("command 'ffmpeg' failed: corrupt input")
		}
		out := args[len(args)-1]
		return "", os.WriteFile(out, []byte("RIFF"), 0644)
	default: // whisper binary
		if f.failWhisper {
			return "", fmt.Errorf("command '%s' failed: model error", name)
		}
		var prefix string
		for i, a := range args {
			if a == "--output-file" && i+1 < len(args) {
				prefix = args[i+1]
			}
		}
		text := "text(" + filepath.Base(prefix) + ")"
		return "", os.WriteFile(prefix+".txt", []byte(text+"\n"), 0644)
	}
}

func (f *fakeExecutor) LookPath(name string) error { return nil }

type fakeSummarizer struct {
	out string
	err error
	got string
}

func (f *fakeSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	f.got = transcript
	return f.out, f.err
}

func newTestSetup(t *testing.T, exec *fakeExecutor, summ *fakeSummarizer) (Processor, *config.Config) {
	t.Helper()

	cfg := &config.Config{
		Whisper: config.WhisperConfig{
			BinaryPath: "whisper-cli",
			ModelPath:  "models/test.bin",
		},
	}
	require.NoError(t, cfg.Validate())

	cfg.Paths.Transcripts = t.TempDir()
	cfg.Paths.Summaries = t.TempDir()
	cfg.Paths.TempAudio = t.TempDir()

	log := logger.New("error")
	w := writer.New(cfg.Paths.Transcripts, cfg.Paths.Summaries, log)
	return New(cfg, exec, summ, w, log), cfg
}

func tempFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestProcessShortMeeting(t *testing.T) {
	exec := &fakeExecutor{duration: "120.0"}
	summ := &fakeSummarizer{out: "Arabic section\n\nEnglish section"}
	proc, cfg := newTestSetup(t, exec, summ)

	err := proc.Process(context.Background(), "Meetings/intro.mp4")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(cfg.Paths.Transcripts, "intro.txt"))
	require.NoError(t, err)
	assert.Equal(t, "text(intro)", string(data))

	data, err = os.ReadFile(filepath.Join(cfg.Paths.Summaries, "intro.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Arabic section\n\nEnglish section", string(data))

	assert.Equal(t, "text(intro)", summ.got)
	assert.Empty(t, tempFiles(t, cfg.Paths.TempAudio), "temp audio must be cleaned up")

	// extract, probe, whisper -- in that order
	require.Len(t, exec.commands, 3)
	assert.Equal(t, "ffmpeg", exec.commands[0][0])
	assert.Equal(t, "ffprobe", exec.commands[1][0])
	assert.Equal(t, "whisper-cli", exec.commands[2][0])
}

func TestProcessLongMeetingChunks(t *testing.T) {
	exec := &fakeExecutor{duration: "1250.0"} // 3 windows at 600s
	summ := &fakeSummarizer{out: "summary"}
	proc, cfg := newTestSetup(t, exec, summ)

	err := proc.Process(context.Background(), "Meetings/allhands.mkv")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(cfg.Paths.Transcripts, "allhands.txt"))
	require.NoError(t, err)
	assert.Equal(t,
		"text(allhands_chunk000) text(allhands_chunk001) text(allhands_chunk002)",
		string(data), "window transcripts concatenate in order")

	// Window cut offsets are sequential multiples of the window size
	var offsets []string
	for _, cmd := range exec.commands {
		if cmd[0] == "ffmpeg" && cmd[1] == "-ss" {
			offsets = append(offsets, cmd[2])
		}
	}
	assert.Equal(t, []string{"0", "600", "1200"}, offsets)

	assert.Empty(t, tempFiles(t, cfg.Paths.TempAudio))
}

func TestProcessExtractionFailure(t *testing.T) {
	exec := &fakeExecutor{duration: "120.0", failFFmpeg: true}
	summ := &fakeSummarizer{out: "summary"}
	proc, cfg := newTestSetup(t, exec, summ)

	err := proc.Process(context.Background(), "Meetings/broken.mp4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extract audio")
	assert.Empty(t, tempFiles(t, cfg.Paths.TempAudio))
	assert.Empty(t, tempFiles(t, cfg.Paths.Transcripts))
}

func TestProcessTranscriptionFailure(t *testing.T) {
	exec := &fakeExecutor{duration: "120.0", failWhisper: true}
	summ := &fakeSummarizer{out: "summary"}
	proc, cfg := newTestSetup(t, exec, summ)

	err := proc.Process(context.Background(), "Meetings/noisy.mp4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transcribe")
	assert.Empty(t, tempFiles(t, cfg.Paths.TempAudio), "temp audio must be cleaned even on failure")
	assert.Empty(t, tempFiles(t, cfg.Paths.Transcripts))
}

func TestProcessSummaryFailureKeepsTranscript(t *testing.T) {
	exec := &fakeExecutor{duration: "120.0"}
	summ := &fakeSummarizer{err: fmt.Errorf("status 429: quota exceeded")}
	proc, cfg := newTestSetup(t, exec, summ)

	err := proc.Process(context.Background(), "Meetings/intro.mp4")
	require.NoError(t, err, "summary failure must not fail the meeting")

	_, err = os.Stat(filepath.Join(cfg.Paths.Transcripts, "intro.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(cfg.Paths.Summaries, "intro.txt"))
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, tempFiles(t, cfg.Paths.TempAudio))
}

func TestProcessReusesExistingTranscript(t *testing.T) {
	exec := &fakeExecutor{duration: "120.0"}
	summ := &fakeSummarizer{out: "summary"}
	proc, cfg := newTestSetup(t, exec, summ)
	cfg.Pipeline.ReuseTranscripts = true

	existing := filepath.Join(cfg.Paths.Transcripts, "intro.txt")
	require.NoError(t, os.WriteFile(existing, []byte("previously transcribed"), 0644))

	err := proc.Process(context.Background(), "Meetings/intro.mp4")
	require.NoError(t, err)

	assert.Empty(t, exec.commands, "no external tools should run when reusing a transcript")
	assert.Equal(t, "previously transcribed", summ.got)
}

func TestProcessIgnoresEmptyExistingTranscript(t *testing.T) {
	exec := &fakeExecutor{duration: "120.0"}
	summ := &fakeSummarizer{out: "summary"}
	proc, cfg := newTestSetup(t, exec, summ)
	cfg.Pipeline.ReuseTranscripts = true

	existing := filepath.Join(cfg.Paths.Transcripts, "intro.txt")
	require.NoError(t, os.WriteFile(existing, []byte("  \n"), 0644))

	err := proc.Process(context.Background(), "Meetings/intro.mp4")
	require.NoError(t, err)
	assert.NotEmpty(t, exec.commands, "empty transcript must be regenerated")
	assert.Equal(t, "text(intro)", summ.got)
}
