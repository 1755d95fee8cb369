package executor

import "context"

// Executor runs external tools (ffmpeg, ffprobe, whisper) on behalf of the
// pipeline.
type Executor interface {
	// Execute runs the named command and returns its stdout.
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// LookPath reports an error if the named binary cannot be found.
	LookPath(name string) error
}
