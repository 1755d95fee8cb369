package processor

import "context"

// Processor runs the full pipeline for one meeting video.
type Processor interface {
	Process(ctx context.Context, videoPath string) error
}
