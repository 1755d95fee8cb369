package watcher

import "context"

// Watcher monitors the video directory for newly dropped meeting files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one newly created video file.
type EventHandler func(ctx context.Context, filePath string) error

// Matcher decides whether a created file is a supported video.
type Matcher func(path string) bool
