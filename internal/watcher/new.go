package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/meetingtools/meeting-scribe/internal/logger"
)

// New creates a Watcher over inputDir. Matching files are handed to the
// handler one at a time; meetings are never processed concurrently.
func New(inputDir string, matches Matcher, handler EventHandler, log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(inputDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inputDir: inputDir,
		matches:  matches,
		handler:  handler,
		logger:   log,
		watcher:  fsw,
	}, nil
}
