package locator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Locator lists meeting videos in a directory by extension.
type Locator struct {
	dir        string
	extensions map[string]bool
}

// New creates a Locator for dir matching the given extensions
// (lowercase, dot-prefixed, e.g. ".mp4").
func New(dir string, extensions []string) *Locator {
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(ext)] = true
	}
	return &Locator{dir: dir, extensions: set}
}

// Videos returns the full paths of matching video files in the directory,
// sorted by name. Hidden files and subdirectories are skipped.
func (l *Locator) Videos() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("read video directory %s: %w", l.dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if l.IsVideo(e.Name()) {
			files = append(files, filepath.Join(l.dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

// IsVideo reports whether the path has a supported video extension.
func (l *Locator) IsVideo(path string) bool {
	return l.extensions[strings.ToLower(filepath.Ext(path))]
}
