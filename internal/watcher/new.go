package watcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/transcript-relay/internal/logger"
)

// New watches dir for files with one of exts. handler runs after no new
// change has been seen for debounce.
func New(dir string, exts []string, handler EventHandler, log logger.Logger, debounce time.Duration) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if debounce <= 0 {
		debounce = 2 * time.Second
	}

	extensions := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		extensions[strings.ToLower(ext)] = struct{}{}
	}

	return &implWatcher{
		dir:        dir,
		extensions: extensions,
		handler:    handler,
		logger:     log,
		watcher:    watcher,
		debounce:   debounce,
	}, nil
}
