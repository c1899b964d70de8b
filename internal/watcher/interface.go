package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler runs once per settled burst of audio file changes.
type EventHandler func(ctx context.Context) error
