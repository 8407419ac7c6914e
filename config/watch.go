package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher delivers configs reloaded after the file changes on disk
// Both channels are closed when the watch context ends
type Watcher struct {
	Updates <-chan *Config
	Errors  <-chan error
}

// Watch observes the directory of path so that editors replacing the file are seen
func Watch(ctx context.Context, path string) (*Watcher, error) {
	path = filepath.Clean(path)
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	updates := make(chan *Config, 1)
	errs := make(chan error, 1)
	go run(ctx, fw, path, updates, errs)

	return &Watcher{Updates: updates, Errors: errs}, nil
}

func run(ctx context.Context, fw *fsnotify.Watcher, path string, updates chan<- *Config, errs chan<- error) {
	defer close(errs)
	defer close(updates)
	defer fw.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			// Truncate-then-write produces an empty intermediate file
			if st, err := os.Stat(path); err != nil || st.Size() == 0 {
				continue
			}
			cfg, err := Load(path, true)
			if err != nil {
				send(ctx, errs, err)
				continue
			}
			send(ctx, updates, cfg)

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			send(ctx, errs, fmt.Errorf("config watcher: %w", err))
		}
	}
}

func send[T any](ctx context.Context, ch chan<- T, v T) {
	select {
	case ch <- v:
	case <-ctx.Done():
	}
}
