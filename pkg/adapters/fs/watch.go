package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/daybook/pkg/core"
)

// debounceWindow coalesces the burst of fsnotify events an atomic
// write-then-rename produces into a single change notification.
const debounceWindow = 50 * time.Millisecond

// Watch observes external modifications of the notes file and emits a
// FILE_CHANGED event per (debounced) change. The watcher attaches to the
// parent directory so it survives the rename-replace writes this package
// itself performs. The channel closes when ctx is cancelled.
func (s *Store) Watch(ctx context.Context, path string) (<-chan core.Event, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	events := make(chan core.Event, 16)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer watcher.Close()

		var timer *time.Timer
		var pending <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return nil

			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Base(ev.Name) != filepath.Base(abs) {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounceWindow)
				} else {
					// Drain a fired-but-unread tick so Reset cannot
					// deliver it immediately and cut the window short.
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(debounceWindow)
				}
				pending = timer.C

			case <-pending:
				pending = nil
				select {
				case events <- core.Event{
					Type:      core.EventFileChanged,
					Timestamp: time.Now().Unix(),
				}:
				default:
					// Slow consumer; drop rather than stall the watcher.
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				s.logger.Error("watch error", "error", err)
			}
		}
	})

	return events, nil
}
