// Package watch reports changes to base documents on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/ether/internal/logger"
	"github.com/alexisbeaulieu97/ether/internal/tokens"
)

// DefaultDebounce groups bursts of editor writes into one change set.
const DefaultDebounce = 200 * time.Millisecond

// Watcher observes a base directory.
type Watcher struct {
	dir      string
	debounce time.Duration
	logger   *logger.Logger
}

// New constructs a Watcher for dir. A non-positive debounce uses
// DefaultDebounce.
func New(dir string, debounce time.Duration, log *logger.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{dir: dir, debounce: debounce, logger: log}
}

// Run blocks until ctx is cancelled, calling onChange with the sorted base
// names touched since the previous call. onChange runs on the watcher
// goroutine; events arriving meanwhile are collected for the next call.
func (w *Watcher) Run(ctx context.Context, onChange func(ctx context.Context, names []string)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.logger.Info("watching base themes", "dir", w.dir)

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			name, relevant := baseName(event)
			if !relevant {
				continue
			}
			w.logger.Debug("base theme changed", "theme", name, "op", event.Op.String())
			pending[name] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err.Error())

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			names := make([]string, 0, len(pending))
			for name := range pending {
				names = append(names, name)
			}
			sort.Strings(names)
			clear(pending)
			onChange(ctx, names)
		}
	}
}

func baseName(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return "", false
	}
	file := filepath.Base(event.Name)
	if _, ok := tokens.FormatForPath(file); !ok {
		return "", false
	}
	name := strings.TrimSuffix(file, filepath.Ext(file))
	return name, name != ""
}
