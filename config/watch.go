// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchLag is how long the config file must be unchanged before it is
// reloaded, as editors often write a file in several steps.
var WatchLag = 100 * time.Millisecond

// Watch watches the given config file and sends the newly loaded config
// each time it changes, until ctx is done. The directory is watched
// rather than the file, so that editors that replace the file by
// renaming are followed. A file that fails to load is logged and
// skipped. The returned channel is closed when watching stops.
func Watch(ctx context.Context, filename string) (<-chan *Config, error) {
	fn, err := ExpandPath(filename)
	if err != nil {
		return nil, err
	}
	fn, err = filepath.Abs(fn)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(fn)); err != nil {
		w.Close()
		return nil, err
	}
	out := make(chan *Config, 1)
	go func() {
		defer close(out)
		defer w.Close()
		lag := time.NewTimer(WatchLag)
		lag.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != fn || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
					continue
				}
				lag.Reset(WatchLag)
			case <-lag.C:
				c, err := Open(fn)
				if err != nil {
					slog.Error("config.Watch: reload failed", "file", fn, "err", err)
					continue
				}
				select {
				case out <- c:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Error("config.Watch", "file", fn, "err", err)
			}
		}
	}()
	return out, nil
}
