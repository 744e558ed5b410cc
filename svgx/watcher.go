// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgx

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"goki.dev/lucide"
)

// Watcher keeps a registry in sync with a directory of .svg files,
// re-registering icons as files are created or written.
type Watcher struct {
	reg  *lucide.Registry
	dir  string
	fw   *fsnotify.Watcher
	done chan struct{}
}

// Watch loads dir into the registry and then watches it, reloading any
// .svg file that is created or modified. Close the watcher to stop.
func Watch(rg *lucide.Registry, dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("svgx: watching %q: %w", dir, err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("svgx: watching %q: %w", dir, err)
	}
	if _, err := LoadDir(rg, dir); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{reg: rg, dir: dir, fw: fw, done: make(chan struct{})}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Write) {
				continue
			}
			if !strings.EqualFold(filepath.Ext(ev.Name), ".svg") {
				continue
			}
			w.reload(ev.Name)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			slog.Error("svgx: icon watcher", "dir", w.dir, "err", err)
		case <-w.done:
			return
		}
	}
}

// reload re-registers one icon file. Failures are logged and skipped;
// a bad write must not take down the watcher.
func (w *Watcher) reload(fnm string) {
	data, err := os.ReadFile(fnm)
	if err != nil {
		slog.Warn("svgx: reloading icon file", "file", fnm, "err", err)
		return
	}
	pathData := ExtractElements(string(data))
	if pathData == "" {
		slog.Warn("svgx: no shape elements in icon file", "file", fnm)
		return
	}
	name := strings.TrimSuffix(filepath.Base(fnm), filepath.Ext(fnm))
	if _, err := w.reg.Register(name, pathData); err != nil {
		slog.Warn("svgx: reloading icon", "file", fnm, "err", err)
	}
}

// Close stops watching the directory.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}
