// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgx

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"goki.dev/lucide"
)

// LoadDir registers every .svg file in dir with the registry, keyed by
// file stem. Files that cannot be read, contain no shape elements, or
// have invalid stems are skipped with a warning. It returns the number
// of icons registered.
func LoadDir(rg *lucide.Registry, dir string) (int, error) {
	return LoadFS(rg, os.DirFS(dir), ".")
}

// LoadFS is [LoadDir] over an [fs.FS], reading the .svg files directly
// under root (subdirectories are not descended into).
func LoadFS(rg *lucide.Registry, fsys fs.FS, root string) (int, error) {
	ents, err := fs.ReadDir(fsys, root)
	if err != nil {
		return 0, fmt.Errorf("svgx: reading icon directory: %w", err)
	}
	n := 0
	for _, ent := range ents {
		if ent.IsDir() || !strings.EqualFold(path.Ext(ent.Name()), ".svg") {
			continue
		}
		fnm := path.Join(root, ent.Name())
		data, err := fs.ReadFile(fsys, fnm)
		if err != nil {
			slog.Warn("svgx: skipping unreadable icon file", "file", fnm, "err", err)
			continue
		}
		pathData := ExtractElements(string(data))
		if pathData == "" {
			slog.Warn("svgx: no shape elements in icon file", "file", fnm)
			continue
		}
		name := strings.TrimSuffix(ent.Name(), path.Ext(ent.Name()))
		if _, err := rg.Register(name, pathData); err != nil {
			slog.Warn("svgx: skipping icon", "file", fnm, "err", err)
			continue
		}
		n++
	}
	return n, nil
}

// Save renders the named icon with the default configuration and
// writes it to dir as <name>.svg, truncating any existing file. The
// file is created with restrictive permissions. It returns the written
// filename.
func Save(rg *lucide.Registry, name, dir string) (string, error) {
	svg, err := rg.Generate(name, nil)
	if err != nil {
		return "", err
	}
	fnm := filepath.Join(dir, name+".svg")
	if err := os.WriteFile(fnm, []byte(svg), 0o600); err != nil {
		return "", fmt.Errorf("svgx: saving icon %q: %w", name, err)
	}
	return fnm, nil
}
