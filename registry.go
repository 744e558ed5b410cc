// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lucide

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Registry maps icon names to icons. It owns the canonical [Icon]
// values; consumers hold shared read-only handles to them. There is no
// removal: icons can only be added or replaced. A Registry is safe for
// concurrent use. Use [NewRegistry]; the zero value is not usable.
type Registry struct {
	mu    sync.RWMutex
	icons map[string]*Icon
}

// NewRegistry returns a new empty icon registry.
func NewRegistry() *Registry {
	return &Registry{icons: map[string]*Icon{}}
}

// Register registers the given path data under name, replacing any
// existing icon of that name, and returns the new icon. The name must
// satisfy [ValidName]; the path data is stored as-is.
func (rg *Registry) Register(name, pathData string) (*Icon, error) {
	if !ValidName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	ic := NewIcon(name, pathData)
	rg.mu.Lock()
	rg.icons[name] = ic
	rg.mu.Unlock()
	return ic, nil
}

// Lookup returns the icon registered under name, or [ErrNotFound].
func (rg *Registry) Lookup(name string) (*Icon, error) {
	rg.mu.RLock()
	ic, ok := rg.icons[name]
	rg.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return ic, nil
}

// Has reports whether an icon is registered under name.
func (rg *Registry) Has(name string) bool {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	_, ok := rg.icons[name]
	return ok
}

// Len returns the number of registered icons.
func (rg *Registry) Len() int {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	return len(rg.icons)
}

// Names returns a sorted snapshot of all registered icon names.
func (rg *Registry) Names() []string {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	return slices.Sorted(maps.Keys(rg.icons))
}

// Generate renders the named icon with the given configuration (nil
// for defaults). It returns an empty string and [ErrNotFound] for
// unknown names, so the result is always safe to emit.
func (rg *Registry) Generate(name string, c *Config) (string, error) {
	ic, err := rg.Lookup(name)
	if err != nil {
		return "", err
	}
	return ic.SVG(c), nil
}
