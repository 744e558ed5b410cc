// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lucide

import (
	"errors"
	"fmt"
	"slices"
)

// Collection is a named, ordered group of icon names for batch
// rendering. Membership is validated against the registry at insertion
// time only: icons registered after a failed Add are not retroactively
// added.
type Collection struct {
	name  string
	reg   *Registry
	names []string
}

// NewCollection returns a new empty collection validating against the
// given registry.
func NewCollection(rg *Registry, name string) *Collection {
	return &Collection{name: name, reg: rg}
}

// Name returns the collection name.
func (cl *Collection) Name() string { return cl.name }

// Len returns the number of icon names in the collection.
func (cl *Collection) Len() int { return len(cl.names) }

// Names returns a copy of the membership in insertion order.
func (cl *Collection) Names() []string {
	return slices.Clone(cl.names)
}

// Add appends the named icon to the collection. Names not currently in
// the registry are rejected with [ErrNotFound] and the collection is
// left unchanged.
func (cl *Collection) Add(name string) error {
	if !cl.reg.Has(name) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	cl.names = append(cl.names, name)
	return nil
}

// AddAll appends each of the given names, skipping unknown ones and
// returning their errors joined.
func (cl *Collection) AddAll(names ...string) error {
	var errs []error
	for _, name := range names {
		if err := cl.Add(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Remove deletes all occurrences of name from the collection.
func (cl *Collection) Remove(name string) {
	cl.names = slices.DeleteFunc(cl.names, func(n string) bool {
		return n == name
	})
}

// Clear empties the collection.
func (cl *Collection) Clear() {
	cl.names = cl.names[:0]
}

// RenderAll renders every member with one shared configuration, in
// membership order; see [RenderAll].
func (cl *Collection) RenderAll(c *Config) []string {
	return RenderAll(cl.reg, cl.names, c)
}
