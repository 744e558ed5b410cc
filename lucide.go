// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lucide renders named vector icons as SVG strings.
//
// Icons are raw path-data fragments registered under a name in a
// [Registry] and serialized into an <svg> envelope on a fixed 24-unit
// grid, scaled through the width and height attributes of a [Config].
// [Wrapper] provides a fluent builder over one icon, [Collection]
// groups icons for batch rendering, and [Theme] supplies reusable
// default configurations. The svgx package loads registries from
// directories of .svg files.
package lucide

// Default is the registry used by the package-level functions.
// Libraries should generally accept a *Registry instead so that
// callers control icon state.
var Default = NewRegistry()

// Register registers the icon in the [Default] registry.
func Register(name, pathData string) (*Icon, error) {
	return Default.Register(name, pathData)
}

// Lookup returns the named icon from the [Default] registry.
func Lookup(name string) (*Icon, error) {
	return Default.Lookup(name)
}

// Has reports whether the [Default] registry has the named icon.
func Has(name string) bool {
	return Default.Has(name)
}

// Names returns the sorted names in the [Default] registry.
func Names() []string {
	return Default.Names()
}

// Generate renders the named icon from the [Default] registry.
func Generate(name string, c *Config) (string, error) {
	return Default.Generate(name, c)
}
