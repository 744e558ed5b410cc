// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lucide

// Wrapper binds one icon to a mutable configuration through a fluent
// chain of setters. Each setter further specializes the configuration
// and returns the wrapper, so calls can be chained:
//
//	svg := w.Size(32).Color("#ff0000").Class("nav-icon").Render()
type Wrapper struct {
	icon   *Icon
	config Config
}

// NewWrapper returns a wrapper bound to the named icon in the given
// registry, with the default configuration.
func NewWrapper(rg *Registry, name string) (*Wrapper, error) {
	ic, err := rg.Lookup(name)
	if err != nil {
		return nil, err
	}
	return Wrap(ic)
}

// Wrap returns a wrapper bound directly to the given icon, with the
// default configuration.
func Wrap(ic *Icon) (*Wrapper, error) {
	if ic == nil {
		return nil, ErrNilIcon
	}
	w := &Wrapper{icon: ic}
	w.config.Defaults()
	return w, nil
}

// Size sets the width and height to the same value.
func (w *Wrapper) Size(s int) *Wrapper {
	w.config.SetSize(s)
	return w
}

// SizeWH sets the width and height independently.
func (w *Wrapper) SizeWH(width, height int) *Wrapper {
	w.config.Width = width
	w.config.Height = height
	return w
}

// Stroke sets the stroke color.
func (w *Wrapper) Stroke(color string) *Wrapper {
	w.config.Stroke = color
	return w
}

// StrokeWidth sets the stroke width.
func (w *Wrapper) StrokeWidth(sw int) *Wrapper {
	w.config.StrokeWidth = sw
	return w
}

// Fill sets the fill color.
func (w *Wrapper) Fill(color string) *Wrapper {
	w.config.Fill = color
	return w
}

// Color sets the stroke and fill to the same color. This is a one-way
// convenience: a later Stroke or Fill overrides just that channel.
func (w *Wrapper) Color(color string) *Wrapper {
	w.config.SetColor(color)
	w.config.Fill = color
	return w
}

// Class sets the class attribute.
func (w *Wrapper) Class(class string) *Wrapper {
	w.config.Class = class
	return w
}

// Style sets the inline style attribute; see [Config.SetStyle].
func (w *Wrapper) Style(style string) *Wrapper {
	w.config.SetStyle(style)
	return w
}

// Reset restores the default configuration.
func (w *Wrapper) Reset() *Wrapper {
	w.config = Config{}
	w.config.Defaults()
	return w
}

// Config returns the current configuration for direct inspection or
// mutation.
func (w *Wrapper) Config() *Config {
	return &w.config
}

// Render returns the bound icon serialized with the current
// configuration. It returns an empty string if the wrapper is unbound,
// which is unreachable through the constructors.
func (w *Wrapper) Render() string {
	if w.icon == nil {
		return ""
	}
	return w.icon.SVG(&w.config)
}

// Clone returns an independent wrapper sharing the same icon handle
// with a copy of the current configuration. Further changes to either
// wrapper do not affect the other.
func (w *Wrapper) Clone() *Wrapper {
	return &Wrapper{icon: w.icon, config: w.config}
}

// RenderAll renders each named icon from the registry with one shared
// configuration (nil for defaults). The result is parallel to names:
// order-preserving, length-preserving, with an empty string at the
// position of every unknown name.
func RenderAll(rg *Registry, names []string, c *Config) []string {
	out := make([]string, len(names))
	for i, name := range names {
		ic, err := rg.Lookup(name)
		if err != nil {
			continue
		}
		out[i] = ic.SVG(c)
	}
	return out
}
