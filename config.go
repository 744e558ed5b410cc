// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lucide

import (
	"strings"

	"github.com/aymerick/douceur/parser"
)

// Config holds the presentation attributes applied when serializing an
// icon. The zero value is not the default configuration; use
// [NewConfig] or call [Config.Defaults].
type Config struct {

	// Width is the rendered width in pixels.
	Width int `toml:"width"`

	// Height is the rendered height in pixels.
	Height int `toml:"height"`

	// Size mirrors Width and Height when set through [Config.SetSize].
	Size int `toml:"size"`

	// Stroke is the stroke color.
	Stroke string `toml:"stroke"`

	// StrokeWidth is the stroke width in viewbox units.
	StrokeWidth int `toml:"stroke-width"`

	// StrokeLinecap is the stroke line cap (butt, round, square).
	StrokeLinecap string `toml:"stroke-linecap"`

	// StrokeLinejoin is the stroke line join (miter, round, bevel).
	StrokeLinejoin string `toml:"stroke-linejoin"`

	// Fill is the fill color.
	Fill string `toml:"fill"`

	// Color mirrors Stroke when set through [Config.SetColor].
	Color string `toml:"color"`

	// Class is an optional class attribute, emitted only when non-empty.
	Class string `toml:"class,omitempty"`

	// Style is an optional inline style attribute, emitted only when
	// non-empty.
	Style string `toml:"style,omitempty"`
}

// NewConfig returns a new [Config] with the default values.
func NewConfig() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Defaults sets the standard icon configuration: a 24x24 icon stroked
// with currentColor at width 2, round caps and joins, and no fill.
func (c *Config) Defaults() {
	c.Width = 24
	c.Height = 24
	c.Size = 24
	c.Stroke = "currentColor"
	c.StrokeWidth = 2
	c.StrokeLinecap = "round"
	c.StrokeLinejoin = "round"
	c.Fill = "none"
	c.Color = "currentColor"
}

// SetSize sets Size, Width, and Height to s, keeping them in sync.
func (c *Config) SetSize(s int) *Config {
	c.Size = s
	c.Width = s
	c.Height = s
	return c
}

// SetColor sets Color and Stroke to the given color, keeping them in
// sync. It does not touch Fill; see [Wrapper.Color] for that.
func (c *Config) SetColor(color string) *Config {
	c.Color = color
	c.Stroke = color
	return c
}

// SetStyle sets the inline style attribute. The declarations are run
// through the CSS parser and re-serialized in canonical form; strings
// that do not parse are stored verbatim and rely on attribute escaping
// at render time.
func (c *Config) SetStyle(style string) *Config {
	if norm, err := normalizeStyle(style); err == nil {
		style = norm
	}
	c.Style = style
	return c
}

// normalizeStyle parses inline CSS declarations and re-serializes them.
func normalizeStyle(style string) (string, error) {
	if style == "" {
		return "", nil
	}
	// the CSS parser is strict about semicolons, but they aren't
	// needed in normal inline styles
	if !strings.HasSuffix(style, ";") {
		style += ";"
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		return "", err
	}
	strs := make([]string, len(decls))
	for i, d := range decls {
		strs[i] = d.String()
	}
	return strings.Join(strs, " "), nil
}
