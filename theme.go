// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lucide

import (
	"fmt"
	"os"

	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
)

// Theme is a named set of default configuration values. Applying a
// theme fills in the fields of a configuration that the caller left at
// the package defaults; explicitly set values always win.
type Theme struct {
	name   string
	config Config
}

// NewTheme returns a new theme with the default configuration.
func NewTheme(name string) *Theme {
	t := &Theme{name: name}
	t.config.Defaults()
	return t
}

// Name returns the theme name.
func (t *Theme) Name() string { return t.name }

// Config returns the theme's default configuration.
func (t *Theme) Config() *Config { return &t.config }

// Stroke sets the theme's default stroke color.
func (t *Theme) Stroke(color string) *Theme {
	t.config.Stroke = color
	return t
}

// Fill sets the theme's default fill color.
func (t *Theme) Fill(color string) *Theme {
	t.config.Fill = color
	return t
}

// StrokeWidth sets the theme's default stroke width.
func (t *Theme) StrokeWidth(sw int) *Theme {
	t.config.StrokeWidth = sw
	return t
}

// Size sets the theme's default size, width, and height.
func (t *Theme) Size(s int) *Theme {
	t.config.SetSize(s)
	return t
}

// Color sets the theme's default color and stroke.
func (t *Theme) Color(color string) *Theme {
	t.config.SetColor(color)
	return t
}

// Apply returns base with every themable field (stroke, fill, stroke
// width, width, height) that still equals its package default replaced
// by the theme's value. A field is treated as unset exactly when it
// equals the default, since Config is a plain value type with no
// per-field presence. Class, style, line cap, and line join are never
// themed. A nil base applies the theme to the default configuration.
func (t *Theme) Apply(base *Config) Config {
	var def Config
	def.Defaults()
	res := def
	if base != nil {
		res = *base
	}
	if res.Stroke == def.Stroke {
		res.Stroke = t.config.Stroke
	}
	if res.Fill == def.Fill {
		res.Fill = t.config.Fill
	}
	if res.StrokeWidth == def.StrokeWidth {
		res.StrokeWidth = t.config.StrokeWidth
	}
	if res.Width == def.Width {
		res.Width = t.config.Width
	}
	if res.Height == def.Height {
		res.Height = t.config.Height
	}
	return res
}

// Light is a theme for light backgrounds: black strokes, no fill.
func Light() *Theme {
	return NewTheme("light").Stroke("#000000").Fill("none").StrokeWidth(2).Size(24)
}

// Dark is a theme for dark backgrounds: white strokes, no fill.
func Dark() *Theme {
	return NewTheme("dark").Stroke("#ffffff").Fill("none").StrokeWidth(2).Size(24)
}

// Colorful is a blue accent theme with a light blue fill.
func Colorful() *Theme {
	return NewTheme("colorful").Stroke("#3b82f6").Fill("#dbeafe").StrokeWidth(2).Size(24)
}

// themeFile is the on-disk TOML form of a set of themes: a themes
// table keyed by name, with any subset of config fields per theme.
type themeFile struct {
	Themes map[string]Config `toml:"themes"`
}

// LoadThemes parses themes from TOML data. Fields a theme leaves unset
// keep the package defaults. A size key keeps width and height in sync
// unless they are also given explicitly.
func LoadThemes(data []byte) (map[string]*Theme, error) {
	var tf themeFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("lucide: parsing themes: %w", err)
	}
	themes := make(map[string]*Theme, len(tf.Themes))
	for name, c := range tf.Themes {
		t := NewTheme(name)
		if c.Size != 0 && c.Width == 0 && c.Height == 0 {
			c.SetSize(c.Size)
		}
		err := copier.CopyWithOption(&t.config, &c, copier.Option{IgnoreEmpty: true})
		if err != nil {
			return nil, fmt.Errorf("lucide: theme %q: %w", name, err)
		}
		themes[name] = t
	}
	return themes, nil
}

// OpenThemes reads themes from the given TOML file; see [LoadThemes].
func OpenThemes(filename string) (map[string]*Theme, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("lucide: opening themes: %w", err)
	}
	return LoadThemes(data)
}
