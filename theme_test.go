// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lucide

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeApplyDefaults(t *testing.T) {
	res := Dark().Apply(NewConfig())
	assert.Equal(t, "#ffffff", res.Stroke)
	assert.Equal(t, "none", res.Fill)
	assert.Equal(t, 2, res.StrokeWidth)
	assert.Equal(t, 24, res.Width)
	assert.Equal(t, 24, res.Height)

	// nil base means the default configuration
	res = Light().Apply(nil)
	assert.Equal(t, "#000000", res.Stroke)
}

func TestThemeApplyExplicitWins(t *testing.T) {
	base := NewConfig().SetColor("#123456").SetSize(48)
	res := Colorful().Apply(base)
	// explicitly set values are preserved
	assert.Equal(t, "#123456", res.Stroke)
	assert.Equal(t, 48, res.Width)
	assert.Equal(t, 48, res.Height)
	// untouched fields are themed
	assert.Equal(t, "#dbeafe", res.Fill)
}

func TestThemeUntouchedFields(t *testing.T) {
	base := NewConfig()
	base.Class = "nav"
	base.StrokeLinecap = "butt"
	res := Dark().Apply(base)
	// class, style, linecap, and linejoin are never themed
	assert.Equal(t, "nav", res.Class)
	assert.Equal(t, "butt", res.StrokeLinecap)
}

func TestThemePresets(t *testing.T) {
	assert.Equal(t, "light", Light().Name())
	assert.Equal(t, "dark", Dark().Name())
	assert.Equal(t, "colorful", Colorful().Name())
	assert.Equal(t, "#3b82f6", Colorful().Config().Stroke)
}

const themesTOML = `
[themes.brand]
stroke = "#112233"
size = 32

[themes.paper]
fill = "#ffffff"
stroke-width = 1
`

func TestLoadThemes(t *testing.T) {
	themes, err := LoadThemes([]byte(themesTOML))
	assert.NoError(t, err)
	assert.Len(t, themes, 2)

	brand := themes["brand"]
	assert.Equal(t, "brand", brand.Name())
	assert.Equal(t, "#112233", brand.Config().Stroke)
	assert.Equal(t, 32, brand.Config().Width)
	assert.Equal(t, 32, brand.Config().Height)
	// unset fields keep the package defaults
	assert.Equal(t, "none", brand.Config().Fill)
	assert.Equal(t, 2, brand.Config().StrokeWidth)

	paper := themes["paper"]
	assert.Equal(t, "#ffffff", paper.Config().Fill)
	assert.Equal(t, 1, paper.Config().StrokeWidth)
	assert.Equal(t, 24, paper.Config().Width)
}

func TestLoadThemesInvalid(t *testing.T) {
	_, err := LoadThemes([]byte("not [valid toml"))
	assert.Error(t, err)
}

func TestOpenThemes(t *testing.T) {
	fnm := filepath.Join(t.TempDir(), "themes.toml")
	assert.NoError(t, os.WriteFile(fnm, []byte(themesTOML), 0o600))

	themes, err := OpenThemes(fnm)
	assert.NoError(t, err)
	assert.Contains(t, themes, "brand")

	_, err = OpenThemes(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
