// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lucide

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryRoundTrip(t *testing.T) {
	rg := NewRegistry()
	_, err := rg.Register("home", homePath)
	assert.NoError(t, err)

	ic, err := rg.Lookup("home")
	assert.NoError(t, err)
	assert.Equal(t, homePath, ic.PathData()) // stored exactly, no transformation

	// registration overwrites
	_, err = rg.Register("home", `<path d="M0 0"/>`)
	assert.NoError(t, err)
	ic, err = rg.Lookup("home")
	assert.NoError(t, err)
	assert.Equal(t, `<path d="M0 0"/>`, ic.PathData())
}

func TestRegistryNotFound(t *testing.T) {
	rg := NewRegistry()
	_, err := rg.Lookup("nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)

	svg, err := rg.Generate("nonexistent", nil)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "", svg)

	assert.False(t, rg.Has("nonexistent"))
}

func TestRegistryInvalidName(t *testing.T) {
	rg := NewRegistry()
	for _, name := range []string{"", "9lives", "-dash", "a b", "é"} {
		_, err := rg.Register(name, homePath)
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}
	for _, name := range []string{"a", "home", "ghost-icon", "x_1", "CamelCase2"} {
		_, err := rg.Register(name, homePath)
		assert.NoError(t, err, name)
	}
}

func TestRegistryNames(t *testing.T) {
	rg := NewRegistry()
	for _, name := range []string{"star", "home", "anchor"} {
		_, err := rg.Register(name, homePath)
		assert.NoError(t, err)
	}
	assert.Equal(t, []string{"anchor", "home", "star"}, rg.Names())
	assert.Equal(t, 3, rg.Len())
}

func TestRegistryGenerate(t *testing.T) {
	rg := NewRegistry()
	_, err := rg.Register("home", homePath)
	assert.NoError(t, err)

	for _, name := range rg.Names() {
		svg, err := rg.Generate(name, nil)
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(svg, "<svg"))
		assert.Contains(t, svg, `viewBox="0 0 24 24"`)
	}
}

func TestDefaultRegistry(t *testing.T) {
	_, err := Register("default-test-icon", homePath)
	assert.NoError(t, err)
	assert.True(t, Has("default-test-icon"))
	assert.Contains(t, Names(), "default-test-icon")

	ic, err := Lookup("default-test-icon")
	assert.NoError(t, err)
	assert.Equal(t, homePath, ic.PathData())

	svg, err := Generate("default-test-icon", nil)
	assert.NoError(t, err)
	assert.Contains(t, svg, homePath)
}

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("home"))
	assert.True(t, ValidName("ghost-icon"))
	assert.True(t, ValidName("x2_y"))
	assert.False(t, ValidName(""))
	assert.False(t, ValidName("2fast"))
	assert.False(t, ValidName("_lead"))
	assert.False(t, ValidName("no spaces"))
}
