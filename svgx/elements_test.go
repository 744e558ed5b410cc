// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractElements(t *testing.T) {
	svg := `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24">
  <title>home</title>
  <path d="M3 9l9-7 9 7v11"/>
  <circle cx="12" cy="12" r="3"/>
</svg>`
	got := ExtractElements(svg)
	assert.Equal(t, `<path d="M3 9l9-7 9 7v11"/><circle cx="12" cy="12" r="3"/>`, got)
}

func TestExtractElementsAllShapes(t *testing.T) {
	svg := `<svg>
<rect x="1" y="2" width="3" height="4"/>
<line x1="0" y1="0" x2="5" y2="5"/>
<ellipse cx="2" cy="2" rx="1" ry="2"/>
<polygon points="0,0 1,1 0,1"/>
<polyline points="0,0 1,1"/>
</svg>`
	got := ExtractElements(svg)
	assert.Contains(t, got, `<rect x="1" y="2" width="3" height="4"/>`)
	assert.Contains(t, got, `<line x1="0" y1="0" x2="5" y2="5"/>`)
	assert.Contains(t, got, `<ellipse cx="2" cy="2" rx="1" ry="2"/>`)
	assert.Contains(t, got, `<polygon points="0,0 1,1 0,1"/>`)
	assert.Contains(t, got, `<polyline points="0,0 1,1"/>`)
}

func TestExtractElementsNonVoid(t *testing.T) {
	// non-self-closing shapes are normalized to self-closing
	got := ExtractElements(`<svg><path d="M0 0"></path></svg>`)
	assert.Equal(t, `<path d="M0 0"/>`, got)
}

func TestExtractElementsNoShapes(t *testing.T) {
	assert.Equal(t, "", ExtractElements(`<svg><defs><style>.a{}</style></defs></svg>`))
	assert.Equal(t, "", ExtractElements(""))
	assert.Equal(t, "", ExtractElements("not svg at all"))
}

func TestPaintInfo(t *testing.T) {
	stroked, filled := paintInfo(`<svg><path d="M0 0" stroke="#00ff00" fill="none"/></svg>`)
	assert.True(t, stroked)
	assert.False(t, filled)

	// fill defaults to black when no paint is declared
	stroked, filled = paintInfo(`<svg><path d="M0 0"/></svg>`)
	assert.False(t, stroked)
	assert.True(t, filled)

	stroked, filled = paintInfo(`<svg><path d="M0 0" stroke="none" fill="#ff0000"/></svg>`)
	assert.False(t, stroked)
	assert.True(t, filled)
}
