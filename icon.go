// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lucide

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Icon is an immutable named fragment of SVG path data, designed on a
// 24-unit grid. The path data is opaque markup: it is emitted into the
// svg envelope verbatim, and scaling happens through the width and
// height attributes only.
type Icon struct {
	name     string
	pathData string
}

// NewIcon returns a new icon with the given name and raw path data.
func NewIcon(name, pathData string) *Icon {
	return &Icon{name: name, pathData: pathData}
}

// Name returns the icon name.
func (ic *Icon) Name() string { return ic.name }

// PathData returns the raw path data exactly as registered.
func (ic *Icon) PathData() string { return ic.pathData }

// SVG returns the icon serialized into an <svg> envelope using the
// given configuration. A nil configuration uses the defaults. The
// viewBox is always 0 0 24 24 regardless of the configured size.
func (ic *Icon) SVG(c *Config) string {
	if c == nil {
		c = NewConfig()
	}
	var b strings.Builder
	b.WriteString("<svg")
	attr(&b, "xmlns", "http://www.w3.org/2000/svg")
	attr(&b, "width", strconv.Itoa(c.Width))
	attr(&b, "height", strconv.Itoa(c.Height))
	attr(&b, "viewBox", "0 0 24 24")
	attr(&b, "fill", c.Fill)
	attr(&b, "stroke", c.Stroke)
	attr(&b, "stroke-width", strconv.Itoa(c.StrokeWidth))
	attr(&b, "stroke-linecap", c.StrokeLinecap)
	attr(&b, "stroke-linejoin", c.StrokeLinejoin)
	if c.Class != "" {
		attr(&b, "class", c.Class)
	}
	if c.Style != "" {
		attr(&b, "style", c.Style)
	}
	b.WriteString(">")
	b.WriteString(ic.pathData)
	b.WriteString("</svg>")
	return b.String()
}

// attr writes one attribute with an escaped value.
func attr(b *strings.Builder, name, val string) {
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(escapeAttr(val))
	b.WriteString(`"`)
}

// escapeAttr escapes quotes, ampersands, and angle brackets so that
// caller-supplied values cannot break out of the attribute.
func escapeAttr(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s)) // cannot fail on a strings.Builder
	return b.String()
}
