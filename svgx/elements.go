// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgx extracts icon path data from SVG documents and loads
// directories of .svg files into a [lucide.Registry]. It has two
// independent extraction paths: a lexer pass over the raw markup
// ([ExtractElements], used by the loaders) and a full vector parse
// ([Extract]) that re-serializes shape geometry and paint.
package svgx

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// shapeTags are the SVG shape elements carried over into icon path
// data by [ExtractElements].
var shapeTags = map[string]bool{
	"path":     true,
	"circle":   true,
	"rect":     true,
	"line":     true,
	"ellipse":  true,
	"polygon":  true,
	"polyline": true,
}

// ExtractElements returns the concatenated shape elements of the given
// SVG text: path, circle, rect, line, ellipse, polygon, and polyline
// tags with their attributes in source order, each re-emitted
// self-closing. All other markup, including the svg envelope itself,
// is dropped. Malformed input yields whatever was extracted before the
// lexer stopped.
func ExtractElements(svg string) string {
	l := xml.NewLexer(parse.NewInputString(svg))
	var b strings.Builder
	inShape := false
	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken: // includes EOF
			return b.String()
		case xml.StartTagToken:
			name := string(l.Text())
			if shapeTags[name] {
				inShape = true
				b.WriteString("<")
				b.WriteString(name)
			}
		case xml.AttributeToken:
			if inShape {
				b.WriteString(" ")
				b.WriteString(string(l.Text()))
				b.WriteString(`="`)
				b.WriteString(strings.Trim(string(l.AttrVal()), `"'`))
				b.WriteString(`"`)
			}
		case xml.StartTagCloseToken, xml.StartTagCloseVoidToken:
			if inShape {
				b.WriteString("/>")
				inShape = false
			}
		}
	}
}

// paintInfo scans the document's attributes for paint declarations.
// The vector parser reports a default color for absent paint, so
// [Extract] needs this to decide whether to emit stroke attributes and
// whether fill should be a color or none. The verdict is per document,
// not per shape: stroked is true when any stroke paint other than none
// is declared, and filled is false only when fill none is declared and
// no other fill paint is.
func paintInfo(svg string) (stroked, filled bool) {
	sawFillNone := false
	sawFillPaint := false
	l := xml.NewLexer(parse.NewInputString(svg))
	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken:
			filled = sawFillPaint || !sawFillNone // fill defaults to black
			return stroked, filled
		case xml.AttributeToken:
			key := string(l.Text())
			val := strings.Trim(string(l.AttrVal()), `"'`)
			switch key {
			case "stroke":
				if val != "none" {
					stroked = true
				}
			case "fill":
				if val == "none" {
					sawFillNone = true
				} else {
					sawFillPaint = true
				}
			case "style":
				val = strings.ReplaceAll(val, " ", "")
				if strings.Contains(val, "stroke:") && !strings.Contains(val, "stroke:none") {
					stroked = true
				}
				if strings.Contains(val, "fill:") {
					if strings.Contains(val, "fill:none") {
						sawFillNone = true
					} else {
						sawFillPaint = true
					}
				}
			}
		}
	}
}
