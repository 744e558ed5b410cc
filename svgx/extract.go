// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgx

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// ErrInvalidSVG is returned when input does not parse as an SVG
// document.
var ErrInvalidSVG = errors.New("svgx: invalid svg")

// Info describes a parsed SVG document: its intrinsic viewbox size and
// its shapes re-serialized as path elements.
type Info struct {

	// Width and Height are the viewbox dimensions.
	Width  float64
	Height float64

	// PathData holds one <path> element per parsed shape, with the d
	// attribute rebuilt from the geometry stream and plain stroke and
	// fill paint carried over.
	PathData string
}

// Extract fully parses an SVG document with the vector parser and
// re-serializes its shapes: every parsed path becomes a <path> element
// whose d attribute is rebuilt from the flattened geometry (move,
// line, quadratic, cubic, close), with stroke and fill colors emitted
// as hex values. Compare [ExtractElements], which preserves the source
// markup instead of round-tripping it through the parser.
func Extract(r io.Reader) (*Info, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("svgx: reading svg: %w", err)
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(string(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSVG, err)
	}
	if icon.ViewBox.W == 0 && icon.ViewBox.H == 0 && len(icon.SVGPaths) == 0 {
		return nil, fmt.Errorf("%w: no svg content", ErrInvalidSVG)
	}
	stroked, filled := paintInfo(string(data))
	var b strings.Builder
	for i := range icon.SVGPaths {
		writePath(&b, &icon.SVGPaths[i], stroked, filled)
	}
	return &Info{Width: icon.ViewBox.W, Height: icon.ViewBox.H, PathData: b.String()}, nil
}

// Valid reports whether the given text parses as an SVG document.
func Valid(svg string) bool {
	_, err := Extract(strings.NewReader(svg))
	return err == nil
}

// Dimensions returns the intrinsic viewbox size of the given SVG text.
func Dimensions(svg string) (w, h float64, err error) {
	info, err := Extract(strings.NewReader(svg))
	if err != nil {
		return 0, 0, err
	}
	return info.Width, info.Height, nil
}

// writePath emits one parsed shape as a path element.
func writePath(b *strings.Builder, sp *oksvg.SvgPath, stroked, filled bool) {
	b.WriteString(`<path d="`)
	pw := pathWriter{b: b}
	sp.Path.AddTo(&pw)
	b.WriteString(`"`)
	if stroked && sp.LineWidth > 0 && sp.LineOpacity > 0 {
		b.WriteString(` stroke="`)
		b.WriteString(hexColor(sp.GetLineColor()))
		b.WriteString(`" stroke-width="`)
		b.WriteString(formatFloat(sp.LineWidth))
		b.WriteString(`"`)
	}
	if filled && sp.FillOpacity > 0 {
		b.WriteString(` fill="`)
		b.WriteString(hexColor(sp.GetFillColor()))
		b.WriteString(`"`)
	} else {
		b.WriteString(` fill="none"`)
	}
	b.WriteString("/>")
}

// pathWriter accumulates SVG path commands from a geometry stream. It
// implements [rasterx.Adder].
type pathWriter struct {
	b *strings.Builder
}

var _ rasterx.Adder = (*pathWriter)(nil)

func (pw *pathWriter) Start(a fixed.Point26_6) {
	pw.b.WriteString("M")
	pw.b.WriteString(formatPoint(a))
}

func (pw *pathWriter) Line(b fixed.Point26_6) {
	pw.b.WriteString("L")
	pw.b.WriteString(formatPoint(b))
}

func (pw *pathWriter) QuadBezier(b, c fixed.Point26_6) {
	pw.b.WriteString("Q")
	pw.b.WriteString(formatPoint(b))
	pw.b.WriteString(" ")
	pw.b.WriteString(formatPoint(c))
}

func (pw *pathWriter) CubeBezier(b, c, d fixed.Point26_6) {
	pw.b.WriteString("C")
	pw.b.WriteString(formatPoint(b))
	pw.b.WriteString(" ")
	pw.b.WriteString(formatPoint(c))
	pw.b.WriteString(" ")
	pw.b.WriteString(formatPoint(d))
}

func (pw *pathWriter) Stop(closeLoop bool) {
	if closeLoop {
		pw.b.WriteString("Z")
	}
}

func formatPoint(p fixed.Point26_6) string {
	return formatFixed(p.X) + "," + formatFixed(p.Y)
}

func formatFixed(v fixed.Int26_6) string {
	return formatFloat(float64(v) / 64)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// hexColor returns the #rrggbb form of the given color.
func hexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
