// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lucide lists, renders, and extracts SVG icons from a
// directory of .svg files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"goki.dev/lucide"
	"goki.dev/lucide/svgx"
)

var (
	iconsDir   string
	size       int
	stroke     string
	fill       string
	color      string
	class      string
	style      string
	themeName  string
	themesFile string
	outFile    string
)

func main() {
	root := &cobra.Command{
		Use:          "lucide",
		Short:        "lucide renders named vector icons as SVG",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&iconsDir, "dir", "icons", "directory of .svg icon files")

	list := &cobra.Command{
		Use:   "list",
		Short: "list the icons in the icon directory",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	render := &cobra.Command{
		Use:   "render <icon>",
		Short: "render one icon as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	render.Flags().IntVar(&size, "size", 0, "icon width and height in pixels")
	render.Flags().StringVar(&stroke, "stroke", "", "stroke color")
	render.Flags().StringVar(&fill, "fill", "", "fill color")
	render.Flags().StringVar(&color, "color", "", "stroke and fill color")
	render.Flags().StringVar(&class, "class", "", "class attribute")
	render.Flags().StringVar(&style, "style", "", "inline style attribute")
	render.Flags().StringVar(&themeName, "theme", "", "theme name (light, dark, colorful, or one from --themes)")
	render.Flags().StringVar(&themesFile, "themes", "", "TOML file of theme definitions")
	render.Flags().StringVarP(&outFile, "out", "o", "", "write the SVG to this file instead of stdout")

	extract := &cobra.Command{
		Use:   "extract <file.svg>",
		Short: "parse an SVG file and print its re-serialized path data",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtract,
	}

	root.AddCommand(list, render, extract)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadRegistry() (*lucide.Registry, error) {
	rg := lucide.NewRegistry()
	n, err := svgx.LoadDir(rg, iconsDir)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		fmt.Fprintf(os.Stderr, "warning: no icons found in %s\n", iconsDir)
	}
	return rg, nil
}

func lookupTheme(name string) (*lucide.Theme, error) {
	if themesFile != "" {
		themes, err := lucide.OpenThemes(themesFile)
		if err != nil {
			return nil, err
		}
		if t, ok := themes[name]; ok {
			return t, nil
		}
	}
	switch name {
	case "light":
		return lucide.Light(), nil
	case "dark":
		return lucide.Dark(), nil
	case "colorful":
		return lucide.Colorful(), nil
	}
	return nil, fmt.Errorf("unknown theme %q", name)
}

func runList(cmd *cobra.Command, args []string) error {
	rg, err := loadRegistry()
	if err != nil {
		return err
	}
	for _, name := range rg.Names() {
		fmt.Println(name)
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	rg, err := loadRegistry()
	if err != nil {
		return err
	}
	w, err := lucide.NewWrapper(rg, args[0])
	if err != nil {
		return err
	}
	if themeName != "" {
		t, err := lookupTheme(themeName)
		if err != nil {
			return err
		}
		*w.Config() = t.Apply(w.Config())
	}
	// explicit flags take precedence over the theme
	if size > 0 {
		w.Size(size)
	}
	if color != "" {
		w.Color(color)
	}
	if stroke != "" {
		w.Stroke(stroke)
	}
	if fill != "" {
		w.Fill(fill)
	}
	if class != "" {
		w.Class(class)
	}
	if style != "" {
		w.Style(style)
	}
	svg := w.Render()
	if outFile != "" {
		return os.WriteFile(outFile, []byte(svg), 0o600)
	}
	fmt.Println(svg)
	return nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	info, err := svgx.Extract(f)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%g x %g\n", info.Width, info.Height)
	fmt.Println(info.PathData)
	return nil
}
