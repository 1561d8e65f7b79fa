// cmd/barsview/main.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

// barsview drives the overlay with a headless host: it loads an
// aerodrome, runs a frame through every render phase, optionally
// interacts with the menu, and writes the result to a PNG.

import (
	"fmt"
	"os"

	"github.com/stopbars/bars/log"

	"github.com/spf13/pflag"
)

var (
	configDir = pflag.String("dir", "", "BARS configuration directory (default: user config dir)")
	demo      = pflag.Bool("demo", false, "use the built-in DEMO aerodrome instead of the configured sources")
	aerodrome = pflag.StringP("aerodrome", "a", "", "ICAO code of the aerodrome to show")
	geo       = pflag.Bool("geo", false, "draw over a geographic map rather than an aerodrome view")
	view      = pflag.Int("view", 0, "index of the view to show")
	width     = pflag.Int("width", 800, "image width in pixels")
	height    = pflag.Int("height", 600, "image height in pixels")
	scale     = pflag.Float64("scale", 60000, "geographic scale, in pixels per degree of latitude")
	rotation  = pflag.Float64("rotation", 0, "clockwise map rotation, in degrees")
	control   = pflag.Bool("control", false, "take control of the aerodrome")
	clickMenu = pflag.Bool("click-menu", false, "click the menu widget")
	selects   = pflag.StringArray("select", nil, "select the popup item with this label (repeatable; edit popups receive it as text)")
	preload   = pflag.Bool("preload", false, "fetch every mapped config source before starting")
	outFile   = pflag.StringP("out", "o", "bars.png", "PNG file to write")
	dump      = pflag.Bool("dump", false, "dump the host's popups and screen objects")
	logLevel  = pflag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir    = pflag.String("logdir", "", "log file directory")
)

func main() {
	pflag.Parse()

	lg := log.New(*logLevel, *logDir)

	opts := options{
		Dir:       *configDir,
		Demo:      *demo,
		Aerodrome: *aerodrome,
		Geo:       *geo,
		View:      *view,
		Width:     *width,
		Height:    *height,
		Scale:     *scale,
		Rotation:  *rotation,
		Control:   *control,
		ClickMenu: *clickMenu,
		Selects:   *selects,
		Preload:   *preload,
		Out:       *outFile,
		Dump:      *dump,
	}

	if err := run(opts, os.Stdout, lg); err != nil {
		lg.Errorf("%v", err)
		fmt.Fprintf(os.Stderr, "barsview: %v\n", err)
		os.Exit(1)
	}
}
