// cmd/barsview/run.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/stopbars/bars/config"
	"github.com/stopbars/bars/log"
	"github.com/stopbars/bars/math"
	"github.com/stopbars/bars/platform"
	"github.com/stopbars/bars/renderer"
	"github.com/stopbars/bars/scope"
	"github.com/stopbars/bars/session"

	"github.com/goforj/godump"
)

const (
	settingsFilename = "settings.json"
	demoFilename     = "demo.bars"
)

type options struct {
	Dir       string
	Demo      bool
	Aerodrome string
	Geo       bool
	View      int
	Width     int
	Height    int
	Scale     float64
	Rotation  float64
	Control   bool
	ClickMenu bool
	Selects   []string
	Preload   bool
	Out       string
	Dump      bool
}

var clearColor = renderer.RGBFromHex(0x000000)

func configDirectory(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	ucd, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(ucd, "BARS"), nil
}

// writeDemo saves the built-in demo package to dir and returns a mapping
// that resolves DEMO to it.
func writeDemo(dir string) (config.Mapping, error) {
	f, err := os.Create(filepath.Join(dir, demoFilename))
	if err != nil {
		return config.Mapping{}, err
	}
	if err := config.Demo().Save(f); err != nil {
		f.Close()
		return config.Mapping{}, err
	}
	if err := f.Close(); err != nil {
		return config.Mapping{}, err
	}

	return config.Mapping{
		Config: []config.Source{{Src: demoFilename, Aerodromes: []string{"DEMO"}}},
		Base:   dir,
	}, nil
}

func loadManager(ctx context.Context, opts options, dir string, lg *log.Logger) (*config.Manager, error) {
	local, err := config.LoadLocalConfig(dir)
	if err != nil {
		return nil, err
	}

	var mapping config.Mapping
	if opts.Demo {
		mapping, err = writeDemo(dir)
	} else {
		mapping, err = config.LoadMapping(dir)
	}
	if err != nil {
		return nil, err
	}

	m := config.NewManager(mapping, local, lg)
	if opts.Preload {
		if err := m.Preload(ctx); err != nil {
			return nil, fmt.Errorf("preloading config sources: %w", err)
		}
	}
	return m, nil
}

// aerodromeCenter returns the center of the bounding box of the nodes'
// click targets.
func aerodromeCenter(ad *config.Aerodrome) (math.Point2LL, bool) {
	var pts [][2]float64
	for _, n := range ad.Nodes {
		for _, p := range n.Display.Target.Points {
			pts = append(pts, p.Geo.Point2LL())
		}
	}
	if len(pts) == 0 {
		return math.Point2LL{}, false
	}
	e := math.Extent2DFromPoints(pts)
	return math.Point2LL(math.Scale2(math.Add2(e.P0, e.P1), 0.5)), true
}

type viewer struct {
	ctx    context.Context
	sess   *session.Context
	host   *platform.HeadlessHost
	screen *scope.Screen
	raster *renderer.Raster
}

// frame draws one frame. Unlike an interactive host, the viewer waits
// for configuration loads so that each frame shows their results.
func (v *viewer) frame() {
	v.sess.Tick()
	if err := v.sess.WaitLoads(v.ctx); err != nil {
		v.sess.AddMessage("loading interrupted: " + err.Error())
	}
	v.host.BeginFrame()
	v.raster.Clear(clearColor)
	for _, phase := range scope.Phases {
		v.screen.OnRefresh(v.raster, phase)
	}
}

func (v *viewer) clickMenu() error {
	for _, obj := range v.host.Objects {
		if obj.Kind == platform.ScreenObjectMenu {
			ctr := obj.Area.Min.Add(obj.Area.Max).Div(2)
			v.screen.OnClickScreenObject(obj.Kind, ctr, obj.Area, platform.MouseButtonPrimary)
			v.frame()
			return nil
		}
	}
	return errors.New("no menu widget was drawn")
}

// choose submits label as the text of an open edit popup, or selects
// the item with that label in the most recently opened list that has
// one.
func (v *viewer) choose(label string) error {
	p := v.host.LastPopup()
	if p == nil {
		return fmt.Errorf("%q: no popup is open", label)
	}

	if p.Kind == platform.PopupEdit {
		v.screen.OnFunctionCall(p.Tag, label, p.Area.Min, p.Area)
		v.frame()
		return nil
	}

	for i := len(v.host.Popups) - 1; i >= 0; i-- {
		p := &v.host.Popups[i]
		item, ok := p.Item(label)
		if !ok {
			continue
		}
		if item.Disabled {
			return fmt.Errorf("%q: disabled in %q", label, p.Title)
		}
		v.screen.OnFunctionCall(item.Tag, "", p.Area.Min, p.Area)
		v.frame()
		return nil
	}
	return fmt.Errorf("%q: not in %q popup (%v)", label, p.Title, p.Labels())
}

func printPopups(w io.Writer, popups []platform.Popup) {
	for _, p := range popups {
		switch p.Kind {
		case platform.PopupEdit:
			fmt.Fprintf(w, "[edit] %q\n", p.Text)
		case platform.PopupList:
			fmt.Fprintf(w, "[%s]\n", p.Title)
			for _, item := range p.Items {
				mark := "   "
				switch item.Check {
				case platform.PopupChecked:
					mark = "[x]"
				case platform.PopupUnchecked:
					mark = "[ ]"
				}
				disabled := ""
				if item.Disabled {
					disabled = " (disabled)"
				}
				fmt.Fprintf(w, "  %s %s%s\n", mark, item.Label, disabled)
			}
		}
	}
}

func run(opts options, w io.Writer, lg *log.Logger) error {
	ctx := context.Background()

	dir, err := configDirectory(opts.Dir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	mgr, err := loadManager(ctx, opts, dir, lg)
	if err != nil {
		return err
	}

	settings, err := platform.LoadFileSettings(filepath.Join(dir, settingsFilename), lg)
	if err != nil {
		return err
	}
	icao := opts.Aerodrome
	if icao == "" && opts.Demo {
		icao = "DEMO"
	}
	if icao != "" {
		settings.Set(scope.SettingAerodrome, "Active aerodrome", icao)
	}

	area := image.Rect(0, 0, opts.Width, opts.Height)
	host := platform.NewHeadlessHost(area, math.Point2LL{}, opts.Scale, settings)
	host.Rotation = math.Radians(opts.Rotation)
	host.Controller = opts.Control

	sess := session.NewContext(mgr, lg)
	defer sess.Close()
	sess.ConnectLocal()
	client := sess.NewScreen(opts.Geo)
	v := &viewer{
		ctx:    ctx,
		sess:   sess,
		host:   host,
		screen: scope.NewScreen(client, host, opts.Geo, lg),
		raster: renderer.NewRaster(opts.Width, opts.Height),
	}
	v.screen.OnContentLoaded()
	defer v.screen.OnContentClosed()

	sess.Tick()
	if err := sess.WaitLoads(ctx); err != nil {
		return err
	}

	if icao, ok := client.Aerodrome(); ok {
		if a, ok := sess.Aerodrome(icao); ok {
			if ctr, ok := aerodromeCenter(a.Config); ok {
				host.Center = ctr
				host.PixelsPerDegree[1] = opts.Scale * math.Cos(math.Radians(ctr.Latitude()))
			}
		}
	}
	if opts.Control {
		client.SetActivity(scope.Controlling)
	}
	client.SetView(opts.View)

	v.frame()

	if opts.ClickMenu {
		if err := v.clickMenu(); err != nil {
			return err
		}
	}
	for _, label := range opts.Selects {
		if err := v.choose(label); err != nil {
			return err
		}
	}

	printPopups(w, host.Popups)
	for {
		msg, ok := sess.NextMessage()
		if !ok {
			break
		}
		fmt.Fprintf(w, "message: %s\n", msg)
	}
	if opts.Dump {
		godump.Dump(host.Popups)
		godump.Dump(host.Objects)
	}

	f, err := os.Create(opts.Out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, v.raster.Image); err != nil {
		f.Close()
		return err
	}
	lg.Infof("wrote %s", opts.Out)
	return f.Close()
}
