// scope/screen.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scope

import (
	"image"

	"github.com/stopbars/bars/log"
	"github.com/stopbars/bars/math"
	"github.com/stopbars/bars/platform"
	"github.com/stopbars/bars/renderer"
)

// Screen is the overlay drawn on a single host display. The host calls
// its methods one at a time from a single goroutine: OnRefresh once per
// phase each frame, and the On*ScreenObject and OnFunctionCall methods
// as the user interacts with what was drawn.
type Screen struct {
	client Client
	host   Host
	geo    bool

	Menu    MenuWidget
	pending *pendingFunction

	degenerate bool
	lg         *log.Logger
}

func NewScreen(client Client, host Host, geo bool, lg *log.Logger) *Screen {
	return &Screen{
		client: client,
		host:   host,
		geo:    geo,
		lg:     lg,
	}
}

func (s *Screen) Geo() bool {
	return s.geo
}

func (s *Screen) connected() bool {
	return s.client.ConnectionState().Connected()
}

// OnContentLoaded restores the screen's state from the host's settings.
func (s *Screen) OnContentLoaded() {
	settings := s.host.Settings()
	if icao, ok := settings.Get(SettingAerodrome); ok {
		if icao = normalizeAerodrome(icao); icao != "" {
			s.client.SetAerodrome(icao)
		}
	}
	s.Menu.Load(settings)
	s.lg.Debug("content loaded", "menu_offset", s.Menu.Offset)
}

// OnContentClosed is called when the host closes the display; the
// Screen must not be used afterward.
func (s *Screen) OnContentClosed() {
	s.client.Close()
	s.pending = nil
}

func (s *Screen) OnRefresh(g renderer.Graphics, phase Phase) {
	switch phase {
	case PhaseBackground:
		s.drawBackground(g)
	case PhaseBeforeTags:
		s.drawForeground(g)
	case PhaseAfterTags:
	case PhaseAfterLists:
		s.drawMenu(g)

		if s.client.BackgroundRefreshRequired() {
			s.host.RefreshMapContent()
		}

		if p := s.pending; p != nil {
			// The slot is cleared first so that the dispatch may defer
			// another function.
			s.pending = nil
			s.dispatch(p.fn, "", p.area)
		}
	}
}

func (s *Screen) viewport() Viewport {
	vp := ComputeViewport(s.host, s.geo)
	if d := vp.Degenerate(); d != s.degenerate {
		if d {
			s.lg.Warn("degenerate viewport", "area", vp.Area, "scaling", vp.Scaling, "rotation", vp.Rotation)
		} else {
			s.lg.Info("viewport recovered")
		}
		s.degenerate = d
	}
	return vp
}

func (s *Screen) drawBackground(g renderer.Graphics) {
	var msg string
	if !s.geo {
		if !s.connected() {
			msg = "Disconnected"
		} else if len(s.client.Views()) == 0 {
			msg = "No views defined"
		}
	}

	if msg == "" {
		s.client.DrawBackground(g, s.viewport())
		return
	}

	area := s.host.RadarArea()
	sz := g.MeasureText(msg)
	p := [2]float64{
		float64(area.Min.X+area.Max.X)/2 - sz[0]/2,
		float64(area.Min.Y+area.Max.Y)/2 - sz[1]/2,
	}
	g.DrawText(msg, p, ColorMessage)
}

func (s *Screen) drawForeground(g renderer.Graphics) {
	s.client.SetViewport(s.viewport())
	s.client.DrawForeground(g)

	for _, r := range s.client.ClickRegions() {
		s.host.AddScreenObject(platform.ScreenObject{Kind: platform.ScreenObjectClickRegion, Area: r})
	}
}

func (s *Screen) drawMenu(g renderer.Graphics) {
	icao, ok := s.client.Aerodrome()
	pres := Present(s.client.ConnectionState(), s.client.Activity(), ok)
	label := MenuLabel(icao, ok)

	lw := int(math.Ceil(g.MeasureText(label)[0]))
	r := s.Menu.ComputeRect(s.host.RadarArea(), lw)

	g.FillRect(r, pres.Color)
	s.host.AddScreenObject(platform.ScreenObject{Kind: platform.ScreenObjectMenu, Area: r, Moveable: true})

	g.DrawLines(IconPoints(pres.Icon, r), 1, ColorForeground)
	g.DrawText(label, [2]float64{float64(r.Min.X + MenuPadding + MenuIconHeight), float64(r.Min.Y)}, ColorForeground)
}

func (s *Screen) OnClickScreenObject(kind platform.ScreenObjectKind, p image.Point, area image.Rectangle,
	button platform.MouseButton) {
	switch kind {
	case platform.ScreenObjectClickRegion:
		t := ClickAuxiliary
		if button == platform.MouseButtonPrimary {
			t = ClickPrimary
		}
		s.client.HandleClick(p, t)

	case platform.ScreenObjectMenu:
		fn := TagFunction{Kind: TagOpenEditAerodrome}
		if _, ok := s.client.Aerodrome(); ok && button == platform.MouseButtonPrimary && s.connected() {
			fn.Kind = TagOpenMenu
		}
		s.dispatch(fn, "", area)
	}
}

// OnMoveScreenObject handles drags of moveable objects; the menu
// widget's position is saved when it is released.
func (s *Screen) OnMoveScreenObject(kind platform.ScreenObjectKind, p image.Point, area image.Rectangle,
	released bool) {
	if kind != platform.ScreenObjectMenu {
		return
	}

	s.Menu.Drag(s.host.RadarArea(), p)
	if released {
		s.Menu.Save(s.host.Settings())
	}
}
