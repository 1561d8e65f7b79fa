// session/screen.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package session

import (
	"fmt"
	"image"

	"github.com/stopbars/bars/config"
	"github.com/stopbars/bars/math"
	"github.com/stopbars/bars/renderer"
	"github.com/stopbars/bars/scope"
)

// Screen is the session as seen from one host display. It implements
// scope.Client.
type Screen struct {
	ctx *Context
	geo bool

	icao string
	view int

	vp    scope.Viewport
	xform math.Matrix3

	// Click targets of the nodes, in pixels, as of the last call to
	// DrawForeground.
	targets     [][][2]float64
	targetNodes []int
	selected    int

	refresh bool
	// The aerodrome state and generation the host last redrew.
	seen           *Aerodrome
	seenGeneration uint64
}

var _ scope.Client = (*Screen)(nil)

// NewScreen returns a client for a new host display; geo screens draw
// over the host's map and have no views.
func (c *Context) NewScreen(geo bool) *Screen {
	return &Screen{
		ctx:      c,
		geo:      geo,
		xform:    math.Identity3x3(),
		selected: -1,
	}
}

func (s *Screen) aerodrome() (*Aerodrome, bool) {
	if s.icao == "" {
		return nil, false
	}
	return s.ctx.Aerodrome(s.icao)
}

func (s *Screen) ConnectionState() scope.ConnectionState {
	return s.ctx.ConnectionState()
}

func (s *Screen) Aerodrome() (string, bool) {
	return s.icao, s.icao != ""
}

func (s *Screen) SetAerodrome(icao string) {
	if icao == s.icao {
		return
	}
	if s.icao != "" {
		s.ctx.UntrackAerodrome(s.icao)
	}
	s.icao = icao
	if icao != "" {
		s.ctx.TrackAerodrome(icao)
	}

	s.view, s.selected = 0, -1
	s.targets, s.targetNodes = nil, nil
	s.refresh = true
}

func (s *Screen) Activity() scope.ActivityState {
	if a, ok := s.aerodrome(); ok {
		return a.Activity()
	}
	return scope.ActivityNone
}

func (s *Screen) SetActivity(act scope.ActivityState) {
	a, ok := s.aerodrome()
	if !ok {
		return
	}
	if !s.ctx.ConnectionState().Connected() {
		s.ctx.AddMessage("not connected")
		return
	}
	if act == scope.Controlling && !s.ctx.CanControl() {
		s.ctx.AddMessage("not permitted to control " + s.icao)
		return
	}
	a.SetActivity(act)
}

func (s *Screen) controlling() (*Aerodrome, bool) {
	a, ok := s.aerodrome()
	return a, ok && a.Activity() == scope.Controlling
}

func (s *Screen) Profiles() []string {
	if a, ok := s.aerodrome(); ok {
		return a.ProfileNames()
	}
	return nil
}

func (s *Screen) Profile() int {
	if a, ok := s.aerodrome(); ok {
		return a.Profile()
	}
	return 0
}

func (s *Screen) SetProfile(i int) {
	if a, ok := s.controlling(); ok {
		a.SetProfile(i)
	}
}

func (s *Screen) Presets() []string {
	if a, ok := s.aerodrome(); ok {
		return a.PresetNames()
	}
	return nil
}

func (s *Screen) ApplyPreset(i int) {
	if a, ok := s.controlling(); ok {
		a.ApplyPreset(i, s.ctx.Now())
	}
}

func (s *Screen) Views() []string {
	a, ok := s.aerodrome()
	if !ok || s.geo {
		return nil
	}
	var names []string
	for _, v := range a.Config.Views {
		names = append(names, v.Name)
	}
	return names
}

func (s *Screen) View() int {
	return s.view
}

func (s *Screen) SetView(i int) {
	if i < 0 || i >= len(s.Views()) || i == s.view {
		return
	}
	s.view = i
	s.refresh = true
}

// currentView returns the view and map shown on a non-geo screen.
func (s *Screen) currentView(a *Aerodrome) (config.View, *config.Map, bool) {
	views := a.Config.Views
	if s.geo || s.view >= len(views) {
		return config.View{}, nil, false
	}
	v := views[s.view]
	if v.Map < 0 || v.Map >= len(a.Config.Maps) {
		return config.View{}, nil, false
	}
	return v, &a.Config.Maps[v.Map], true
}

///////////////////////////////////////////////////////////////////////////
// Drawing

func (s *Screen) SetViewport(vp scope.Viewport) {
	s.vp = vp
	s.xform = s.transform(vp)
}

func (s *Screen) transform(vp scope.Viewport) math.Matrix3 {
	if vp.Geo {
		return vp.Transform()
	}

	a, ok := s.aerodrome()
	if !ok {
		return math.Identity3x3()
	}
	v, _, ok := s.currentView(a)
	if !ok {
		return math.Identity3x3()
	}
	bounds := math.Extent2D{
		P0: [2]float64{float64(v.Bounds.Min.X), float64(v.Bounds.Min.Y)},
		P1: [2]float64{float64(v.Bounds.Max.X), float64(v.Bounds.Max.Y)},
	}
	if bounds.Width() <= 0 || bounds.Height() <= 0 {
		return math.Identity3x3()
	}
	return scope.ViewTransform(vp, bounds)
}

func (s *Screen) DrawBackground(g renderer.Graphics, vp scope.Viewport) {
	a, ok := s.aerodrome()
	if !ok || vp.Degenerate() {
		return
	}
	s.SetViewport(vp)
	styles := a.Config.Styles

	if s.geo {
		for _, e := range a.Config.Edges {
			drawPaths(g, styles, s.xform, e.Display.Off)
		}
		for i, n := range a.Config.Nodes {
			drawPaths(g, styles, s.xform, nodePaths(n.Display, a.NodeOn(i)))
		}
		return
	}

	_, m, ok := s.currentView(a)
	if !ok {
		return
	}
	g.FillRect(vp.Area, m.Background.RGB())
	drawPaths(g, styles, s.xform, m.Base)
	for _, e := range m.Edges {
		drawPaths(g, styles, s.xform, e.Off)
	}
	for i, nd := range m.Nodes {
		drawPaths(g, styles, s.xform, nodePaths(nd, a.NodeOn(i)))
	}
}

// DrawForeground draws the selected node's highlight and updates the
// click targets for the current viewport.
func (s *Screen) DrawForeground(g renderer.Graphics) {
	s.targets, s.targetNodes = s.targets[:0], s.targetNodes[:0]

	a, ok := s.aerodrome()
	if !ok || s.vp.Degenerate() {
		return
	}
	styles := a.Config.Styles

	if s.geo {
		for i, n := range a.Config.Nodes {
			s.addTarget(i, project(s.xform, n.Display.Target.Points))
			if i == s.selected {
				drawPaths(g, styles, s.xform, n.Display.Selected)
			}
		}
		return
	}

	_, m, ok := s.currentView(a)
	if !ok {
		return
	}
	for i, nd := range m.Nodes {
		if i >= len(a.Config.Nodes) {
			break
		}
		s.addTarget(i, project(s.xform, nd.Target.Points))
		if i == s.selected {
			drawPaths(g, styles, s.xform, nd.Selected)
		}
	}
}

func (s *Screen) addTarget(node int, pts [][2]float64) {
	if len(pts) < 3 {
		return
	}
	s.targets = append(s.targets, pts)
	s.targetNodes = append(s.targetNodes, node)
}

func (s *Screen) ClickRegions() []image.Rectangle {
	var r []image.Rectangle
	for _, t := range s.targets {
		if pr := math.Extent2DFromPoints(t).PixelRect(); !pr.Empty() {
			r = append(r, pr)
		}
	}
	return r
}

// nodeAt returns the node whose click target contains p; later targets
// are drawn over earlier ones and so take precedence.
func (s *Screen) nodeAt(p image.Point) (int, bool) {
	pf := [2]float64{float64(p.X), float64(p.Y)}
	for i := len(s.targets) - 1; i >= 0; i-- {
		if math.PointInPolygon(pf, s.targets[i]) {
			return s.targetNodes[i], true
		}
	}
	return 0, false
}

func (s *Screen) HandleClick(p image.Point, t scope.ClickType) {
	a, ok := s.aerodrome()
	if !ok {
		return
	}
	node, ok := s.nodeAt(p)
	if !ok || node >= len(a.Config.Nodes) {
		return
	}

	switch t {
	case scope.ClickPrimary:
		id := a.Config.Nodes[node].ID
		if a.Activity() != scope.Controlling {
			s.ctx.AddMessage(fmt.Sprintf("%s: take control to switch %s", s.icao, id))
		} else if !a.Controllable(node) {
			s.ctx.AddMessage(fmt.Sprintf("%s: %s is fixed by the current profile", s.icao, id))
		} else {
			a.ToggleNode(node, s.ctx.Now())
		}

	case scope.ClickAuxiliary:
		if s.selected == node {
			s.selected = -1
		} else {
			s.selected = node
		}
	}
}

func (s *Screen) BackgroundRefreshRequired() bool {
	r := s.refresh
	s.refresh = false

	a, _ := s.aerodrome()
	if a != s.seen {
		s.seen = a
		r = true
	}
	if a != nil && a.Generation() != s.seenGeneration {
		s.seenGeneration = a.Generation()
		r = true
	}
	return r
}

func (s *Screen) Close() {
	s.SetAerodrome("")
}

///////////////////////////////////////////////////////////////////////////

func nodePaths[T config.Vertex](nd config.NodeDisplay[T], on bool) []config.Path[T] {
	if on {
		return nd.On
	}
	return nd.Off
}

// project transforms path vertices to pixels; geographic vertices are
// transformed first and then moved by their pixel offset.
func project[T config.Vertex](xf math.Matrix3, pts []T) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, v := range pts {
		switch v := any(v).(type) {
		case config.Point:
			out[i] = xf.TransformPoint([2]float64{float64(v.X), float64(v.Y)})
		case config.GeoPoint:
			p := xf.TransformPoint(v.Geo.Point2LL())
			out[i] = [2]float64{p[0] + float64(v.Offset.X), p[1] + float64(v.Offset.Y)}
		}
	}
	return out
}

func drawPaths[T config.Vertex](g renderer.Graphics, styles []config.Style, xf math.Matrix3, paths []config.Path[T]) {
	for _, path := range paths {
		if path.Style < 0 || path.Style >= len(styles) {
			continue
		}
		st := styles[path.Style]
		pts := project(xf, path.Points)

		// Hatched fills are drawn solid.
		filled := st.FillStyle != config.FillNone && len(pts) >= 3
		if filled {
			td := renderer.GetTrianglesDrawBuilder()
			td.AddPolygon(pts)
			td.GenerateCommands(g, st.FillColor.RGB())
			renderer.ReturnTrianglesDrawBuilder(td)
		}

		if st.StrokeWidth > 0 {
			ld := renderer.GetLinesDrawBuilder()
			if filled {
				ld.AddLineLoop(pts)
			} else {
				ld.AddLineStrip(pts)
			}
			ld.GenerateCommands(g, float64(st.StrokeWidth), st.StrokeColor.RGB())
			renderer.ReturnLinesDrawBuilder(ld)
		}
	}
}
