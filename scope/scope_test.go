// scope/scope_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scope

import (
	"image"
	"slices"
	"testing"

	"github.com/stopbars/bars/math"
	"github.com/stopbars/bars/platform"
	"github.com/stopbars/bars/renderer"
)

type fakeClient struct {
	conn     ConnectionState
	icao     string
	activity ActivityState

	profiles []string
	profile  int
	presets  []string
	applied  []int
	views    []string
	view     int

	viewport   Viewport
	background int
	foreground int
	regions    []image.Rectangle
	clicks     []ClickType
	refresh    bool
	closed     bool
}

func (c *fakeClient) ConnectionState() ConnectionState { return c.conn }
func (c *fakeClient) Aerodrome() (string, bool) { return c.icao, c.icao != "" }
func (c *fakeClient) SetAerodrome(icao string) { c.icao = icao }
func (c *fakeClient) Activity() ActivityState { return c.activity }
func (c *fakeClient) SetActivity(a ActivityState) { c.activity = a }
func (c *fakeClient) Profiles() []string { return c.profiles }
func (c *fakeClient) Profile() int { return c.profile }
func (c *fakeClient) SetProfile(i int) { c.profile = i; c.refresh = true }
func (c *fakeClient) Presets() []string { return c.presets }
func (c *fakeClient) ApplyPreset(i int) { c.applied = append(c.applied, i) }
func (c *fakeClient) Views() []string { return c.views }
func (c *fakeClient) View() int { return c.view }
func (c *fakeClient) SetView(i int) { c.view = i }
func (c *fakeClient) SetViewport(vp Viewport) { c.viewport = vp }
func (c *fakeClient) DrawForeground(g renderer.Graphics) {
	c.foreground++
}
func (c *fakeClient) DrawBackground(g renderer.Graphics, vp Viewport) {
	c.background++
}
func (c *fakeClient) ClickRegions() []image.Rectangle { return c.regions }
func (c *fakeClient) HandleClick(p image.Point, t ClickType) { c.clicks = append(c.clicks, t) }
func (c *fakeClient) Close() { c.closed = true }
func (c *fakeClient) BackgroundRefreshRequired() bool {
	r := c.refresh
	c.refresh = false
	return r
}

var testArea = image.Rect(0, 0, 400, 300)

func makeTestScreen(geo bool) (*Screen, *fakeClient, *platform.HeadlessHost) {
	c := &fakeClient{
		conn:     ConnectedDirect,
		icao:     "EGLL",
		activity: Observing,
		profiles: []string{"Normal", "Low visibility", "Night"},
		profile:  1,
		presets:  []string{"All on", "All off"},
		views:    []string{"Whole aerodrome", "North"},
	}
	h := platform.NewHeadlessHost(testArea, math.LL(51.47, -0.46), 10000, nil)
	return NewScreen(c, h, geo, nil), c, h
}

func TestTagFunctionRoundTrip(t *testing.T) {
	for k := TagNone; k < tagKindCount; k++ {
		for p := uint32(0); p <= MaxTagPayload; p++ {
			fn := TagFunction{Kind: k, Payload: p}
			if got := DecodeTagFunction(fn.Encode()); got != fn {
				t.Fatalf("%v round-tripped to %v", fn, got)
			}
		}
	}

	if v := (TagFunction{Kind: TagOpenSelectView, Payload: 1}).Encode(); v != 0x109 {
		t.Errorf("unexpected encoding %#x", v)
	}
	if s := DecodeTagFunction(0x205).String(); s != "OpenSelectProfile(2)" {
		t.Errorf("got %q", s)
	}
}

func TestPresent(t *testing.T) {
	for _, act := range []ActivityState{ActivityNone, Observing, Controlling} {
		for _, active := range []bool{false, true} {
			for _, state := range []ConnectionState{Disconnected, Poisoned} {
				p := Present(state, act, active)
				if p.Icon != IconDisconnected || !p.Color.Equals(ColorDisconnected) {
					t.Errorf("%s/%s/%v: got %+v", state, act, active, p)
				}
			}
		}
	}

	for _, test := range []struct {
		state    ConnectionState
		activity ActivityState
		active   bool
		icon     Icon
		color    renderer.RGB
	}{
		{ConnectedLocal, Controlling, true, IconLocal, ColorControlling},
		{ConnectedLocal, Observing, true, IconLocal, ColorObserving},
		{ConnectedLocal, Controlling, false, IconLocal, ColorDisconnected},
		{ConnectedDirect, Observing, true, IconDirect, ColorObserving},
		{ConnectedProxy, Controlling, true, IconDirect, ColorControlling},
		{ConnectedProxy, ActivityNone, true, IconDirect, ColorDisconnected},
	} {
		p := Present(test.state, test.activity, test.active)
		if p.Icon != test.icon || !p.Color.Equals(test.color) {
			t.Errorf("%s/%s/%v: got %+v", test.state, test.activity, test.active, p)
		}
	}
}

func TestMenuComputeRectMargins(t *testing.T) {
	offsets := []int{-100, -1, 0, 1, 2, 37, 250, 1000, 1 << 20}
	for w := 60; w <= 800; w += 37 {
		for h := 40; h <= 600; h += 23 {
			area := image.Rect(13, 7, 13+w, 7+h)
			for _, ox := range offsets {
				for _, oy := range offsets {
					m := MenuWidget{Offset: image.Pt(ox, oy)}
					r := m.ComputeRect(area, 28)
					if r.Max.X < area.Min.X+MenuMarginX || r.Max.X > area.Max.X {
						t.Fatalf("area %v offset (%d,%d): rect %v violates horizontal margin", area, ox, oy, r)
					}
					if r.Min.Y > area.Max.Y-MenuMarginY || r.Min.Y < area.Min.Y {
						t.Fatalf("area %v offset (%d,%d): rect %v violates vertical margin", area, ox, oy, r)
					}
				}
			}
		}
	}

	var m MenuWidget
	r := m.ComputeRect(testArea, 28)
	if want := image.Rect(400-2-44, 2, 400-2, 2+16); r != want {
		t.Errorf("default placement: got %v, expected %v", r, want)
	}
}

func TestMenuDrag(t *testing.T) {
	s, _, h := makeTestScreen(true)
	settings := h.Settings()

	s.OnMoveScreenObject(platform.ScreenObjectMenu, image.Pt(100, 50), image.Rectangle{}, false)
	if s.Menu.Offset != image.Pt(292, 42) {
		t.Errorf("got offset %v, expected (292,42)", s.Menu.Offset)
	}
	if _, ok := settings.Get(SettingMenuX); ok {
		t.Errorf("offset persisted before release")
	}

	s.OnMoveScreenObject(platform.ScreenObjectMenu, image.Pt(100, 50), image.Rectangle{}, true)
	x, _ := settings.Get(SettingMenuX)
	y, _ := settings.Get(SettingMenuY)
	if x != "292" || y != "42" {
		t.Errorf("persisted (%q,%q), expected (\"292\",\"42\")", x, y)
	}

	// Dragging past the edges floors the offset at 1.
	s.OnMoveScreenObject(platform.ScreenObjectMenu, image.Pt(500, -20), image.Rectangle{}, false)
	if s.Menu.Offset != image.Pt(1, 1) {
		t.Errorf("got offset %v, expected (1,1)", s.Menu.Offset)
	}

	// Other objects don't move the menu.
	s.OnMoveScreenObject(platform.ScreenObjectClickRegion, image.Pt(100, 50), image.Rectangle{}, true)
	if s.Menu.Offset != image.Pt(1, 1) {
		t.Errorf("click region drag moved the menu")
	}
}

func TestMenuLoad(t *testing.T) {
	var m MenuWidget
	m.Load(platform.MemorySettings{SettingMenuX: "17", SettingMenuY: "12abc"})
	if m.Offset != image.Pt(17, 0) {
		t.Errorf("got %v", m.Offset)
	}

	m.Load(platform.MemorySettings{})
	if m.Offset != (image.Point{}) {
		t.Errorf("got %v", m.Offset)
	}
}

func TestMenuLabel(t *testing.T) {
	for _, test := range []struct {
		icao string
		ok   bool
		want string
	}{
		{"", false, "BARS"},
		{"EGLL", true, "EGLL"},
		{"EG", true, "  EG"},
		{"EGLLX", true, "EGLL"},
	} {
		if got := MenuLabel(test.icao, test.ok); got != test.want {
			t.Errorf("MenuLabel(%q, %v) = %q, expected %q", test.icao, test.ok, got, test.want)
		}
	}
}

func TestDeferredSelectProfile(t *testing.T) {
	s, c, h := makeTestScreen(false)
	area := image.Rect(10, 10, 60, 30)

	s.OnFunctionCall(TagFunction{Kind: TagOpenSelectProfile}.Encode(), "", image.Point{}, area)
	if len(h.Popups) != 0 {
		t.Fatalf("popup opened before the next frame: %+v", h.Popups)
	}
	if fn, ok := s.Pending(); !ok || fn != (TagFunction{Kind: TagOpenSelectProfile, Payload: 1}) {
		t.Fatalf("pending: %v %v", fn, ok)
	}

	var cb renderer.CommandBuffer
	s.OnRefresh(&cb, PhaseAfterLists)

	if _, ok := s.Pending(); ok {
		t.Errorf("pending function not consumed")
	}
	if len(h.Popups) != 1 {
		t.Fatalf("expected one popup, got %d", len(h.Popups))
	}
	p := h.Popups[0]
	if p.Title != "Select profile" || p.Area != area {
		t.Errorf("unexpected popup %+v", p)
	}
	if !slices.Equal(p.Labels(), c.profiles) {
		t.Errorf("popup lists %v, expected %v", p.Labels(), c.profiles)
	}
	for i, it := range p.Items {
		want := platform.PopupUnchecked
		if i == c.profile {
			want = platform.PopupChecked
		}
		if it.Check != want {
			t.Errorf("item %d: check %v, expected %v", i, it.Check, want)
		}
		// Not controlling: items are shown but can't be chosen.
		if !it.Disabled || DecodeTagFunction(it.Tag).Kind != TagNone {
			t.Errorf("item %d should be disabled: %+v", i, it)
		}
	}

	// While controlling, selecting an item submits it.
	c.activity = Controlling
	h.Popups = nil
	s.OnFunctionCall(TagFunction{Kind: TagOpenSelectProfile, Payload: 1}.Encode(), "", image.Point{}, area)
	it := h.Popups[0].Items[2]
	if it.Disabled {
		t.Fatalf("item disabled while controlling")
	}
	refreshes := h.Refreshes
	s.OnFunctionCall(it.Tag, "", image.Point{}, area)
	if c.profile != 2 {
		t.Errorf("profile %d, expected 2", c.profile)
	}
	if h.Refreshes != refreshes+1 {
		t.Errorf("background refresh not forwarded to host")
	}
}

func TestPendingOverwrite(t *testing.T) {
	s, c, h := makeTestScreen(false)
	c.activity = Controlling

	s.OnFunctionCall(TagFunction{Kind: TagOpenSelectProfile}.Encode(), "", image.Point{}, image.Rectangle{})
	s.OnFunctionCall(TagFunction{Kind: TagOpenSelectPreset}.Encode(), "", image.Point{}, image.Rectangle{})
	s.OnFunctionCall(TagFunction{Kind: TagOpenSelectView}.Encode(), "", image.Point{}, image.Rectangle{})

	var cb renderer.CommandBuffer
	s.OnRefresh(&cb, PhaseAfterLists)
	if len(h.Popups) != 1 || h.Popups[0].Title != "Select view" {
		t.Fatalf("expected only the view list, got %+v", h.Popups)
	}
	if it := h.Popups[0].Items[c.view]; it.Check != platform.PopupChecked || it.Disabled {
		t.Errorf("current view item: %+v", it)
	}

	s.OnRefresh(&cb, PhaseAfterLists)
	if len(h.Popups) != 1 {
		t.Errorf("pending function dispatched twice")
	}

	h.Popups = nil
	s.OnFunctionCall(TagFunction{Kind: TagOpenSelectPreset, Payload: 1}.Encode(), "", image.Point{}, image.Rectangle{})
	s.OnFunctionCall(h.Popups[0].Items[1].Tag, "", image.Point{}, image.Rectangle{})
	if !slices.Equal(c.applied, []int{1}) {
		t.Errorf("applied presets %v", c.applied)
	}
}

func TestSubmitEditAerodrome(t *testing.T) {
	s, c, h := makeTestScreen(true)

	s.OnFunctionCall(TagFunction{Kind: TagSubmitEditAerodrome}.Encode(), "", image.Point{}, image.Rectangle{})
	if _, ok := c.Aerodrome(); ok {
		t.Errorf("aerodrome not cleared")
	}
	if v, ok := h.Settings().Get(SettingAerodrome); !ok || v != "" {
		t.Errorf("cleared aerodrome persisted as %q, %v", v, ok)
	}

	s.OnFunctionCall(TagFunction{Kind: TagSubmitEditAerodrome}.Encode(), "EGLL", image.Point{}, image.Rectangle{})
	if icao, ok := c.Aerodrome(); !ok || icao != "EGLL" {
		t.Errorf("aerodrome %q, %v", icao, ok)
	}
	if v, _ := h.Settings().Get(SettingAerodrome); v != "EGLL" {
		t.Errorf("persisted %q", v)
	}

	s.OnFunctionCall(TagFunction{Kind: TagOpenEditAerodrome}.Encode(), "", image.Point{}, image.Rectangle{})
	p := h.LastPopup()
	if p == nil || p.Kind != platform.PopupEdit || p.Text != "EGLL" ||
		DecodeTagFunction(p.Tag).Kind != TagSubmitEditAerodrome {
		t.Errorf("unexpected edit popup %+v", p)
	}
}

func TestOpenMenu(t *testing.T) {
	open := func(s *Screen, h *platform.HeadlessHost) *platform.Popup {
		h.Popups = nil
		s.OnFunctionCall(TagFunction{Kind: TagOpenMenu}.Encode(), "", image.Point{}, image.Rectangle{})
		return h.LastPopup()
	}

	t.Run("observer", func(t *testing.T) {
		s, _, h := makeTestScreen(false)
		p := open(s, h)
		if !slices.Equal(p.Labels(), []string{"Active aerodrome", "Control", "Profiles", "Presets", "Views"}) {
			t.Errorf("items %v", p.Labels())
		}
		if it, _ := p.Item("Control"); !it.Disabled || it.Check != platform.PopupUnchecked ||
			DecodeTagFunction(it.Tag).Kind != TagNone {
			t.Errorf("Control: %+v", it)
		}
		if it, _ := p.Item("Presets"); !it.Disabled || DecodeTagFunction(it.Tag).Kind != TagNone {
			t.Errorf("Presets: %+v", it)
		}
		if it, _ := p.Item("Profiles"); it.Disabled ||
			DecodeTagFunction(it.Tag) != (TagFunction{Kind: TagOpenSelectProfile}) {
			t.Errorf("Profiles: %+v", it)
		}
	})

	t.Run("controller", func(t *testing.T) {
		s, c, h := makeTestScreen(true)
		h.Controller = true
		c.activity = Controlling
		p := open(s, h)
		if !slices.Equal(p.Labels(), []string{"Active aerodrome", "Control", "Profiles", "Presets"}) {
			t.Errorf("geo items %v", p.Labels())
		}
		it, _ := p.Item("Control")
		if it.Disabled || it.Check != platform.PopupChecked {
			t.Errorf("Control: %+v", it)
		}

		s.OnFunctionCall(it.Tag, "", image.Point{}, image.Rectangle{})
		if c.activity != Observing {
			t.Errorf("toggle from controlling gave %s", c.activity)
		}
		s.OnFunctionCall(it.Tag, "", image.Point{}, image.Rectangle{})
		if c.activity != Controlling {
			t.Errorf("toggle from observing gave %s", c.activity)
		}
	})

	t.Run("local", func(t *testing.T) {
		s, c, h := makeTestScreen(true)
		c.conn = ConnectedLocal
		c.presets = nil
		p := open(s, h)
		if _, ok := p.Item("Presets"); ok {
			t.Errorf("Presets shown with no presets")
		}
		if it, _ := p.Item("Control"); it.Disabled {
			t.Errorf("Control disabled for local connection")
		}
	})
}

func TestMenuClick(t *testing.T) {
	s, c, h := makeTestScreen(true)
	area := image.Rect(300, 2, 398, 18)

	s.OnClickScreenObject(platform.ScreenObjectMenu, image.Pt(350, 10), area, platform.MouseButtonPrimary)
	if p := h.LastPopup(); p == nil || p.Title != "BARS menu" || p.Area != area {
		t.Errorf("left click: %+v", p)
	}

	s.OnClickScreenObject(platform.ScreenObjectMenu, image.Pt(350, 10), area, platform.MouseButtonSecondary)
	if p := h.LastPopup(); p.Kind != platform.PopupEdit {
		t.Errorf("right click: %+v", p)
	}

	c.conn = Disconnected
	h.Popups = nil
	s.OnClickScreenObject(platform.ScreenObjectMenu, image.Pt(350, 10), area, platform.MouseButtonPrimary)
	if p := h.LastPopup(); p == nil || p.Kind != platform.PopupEdit {
		t.Errorf("left click while disconnected: %+v", p)
	}

	s.OnClickScreenObject(platform.ScreenObjectClickRegion, image.Pt(5, 5), area, platform.MouseButtonPrimary)
	s.OnClickScreenObject(platform.ScreenObjectClickRegion, image.Pt(5, 5), area, platform.MouseButtonSecondary)
	if !slices.Equal(c.clicks, []ClickType{ClickPrimary, ClickAuxiliary}) {
		t.Errorf("clicks %v", c.clicks)
	}
}

func TestRefreshPhases(t *testing.T) {
	t.Run("messages", func(t *testing.T) {
		s, c, _ := makeTestScreen(false)
		var cb renderer.CommandBuffer

		c.conn = Disconnected
		s.OnRefresh(&cb, PhaseBackground)
		c.conn = ConnectedDirect
		c.views = nil
		s.OnRefresh(&cb, PhaseBackground)

		if texts := cb.Texts(); !slices.Equal(texts, []string{"Disconnected", "No views defined"}) {
			t.Errorf("texts %v", texts)
		}
		if c.background != 0 {
			t.Errorf("client background drawn with a message shown")
		}
	})

	t.Run("frame", func(t *testing.T) {
		s, c, h := makeTestScreen(true)
		c.conn = Disconnected
		c.regions = []image.Rectangle{image.Rect(1, 1, 5, 5), image.Rect(10, 10, 20, 20)}
		c.refresh = true

		var cb renderer.CommandBuffer
		for _, phase := range Phases {
			s.OnRefresh(&cb, phase)
		}

		if c.background != 1 || c.foreground != 1 {
			t.Errorf("background %d foreground %d", c.background, c.foreground)
		}
		if !c.viewport.Geo || c.viewport.Area != testArea {
			t.Errorf("viewport not published: %+v", c.viewport)
		}

		var kinds []platform.ScreenObjectKind
		for _, obj := range h.Objects {
			kinds = append(kinds, obj.Kind)
		}
		if !slices.Equal(kinds, []platform.ScreenObjectKind{platform.ScreenObjectClickRegion,
			platform.ScreenObjectClickRegion, platform.ScreenObjectMenu}) {
			t.Errorf("screen objects %v", kinds)
		}
		if menu := h.Objects[2]; !menu.Moveable || menu.Area != s.Menu.ComputeRect(testArea, 28) {
			t.Errorf("menu object %+v", menu)
		}
		if texts := cb.Texts(); !slices.Equal(texts, []string{"EGLL"}) {
			t.Errorf("texts %v", texts)
		}
		if h.Refreshes != 1 {
			t.Errorf("refreshes %d", h.Refreshes)
		}

		// Disconnected: the widget is dark whatever the activity.
		fill := cb.Commands[0]
		if fill.Kind != renderer.RendererFillRect || !fill.Color.Equals(ColorDisconnected) {
			t.Errorf("menu fill %+v", fill)
		}
	})
}

func TestContentLifecycle(t *testing.T) {
	s, c, h := makeTestScreen(true)
	c.icao = ""
	h.Settings().Set(SettingAerodrome, "", "EGKK")
	h.Settings().Set(SettingMenuX, "", "30")
	h.Settings().Set(SettingMenuY, "", "junk")

	s.OnContentLoaded()
	if c.icao != "EGKK" || s.Menu.Offset != image.Pt(30, 0) {
		t.Errorf("restored %q %v", c.icao, s.Menu.Offset)
	}

	s.OnFunctionCall(TagFunction{Kind: TagOpenSelectView}.Encode(), "", image.Point{}, image.Rectangle{})
	s.OnContentClosed()
	if !c.closed {
		t.Errorf("client not closed")
	}
	if _, ok := s.Pending(); ok {
		t.Errorf("pending function survived close")
	}
}

func TestContentLoadedNormalizesAerodrome(t *testing.T) {
	for _, stored := range []string{" egkk ", "egkk", "EGKK\t"} {
		s, c, h := makeTestScreen(true)
		c.icao = ""
		h.Settings().Set(SettingAerodrome, "", stored)

		s.OnContentLoaded()
		if c.icao != "EGKK" {
			t.Errorf("stored %q: restored %q", stored, c.icao)
		}
	}

	// Whitespace alone is no aerodrome.
	s, c, h := makeTestScreen(true)
	c.icao = ""
	h.Settings().Set(SettingAerodrome, "", "  ")
	s.OnContentLoaded()
	if c.icao != "" {
		t.Errorf("restored %q from blank setting", c.icao)
	}
}

func TestComputeViewport(t *testing.T) {
	for _, deg := range []float64{0, 25, 90, -140} {
		_, _, h := makeTestScreen(true)
		h.Area = image.Rect(20, 10, 420, 310)
		h.Rotation = math.Radians(deg)

		vp := ComputeViewport(h, true)
		if vp.Degenerate() {
			t.Fatalf("rotation %f: unexpected degenerate viewport %+v", deg, vp)
		}
		if math.Abs(vp.Scaling[0]-h.PixelsPerDegree[0]) > 1e-6*h.PixelsPerDegree[0] ||
			math.Abs(vp.Scaling[1]-h.PixelsPerDegree[1]) > 1e-6*h.PixelsPerDegree[1] {
			t.Errorf("rotation %f: scaling %v, expected %v", deg, vp.Scaling, h.PixelsPerDegree)
		}
		if vp.Size != [2]float64{400, 300} {
			t.Errorf("size %v", vp.Size)
		}

		xf := vp.Transform()
		for _, p := range []math.Point2LL{math.LL(51.47, -0.46), math.LL(51.4712, -0.4631), math.LL(51.468, -0.4555)} {
			want := h.PositionToPixel(p)
			got := xf.TransformPoint(p)
			if math.Abs(got[0]-want[0]) > 1e-3 || math.Abs(got[1]-want[1]) > 1e-3 {
				t.Errorf("rotation %f: %v transformed to %v, host shows it at %v", deg, p, got, want)
			}
		}
	}

	_, _, h := makeTestScreen(false)
	vp := ComputeViewport(h, false)
	if vp.Geo || !vp.Origin.IsZero() || vp.Size != [2]float64{400, 300} || vp.Degenerate() {
		t.Errorf("pixel viewport %+v", vp)
	}
}

type pointHost struct {
	*platform.HeadlessHost
}

func (h pointHost) DisplayArea() (math.Point2LL, math.Point2LL) {
	return h.Center, h.Center
}

func TestDegenerateViewport(t *testing.T) {
	s, c, h := makeTestScreen(true)
	s.host = pointHost{h}

	vp := ComputeViewport(s.host, true)
	if !vp.Degenerate() {
		t.Errorf("expected degenerate viewport, got %+v", vp)
	}
	if vp.Transform().IsFinite() {
		t.Errorf("expected non-finite transform")
	}

	// Degenerate viewports are passed through rather than treated as
	// errors.
	var cb renderer.CommandBuffer
	for _, phase := range Phases {
		s.OnRefresh(&cb, phase)
	}
	if c.background != 1 || !c.viewport.Degenerate() {
		t.Errorf("client did not receive the degenerate viewport")
	}
}

func TestViewTransform(t *testing.T) {
	vp := Viewport{Area: image.Rect(10, 0, 410, 300), Size: [2]float64{400, 300}}

	// Wide bounds are letterboxed vertically.
	xf := ViewTransform(vp, math.Extent2D{P0: [2]float64{0, 0}, P1: [2]float64{100, 50}})
	if p := xf.TransformPoint([2]float64{0, 0}); p != [2]float64{10, 50} {
		t.Errorf("got %v", p)
	}
	if p := xf.TransformPoint([2]float64{100, 50}); p != [2]float64{410, 250} {
		t.Errorf("got %v", p)
	}

	// Tall bounds are letterboxed horizontally.
	xf = ViewTransform(vp, math.Extent2D{P0: [2]float64{-50, 0}, P1: [2]float64{50, 100}})
	if p := xf.TransformPoint([2]float64{-50, 0}); p != [2]float64{60, 0} {
		t.Errorf("got %v", p)
	}
	if p := xf.TransformPoint([2]float64{50, 100}); p != [2]float64{360, 300} {
		t.Errorf("got %v", p)
	}
}
