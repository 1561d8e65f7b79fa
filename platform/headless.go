// platform/headless.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"image"
	"slices"

	"github.com/stopbars/bars/math"
)

// HeadlessHost is a complete display host with no window: it projects
// geographic positions linearly onto its radar area, records the popups
// and screen objects the overlay asks for, and keeps the settings the
// overlay stores. It backs the barsview tool and the overlay tests.
type HeadlessHost struct {
	Area image.Rectangle
	// Center is the position shown at the center of Area.
	Center math.Point2LL
	// PixelsPerDegree gives the map scale along latitude and longitude.
	PixelsPerDegree [2]float64
	// Rotation is the clockwise rotation of the map in radians; zero is
	// north-up.
	Rotation float64

	Controller bool

	Popups    []Popup
	Objects   []ScreenObject
	Refreshes int

	settings Settings
}

// NewHeadlessHost returns a north-up host whose scale is given in pixels
// per degree of latitude; longitude is scaled by the cosine of the
// center's latitude.
func NewHeadlessHost(area image.Rectangle, center math.Point2LL, scale float64, settings Settings) *HeadlessHost {
	if settings == nil {
		settings = MemorySettings{}
	}
	return &HeadlessHost{
		Area:            area,
		Center:          center,
		PixelsPerDegree: [2]float64{scale, scale * math.Cos(math.Radians(center.Latitude()))},
		settings:        settings,
	}
}

func (h *HeadlessHost) RadarArea() image.Rectangle {
	return h.Area
}

func (h *HeadlessHost) center() [2]float64 {
	return [2]float64{
		float64(h.Area.Min.X+h.Area.Max.X) / 2,
		float64(h.Area.Min.Y+h.Area.Max.Y) / 2,
	}
}

// PositionToPixel returns the pixel at which p is displayed.
func (h *HeadlessHost) PositionToPixel(p math.Point2LL) [2]float64 {
	d := math.Sub2LL(p, h.Center)
	a := d.Longitude() * h.PixelsPerDegree[1]
	b := d.Latitude() * h.PixelsPerDegree[0]
	s, c := math.Sin(h.Rotation), math.Cos(h.Rotation)
	ctr := h.center()
	return [2]float64{ctr[0] + a*c + b*s, ctr[1] + a*s - b*c}
}

// PixelToPosition returns the position displayed at pixel p.
func (h *HeadlessHost) PixelToPosition(p image.Point) math.Point2LL {
	ctr := h.center()
	dx, dy := float64(p.X)-ctr[0], float64(p.Y)-ctr[1]
	s, c := math.Sin(h.Rotation), math.Cos(h.Rotation)
	// The rotation matrix used by PositionToPixel is its own inverse.
	a, b := c*dx+s*dy, s*dx-c*dy
	return math.LL(h.Center.Latitude()+b/h.PixelsPerDegree[0],
		h.Center.Longitude()+a/h.PixelsPerDegree[1])
}

// DisplayArea returns the south-west and north-east corners of the
// smallest lat/long box covering the radar area.
func (h *HeadlessHost) DisplayArea() (math.Point2LL, math.Point2LL) {
	corners := []image.Point{h.Area.Min, {h.Area.Max.X, h.Area.Min.Y}, h.Area.Max, {h.Area.Min.X, h.Area.Max.Y}}
	var lats, lons []float64
	for _, c := range corners {
		p := h.PixelToPosition(c)
		lats = append(lats, p.Latitude())
		lons = append(lons, p.Longitude())
	}
	return math.LL(slices.Min(lats), slices.Min(lons)), math.LL(slices.Max(lats), slices.Max(lons))
}

func (h *HeadlessHost) OpenPopupList(area image.Rectangle, title string, columns int) {
	h.Popups = append(h.Popups, Popup{Kind: PopupList, Title: title, Area: area, Columns: columns})
}

// AddPopupListElement adds an item to the most recently opened popup
// list; it is ignored if none is open.
func (h *HeadlessHost) AddPopupListElement(item PopupItem) {
	if n := len(h.Popups); n > 0 && h.Popups[n-1].Kind == PopupList {
		h.Popups[n-1].Items = append(h.Popups[n-1].Items, item)
	}
}

func (h *HeadlessHost) OpenPopupEdit(area image.Rectangle, tag int32, text string) {
	h.Popups = append(h.Popups, Popup{Kind: PopupEdit, Area: area, Text: text, Tag: tag})
}

// LastPopup returns the most recently opened popup, if any.
func (h *HeadlessHost) LastPopup() *Popup {
	if len(h.Popups) == 0 {
		return nil
	}
	return &h.Popups[len(h.Popups)-1]
}

func (h *HeadlessHost) AddScreenObject(obj ScreenObject) {
	h.Objects = append(h.Objects, obj)
}

// BeginFrame discards the screen objects registered during the previous
// frame.
func (h *HeadlessHost) BeginFrame() {
	h.Objects = h.Objects[:0]
}

// ObjectAt returns the topmost screen object containing p.
func (h *HeadlessHost) ObjectAt(p image.Point) (ScreenObject, bool) {
	for i := len(h.Objects) - 1; i >= 0; i-- {
		if p.In(h.Objects[i].Area) {
			return h.Objects[i], true
		}
	}
	return ScreenObject{}, false
}

func (h *HeadlessHost) Settings() Settings {
	return h.settings
}

func (h *HeadlessHost) RefreshMapContent() {
	h.Refreshes++
}

func (h *HeadlessHost) IsController() bool {
	return h.Controller
}
