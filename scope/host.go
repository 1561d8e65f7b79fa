// scope/host.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scope

import (
	"image"

	"github.com/stopbars/bars/math"
	"github.com/stopbars/bars/platform"
	"github.com/stopbars/bars/renderer"
)

// Host is the display application the overlay is drawn in.
type Host interface {
	RadarArea() image.Rectangle
	// DisplayArea returns the south-west and north-east corners of the
	// geographic area currently displayed.
	DisplayArea() (math.Point2LL, math.Point2LL)
	PixelToPosition(p image.Point) math.Point2LL
	PositionToPixel(p math.Point2LL) [2]float64

	OpenPopupList(area image.Rectangle, title string, columns int)
	AddPopupListElement(item platform.PopupItem)
	OpenPopupEdit(area image.Rectangle, tag int32, text string)

	// AddScreenObject registers a hit-testable region for the current
	// frame.
	AddScreenObject(obj platform.ScreenObject)

	Settings() platform.Settings
	// RefreshMapContent asks the host to redraw the background phase.
	RefreshMapContent()
	// IsController reports whether the user is logged in to the host as
	// a controller.
	IsController() bool
}

var _ Host = (*platform.HeadlessHost)(nil)

// Client is the lighting-control session as seen from one screen.
type Client interface {
	ConnectionState() ConnectionState

	// Aerodrome returns the ICAO code of the screen's aerodrome, if one
	// is selected.
	Aerodrome() (string, bool)
	// SetAerodrome selects an aerodrome; the empty string clears it.
	SetAerodrome(icao string)

	Activity() ActivityState
	SetActivity(a ActivityState)

	Profiles() []string
	Profile() int
	SetProfile(i int)

	// Presets returns the presets of the current profile.
	Presets() []string
	ApplyPreset(i int)

	Views() []string
	View() int
	SetView(i int)

	SetViewport(vp Viewport)
	DrawBackground(g renderer.Graphics, vp Viewport)
	DrawForeground(g renderer.Graphics)

	// ClickRegions returns the regions drawn by DrawForeground that
	// should receive clicks.
	ClickRegions() []image.Rectangle
	HandleClick(p image.Point, t ClickType)

	// BackgroundRefreshRequired reports whether the background content
	// has changed since it was last asked; asking clears the request.
	BackgroundRefreshRequired() bool

	// Close releases the client's resources when the screen goes away.
	Close()
}
