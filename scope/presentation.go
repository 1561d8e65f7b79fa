// scope/presentation.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scope

import (
	"github.com/stopbars/bars/renderer"
)

var (
	ColorDisconnected = renderer.RGBFromHex(0x222222)
	ColorObserving    = renderer.RGBFromHex(0x1e40af)
	ColorControlling  = renderer.RGBFromHex(0x166534)
	ColorForeground   = renderer.RGBFromHex(0xcccccc)
	ColorMessage      = renderer.RGBFromHex(0xffffff)
)

// Icon is a polyline drawn inside the menu widget's icon cell, in pixels
// relative to the cell's upper-left corner.
type Icon [5][2]float64

var (
	IconDisconnected = Icon{{4, 4}, {8, 8}, {6, 6}, {4, 8}, {8, 4}}
	IconDirect       = Icon{{6, 8}, {6, 4}, {4, 6}, {6, 4}, {8, 6}}
	IconLocal        = Icon{{4, 4}, {4, 4}, {4, 4}, {4, 8}, {8, 8}}
)

type Presentation struct {
	Icon  Icon
	Color renderer.RGB
}

// Present returns how the menu widget shows the given state. The icon
// reflects how we are connected; the fill reflects what we are doing at
// the active aerodrome and stays dark unless connected with one active.
func Present(state ConnectionState, activity ActivityState, active bool) Presentation {
	p := Presentation{Icon: IconDisconnected, Color: ColorDisconnected}

	switch state {
	case ConnectedDirect, ConnectedProxy:
		p.Icon = IconDirect
	case ConnectedLocal:
		p.Icon = IconLocal
	}

	if state.Connected() && active {
		switch activity {
		case Observing:
			p.Color = ColorObserving
		case Controlling:
			p.Color = ColorControlling
		}
	}

	return p
}
