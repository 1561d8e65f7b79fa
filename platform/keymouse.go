// platform/keymouse.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"image"
)

type MouseButton int

const (
	MouseButtonPrimary MouseButton = iota
	MouseButtonSecondary
	MouseButtonTertiary
	MouseButtonCount
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonPrimary:
		return "primary"
	case MouseButtonSecondary:
		return "secondary"
	case MouseButtonTertiary:
		return "tertiary"
	default:
		return "unknown"
	}
}

// MouseState holds the pointer state the host reports for a single
// event: where the pointer is, which buttons changed, and whether a drag
// of a moveable screen object is in progress or was just released.
type MouseState struct {
	Pos      image.Point
	Down     [MouseButtonCount]bool
	Clicked  [MouseButtonCount]bool
	Released [MouseButtonCount]bool
	Dragging [MouseButtonCount]bool
}

// ScreenObjectKind identifies the kind of a hit-testable region the
// overlay registers with the host each frame.
type ScreenObjectKind int

const (
	ScreenObjectClickRegion ScreenObjectKind = 1
	ScreenObjectMenu        ScreenObjectKind = 2
)

func (k ScreenObjectKind) String() string {
	switch k {
	case ScreenObjectClickRegion:
		return "click region"
	case ScreenObjectMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// ScreenObject is a region registered with the host for the current
// frame. Moveable objects receive drag events.
type ScreenObject struct {
	Kind     ScreenObjectKind
	ID       string
	Area     image.Rectangle
	Moveable bool
	Message  string
}
