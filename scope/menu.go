// scope/menu.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scope

import (
	"fmt"
	"image"
	"strconv"

	"github.com/stopbars/bars/math"
	"github.com/stopbars/bars/platform"
)

const (
	MenuIconHeight = 12
	MenuPadding    = 2

	// The widget is kept at least this far from the left and bottom edges
	// of the drawing area.
	MenuMarginX = 40
	MenuMarginY = 20

	defaultMenuOffset = 2

	SettingAerodrome = "aerodrome"
	SettingMenuX     = "menuX"
	SettingMenuY     = "menuY"

	menuLabelPlaceholder = "BARS"
)

// MenuWidget is the status button anchored near the upper-right of the
// drawing area. Offset is measured from the right and top edges; zero
// means the default placement.
type MenuWidget struct {
	Offset image.Point
}

// ComputeRect returns the widget's rectangle for the given drawing area
// and label width.
func (m *MenuWidget) ComputeRect(area image.Rectangle, labelWidth int) image.Rectangle {
	place := func(offset, limit int) int {
		if offset == 0 {
			offset = defaultMenuOffset
		}
		return max(1, min(offset, limit))
	}
	dx := place(m.Offset.X, area.Dx()-MenuMarginX)
	dy := place(m.Offset.Y, area.Dy()-MenuMarginY)

	right, top := area.Max.X-dx, area.Min.Y+dy
	w := labelWidth + 2*MenuPadding + MenuIconHeight
	h := 2*MenuPadding + MenuIconHeight
	return image.Rect(right-w, top, right, top+h)
}

// Drag moves the widget so that its icon is under the pointer.
func (m *MenuWidget) Drag(area image.Rectangle, p image.Point) {
	const grab = MenuPadding + MenuIconHeight/2
	m.Offset = image.Pt(max(1, area.Max.X-p.X-grab), max(1, p.Y-area.Min.Y-grab))
}

func (m *MenuWidget) Save(s platform.Settings) {
	s.Set(SettingMenuX, "Menu X position", strconv.Itoa(m.Offset.X))
	s.Set(SettingMenuY, "Menu Y position", strconv.Itoa(m.Offset.Y))
}

// Load restores the offset saved by Save. Missing or malformed values
// give the default placement.
func (m *MenuWidget) Load(s platform.Settings) {
	get := func(key string) int {
		v, ok := s.Get(key)
		if !ok {
			return 0
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return n
	}
	m.Offset = image.Pt(get(SettingMenuX), get(SettingMenuY))
}

// MenuLabel returns the text shown in the widget: the active aerodrome
// in a four character field, or a placeholder if there is none.
func MenuLabel(aerodrome string, ok bool) string {
	if !ok {
		return menuLabelPlaceholder
	}
	return fmt.Sprintf("%4.4s", aerodrome)
}

// IconPoints returns the icon's polyline placed in the icon cell of the
// widget rectangle r.
func IconPoints(icon Icon, r image.Rectangle) [][2]float64 {
	org := [2]float64{float64(r.Min.X + MenuPadding), float64(r.Min.Y + MenuPadding)}
	pts := make([][2]float64, len(icon))
	for i, p := range icon {
		pts[i] = math.Add2(org, p)
	}
	return pts
}
