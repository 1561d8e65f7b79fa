// renderer/graphics.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Graphics is the drawing surface handed to the overlay for a single
// render phase. All coordinates are host pixels with (0,0) in the upper
// left and y increasing downward.
type Graphics interface {
	FillRect(r image.Rectangle, c RGB)
	// DrawLines strokes the polyline through the given points.
	DrawLines(strip [][2]float64, width float64, c RGB)
	FillTriangles(tris [][3][2]float64, c RGB)
	// DrawText draws s with the upper-left corner of its bounding box at p.
	DrawText(s string, p [2]float64, c RGB)
	// MeasureText returns the width and height of the bounding box of s.
	MeasureText(s string) [2]float64
}

// DefaultFace is the face used for all overlay text; its 7x13 cells are
// close to the 12px text the host radar screens use.
var DefaultFace font.Face = basicfont.Face7x13

func measureText(face font.Face, s string) [2]float64 {
	w := font.MeasureString(face, s).Ceil()
	h := face.Metrics().Height.Ceil()
	return [2]float64{float64(w), float64(h)}
}
