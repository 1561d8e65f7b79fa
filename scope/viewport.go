// scope/viewport.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scope

import (
	"image"

	"github.com/stopbars/bars/math"
)

// Viewport relates the host's drawing area to the coordinates overlay
// content is specified in. It is recomputed every frame since the host
// may pan, zoom, or rotate the display between frames.
type Viewport struct {
	Geo  bool
	Area image.Rectangle

	// Geo viewports only: the position at the upper-left pixel of Area,
	// pixels per degree of latitude and longitude, and the map rotation.
	// Rotation is pi/2 when north is up.
	Origin   math.Point2LL
	Scaling  [2]float64
	Rotation float64

	Size [2]float64
}

// ComputeViewport derives the viewport for the current frame from the
// host. In geo mode, scaling and rotation are measured by projecting the
// corners of the host's display area: the distance in pixels between the
// south-west corner and the north (or east) reference, divided by the
// difference in latitude (or longitude), gives pixels per degree
// regardless of how the map is rotated.
func ComputeViewport(h Host, geo bool) Viewport {
	area := h.RadarArea()
	vp := Viewport{
		Geo:  geo,
		Area: area,
		Size: [2]float64{float64(area.Dx()), float64(area.Dy())},
	}
	if !geo {
		return vp
	}

	vp.Origin = h.PixelToPosition(area.Min)

	geoMin, geoMax := h.DisplayArea()
	geoLat := math.LL(geoMax.Latitude(), geoMin.Longitude())
	geoLon := math.LL(geoMin.Latitude(), geoMax.Longitude())

	deltaLat := geoMax.Latitude() - geoMin.Latitude()
	deltaLon := geoMax.Longitude() - geoMin.Longitude()

	posMin := h.PositionToPixel(geoMin)
	posLat := math.Sub2(h.PositionToPixel(geoLat), posMin)
	posLon := math.Sub2(h.PositionToPixel(geoLon), posMin)

	vp.Scaling[0] = math.Length2(posLat) / deltaLat
	vp.Scaling[1] = math.Length2(posLon) / deltaLon
	vp.Rotation = math.Atan2(posLon[0], posLon[1])

	return vp
}

// Degenerate reports whether the geo math broke down, as it does when
// the display area has no extent. Content drawn with the viewport's
// transform is skipped in that case.
func (vp Viewport) Degenerate() bool {
	if !vp.Geo {
		return vp.Size[0] <= 0 || vp.Size[1] <= 0
	}
	for _, v := range []float64{vp.Scaling[0], vp.Scaling[1], vp.Rotation} {
		if !math.IsFinite(v) {
			return true
		}
	}
	return vp.Scaling[0] == 0 || vp.Scaling[1] == 0
}

// Transform returns the matrix that takes a Point2LL to the pixel it is
// displayed at.
func (vp Viewport) Transform() math.Matrix3 {
	s, c := math.Sin(vp.Rotation), math.Cos(vp.Rotation)
	slat, slon := vp.Scaling[0], vp.Scaling[1]

	// Longitude advances along (sin r, cos r) and latitude along
	// (cos r, -sin r).
	rot := math.MakeMatrix3(slon*s, slat*c, 0,
		slon*c, -slat*s, 0,
		0, 0, 1)

	return math.Identity3x3().
		Translate(float64(vp.Area.Min.X), float64(vp.Area.Min.Y)).
		PostMultiply(rot).
		Translate(-vp.Origin.Longitude(), -vp.Origin.Latitude())
}

// ViewTransform returns the matrix that takes points in a non-geo view's
// coordinate space to pixels, scaling bounds uniformly to fit the
// viewport and centering it along the axis with space left over.
func ViewTransform(vp Viewport, bounds math.Extent2D) math.Matrix3 {
	bw, bh := bounds.Width(), bounds.Height()

	var scale, ox, oy float64
	if bw/bh > vp.Size[0]/vp.Size[1] {
		scale = vp.Size[0] / bw
		oy = (vp.Size[1] - bh*scale) / 2
	} else {
		scale = vp.Size[1] / bh
		ox = (vp.Size[0] - bw*scale) / 2
	}

	return math.Identity3x3().
		Translate(float64(vp.Area.Min.X)+ox, float64(vp.Area.Min.Y)+oy).
		Scale(scale, scale).
		Translate(-bounds.P0[0], -bounds.P0[1])
}
