// renderer/raster.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"image"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Raster is a Graphics that renders into an in-memory RGBA image. It is
// used by headless hosts and for producing snapshots of the overlay.
type Raster struct {
	Image *image.RGBA
	Face  font.Face

	scanner *rasterx.ScannerGV
	dasher  *rasterx.Dasher
	filler  *rasterx.Filler
}

var _ Graphics = (*Raster)(nil)

func NewRaster(w, h int) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Raster{
		Image:   img,
		Face:    DefaultFace,
		scanner: scanner,
		dasher:  rasterx.NewDasher(w, h, scanner),
		filler:  rasterx.NewFiller(w, h, scanner),
	}
}

// Clear fills the entire image with the given color.
func (r *Raster) Clear(c RGB) {
	r.FillRect(r.Image.Bounds(), c)
}

func (r *Raster) FillRect(rect image.Rectangle, c RGB) {
	draw.Draw(r.Image, rect, &image.Uniform{c.Color()}, image.Point{}, draw.Src)
}

func (r *Raster) DrawLines(strip [][2]float64, width float64, c RGB) {
	if len(strip) < 2 {
		return
	}

	d := r.dasher
	d.Clear()
	d.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(4*64), rasterx.ButtCap, rasterx.ButtCap,
		rasterx.FlatGap, rasterx.Miter, nil, 0)
	d.SetColor(c.Color())

	d.Start(rasterx.ToFixedP(strip[0][0], strip[0][1]))
	for _, p := range strip[1:] {
		d.Line(rasterx.ToFixedP(p[0], p[1]))
	}
	d.Stop(false)
	d.Draw()
	d.Clear()
}

func (r *Raster) FillTriangles(tris [][3][2]float64, c RGB) {
	if len(tris) == 0 {
		return
	}

	f := r.filler
	f.Clear()
	f.SetColor(c.Color())
	for _, t := range tris {
		f.Start(rasterx.ToFixedP(t[0][0], t[0][1]))
		f.Line(rasterx.ToFixedP(t[1][0], t[1][1]))
		f.Line(rasterx.ToFixedP(t[2][0], t[2][1]))
		f.Stop(true)
	}
	f.Draw()
	f.Clear()
}

func (r *Raster) DrawText(s string, p [2]float64, c RGB) {
	ascent := r.Face.Metrics().Ascent
	d := font.Drawer{
		Dst:  r.Image,
		Src:  image.NewUniform(c.Color()),
		Face: r.Face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(p[0] * 64),
			Y: fixed.Int26_6(p[1]*64) + ascent,
		},
	}
	d.DrawString(s)
}

func (r *Raster) MeasureText(s string) [2]float64 {
	return measureText(r.Face, s)
}
