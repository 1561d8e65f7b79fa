// renderer/rgb.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"image/color"

	"github.com/stopbars/bars/math"
)

///////////////////////////////////////////////////////////////////////////
// RGB

type RGB struct {
	R, G, B float32
}

type RGBA struct {
	R, G, B, A float32
}

func (r RGB) Equals(other RGB) bool {
	return r.R == other.R && r.G == other.G && r.B == other.B
}

// RGBFromHex converts a packed integer color value to an RGB where the low
// 8 bits give blue, the next 8 give green, and then the next 8 give red.
func RGBFromHex(c int) RGB {
	r, g, b := (c>>16)&255, (c>>8)&255, c&255
	return RGB{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255}
}

func RGBFromUInt8(r uint8, g uint8, b uint8) RGB {
	return RGB{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255}
}

// Color returns the color as an opaque image/color value.
func (r RGB) Color() color.RGBA {
	return RGBA{R: r.R, G: r.G, B: r.B, A: 1}.Color()
}

// Color returns the color as a premultiplied image/color value.
func (r RGBA) Color() color.RGBA {
	q := func(v float32) uint8 {
		return uint8(math.Clamp(v, 0, 1)*255 + 0.5)
	}
	a := math.Clamp(r.A, 0, 1)
	return color.RGBA{R: q(r.R * a), G: q(r.G * a), B: q(r.B * a), A: q(a)}
}
