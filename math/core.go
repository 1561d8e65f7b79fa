// math/core.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

// Everything in this package works in float64: geographic origins are
// multiplied by pixels-per-degree scale factors in the 1e5 range, which
// float32 can't represent to sub-pixel precision.

// Degrees converts an angle expressed in radians to degrees.
func Degrees(r float64) float64 {
	return r * 180 / gomath.Pi
}

// Radians converts an angle expressed in degrees to radians.
func Radians(d float64) float64 {
	return d / 180 * gomath.Pi
}

func Sin(a float64) float64 {
	return gomath.Sin(a)
}

func Cos(a float64) float64 {
	return gomath.Cos(a)
}

func Atan2(y, x float64) float64 {
	return gomath.Atan2(y, x)
}

func Sqrt(a float64) float64 {
	return gomath.Sqrt(a)
}

func Hypot(x, y float64) float64 {
	return gomath.Hypot(x, y)
}

func Floor(v float64) float64 {
	return gomath.Floor(v)
}

func Ceil(v float64) float64 {
	return gomath.Ceil(v)
}

const Pi = gomath.Pi

func Abs[V constraints.Integer | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

// Lerp linearly interpolates x of the way between a and b.
func Lerp(x, a, b float64) float64 {
	return (1-x)*a + x*b
}

// IsFinite returns true if v is neither infinite nor NaN.
func IsFinite(v float64) bool {
	return !gomath.IsInf(v, 0) && !gomath.IsNaN(v)
}
