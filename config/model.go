// config/model.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package config

import (
	"github.com/stopbars/bars/math"
	"github.com/stopbars/bars/renderer"
)

// Config is the contents of a single config package; a package may
// describe any number of aerodromes.
type Config struct {
	Name       string      `msgpack:"name,omitempty"`
	Version    string      `msgpack:"version,omitempty"`
	Aerodromes []Aerodrome `msgpack:"aerodromes"`
}

// Aerodrome returns the aerodrome with the given ICAO code, if present.
func (c *Config) Aerodrome(icao string) (*Aerodrome, bool) {
	for i := range c.Aerodromes {
		if c.Aerodromes[i].ICAO == icao {
			return &c.Aerodromes[i], true
		}
	}
	return nil, false
}

type Aerodrome struct {
	ICAO string `msgpack:"icao"`

	Nodes []Node `msgpack:"nodes"`
	Edges []Edge `msgpack:"edges"`

	Profiles []Profile `msgpack:"profiles"`

	Maps   []Map   `msgpack:"maps"`
	Views  []View  `msgpack:"views"`
	Styles []Style `msgpack:"styles"`
}

// Node is a controllable stop bar (or other lighting element).
type Node struct {
	ID         string `msgpack:"id"`
	Scratchpad string `msgpack:"scratchpad,omitempty"`
	// Parent is the index of the parent node, or -1.
	Parent int `msgpack:"parent"`

	Display NodeDisplay[GeoPoint] `msgpack:"display"`
}

type Edge struct {
	Display EdgeDisplay[GeoPoint] `msgpack:"display"`
}

type Profile struct {
	ID   string `msgpack:"id"`
	Name string `msgpack:"name"`

	// Nodes holds the condition of each aerodrome node under this
	// profile, indexed like Aerodrome.Nodes.
	Nodes   []NodeCondition `msgpack:"nodes"`
	Presets []Preset        `msgpack:"presets"`
}

type NodeConditionKind int

const (
	// NodeFixed nodes are always in the state given by Fixed.
	NodeFixed NodeConditionKind = iota
	// NodeDirect nodes are switched by the controller, optionally
	// resetting to on after ResetSecs seconds.
	NodeDirect
	// NodeRouter nodes are switched by the route selection.
	NodeRouter
)

type NodeCondition struct {
	Kind      NodeConditionKind `msgpack:"kind"`
	Fixed     bool              `msgpack:"fixed,omitempty"`
	ResetSecs uint32            `msgpack:"reset,omitempty"`
}

// Controllable reports whether a controller may switch the node.
func (c NodeCondition) Controllable() bool {
	return c.Kind == NodeDirect || c.Kind == NodeRouter
}

type Preset struct {
	Name  string       `msgpack:"name"`
	Nodes []PresetNode `msgpack:"nodes"`
}

type PresetNode struct {
	Node int  `msgpack:"node"`
	On   bool `msgpack:"on"`
}

type Map struct {
	Background Color         `msgpack:"background"`
	Base       []Path[Point] `msgpack:"base"`

	Nodes []NodeDisplay[Point] `msgpack:"nodes"`
	Edges []EdgeDisplay[Point] `msgpack:"edges"`
}

type View struct {
	Name   string `msgpack:"name"`
	Map    int    `msgpack:"map"`
	Bounds Box    `msgpack:"bounds"`
}

type Box struct {
	Min Point `msgpack:"min"`
	Max Point `msgpack:"max"`
}

type Point struct {
	X float32 `msgpack:"x"`
	Y float32 `msgpack:"y"`
}

type Geo struct {
	Lat float32 `msgpack:"lat"`
	Lon float32 `msgpack:"lon"`
}

func (g Geo) Point2LL() math.Point2LL {
	return math.LL(float64(g.Lat), float64(g.Lon))
}

// GeoPoint is a geographic position plus a fixed pixel offset that does
// not scale with the map.
type GeoPoint struct {
	Geo    Geo   `msgpack:"geo"`
	Offset Point `msgpack:"offset"`
}

// Vertex is the type of a point in a display path: either a view-space
// Point or a GeoPoint.
type Vertex interface {
	Point | GeoPoint
}

type Path[T Vertex] struct {
	Points []T `msgpack:"points"`
	Style  int `msgpack:"style"`
}

type Target[T Vertex] struct {
	Points []T `msgpack:"points"`
}

type NodeDisplay[T Vertex] struct {
	Off      []Path[T] `msgpack:"off"`
	On       []Path[T] `msgpack:"on"`
	Selected []Path[T] `msgpack:"selected"`

	Target Target[T] `msgpack:"target"`
}

type EdgeDisplay[T Vertex] struct {
	Off []Path[T] `msgpack:"off"`
	On  []Path[T] `msgpack:"on"`
}

type Style struct {
	StrokeWidth float32 `msgpack:"stroke_width"`
	StrokeColor Color   `msgpack:"stroke_color"`

	FillStyle FillStyle `msgpack:"fill_style"`
	FillColor Color     `msgpack:"fill_color"`
}

type Color struct {
	R uint8 `msgpack:"r"`
	G uint8 `msgpack:"g"`
	B uint8 `msgpack:"b"`
	A uint8 `msgpack:"a"`
}

func (c Color) RGB() renderer.RGB {
	return renderer.RGBFromUInt8(c.R, c.G, c.B)
}

type FillStyle int

const (
	FillNone FillStyle = iota
	FillSolid
	FillHatchHorizontal
	FillHatchVertical
	FillHatchForwardDiagonal
	FillHatchBackwardDiagonal
	FillHatchCross
	FillHatchDiagonalCross
)
