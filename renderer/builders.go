// renderer/builders.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"sync"

	"github.com/mmp/earcut-go"
)

///////////////////////////////////////////////////////////////////////////
// DrawBuilders

// The *DrawBuilder types accumulate a number of independent things of the
// same kind to draw and then issue them to a Graphics all at once with a
// single color.

// LinesDrawBuilder accumulates line strips to be stroked together.
type LinesDrawBuilder struct {
	strips [][][2]float64
}

// Reset resets the internal arrays used for accumulating lines,
// maintaining the initial allocations.
func (l *LinesDrawBuilder) Reset() {
	l.strips = l.strips[:0]
}

// AddLineStrip adds a polyline through the given points.
func (l *LinesDrawBuilder) AddLineStrip(p [][2]float64) {
	if len(p) < 2 {
		return
	}
	l.strips = append(l.strips, p)
}

// AddLineLoop is like AddLineStrip but the last vertex connects to the
// first.
func (l *LinesDrawBuilder) AddLineLoop(p [][2]float64) {
	if len(p) < 2 {
		return
	}
	loop := make([][2]float64, 0, len(p)+1)
	loop = append(loop, p...)
	loop = append(loop, p[0])
	l.strips = append(l.strips, loop)
}

// GenerateCommands issues the accumulated strips to g.
func (l *LinesDrawBuilder) GenerateCommands(g Graphics, width float64, c RGB) {
	for _, s := range l.strips {
		g.DrawLines(s, width, c)
	}
}

var linesDrawBuilderPool = sync.Pool{New: func() any { return &LinesDrawBuilder{} }}

func GetLinesDrawBuilder() *LinesDrawBuilder {
	return linesDrawBuilderPool.Get().(*LinesDrawBuilder)
}

func ReturnLinesDrawBuilder(ld *LinesDrawBuilder) {
	ld.Reset()
	linesDrawBuilderPool.Put(ld)
}

// TrianglesDrawBuilder accumulates triangles to be filled together.
type TrianglesDrawBuilder struct {
	tris [][3][2]float64
}

func (t *TrianglesDrawBuilder) Reset() {
	t.tris = t.tris[:0]
}

func (t *TrianglesDrawBuilder) AddTriangle(p0, p1, p2 [2]float64) {
	t.tris = append(t.tris, [3][2]float64{p0, p1, p2})
}

// AddPolygon triangulates the simple polygon with the given vertices and
// adds the resulting triangles.
func (t *TrianglesDrawBuilder) AddPolygon(p [][2]float64) {
	if len(p) < 3 {
		return
	}

	vertices := make([]earcut.Vertex, len(p))
	for i, v := range p {
		vertices[i].P = v
	}

	for _, tri := range earcut.Triangulate(earcut.Polygon{Rings: [][]earcut.Vertex{vertices}}) {
		t.AddTriangle(tri.Vertices[0].P, tri.Vertices[1].P, tri.Vertices[2].P)
	}
}

func (t *TrianglesDrawBuilder) Len() int {
	return len(t.tris)
}

// GenerateCommands issues the accumulated triangles to g.
func (t *TrianglesDrawBuilder) GenerateCommands(g Graphics, c RGB) {
	if len(t.tris) == 0 {
		return
	}
	g.FillTriangles(t.tris, c)
}

var trianglesDrawBuilderPool = sync.Pool{New: func() any { return &TrianglesDrawBuilder{} }}

func GetTrianglesDrawBuilder() *TrianglesDrawBuilder {
	return trianglesDrawBuilderPool.Get().(*TrianglesDrawBuilder)
}

func ReturnTrianglesDrawBuilder(td *TrianglesDrawBuilder) {
	td.Reset()
	trianglesDrawBuilderPool.Put(td)
}
