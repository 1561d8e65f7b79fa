// renderer/renderer_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"image"
	"image/color"
	"testing"
)

func TestRGBFromHex(t *testing.T) {
	c := RGBFromHex(0x1e40af)
	if got := c.Color(); got != (color.RGBA{R: 0x1e, G: 0x40, B: 0xaf, A: 0xff}) {
		t.Errorf("got %v", got)
	}
	if !c.Equals(RGBFromUInt8(0x1e, 0x40, 0xaf)) {
		t.Errorf("RGBFromHex and RGBFromUInt8 disagree")
	}
}

func TestCommandBufferReplay(t *testing.T) {
	cb := GetCommandBuffer()
	defer ReturnCommandBuffer(cb)

	strip := [][2]float64{{0, 0}, {4, 4}}
	cb.FillRect(image.Rect(0, 0, 2, 2), RGBFromHex(0x222222))
	cb.DrawLines(strip, 1, RGBFromHex(0xcccccc))
	cb.DrawText("BARS", [2]float64{1, 2}, RGBFromHex(0xffffff))

	// The buffer must not alias the caller's slice.
	strip[1] = [2]float64{100, 100}
	if cb.Commands[1].Lines[1] != [2]float64{4, 4} {
		t.Errorf("command buffer aliased line strip")
	}

	var replay CommandBuffer
	cb.Replay(&replay)
	if len(replay.Commands) != 3 {
		t.Fatalf("expected 3 replayed commands, got %d", len(replay.Commands))
	}
	for i := range cb.Commands {
		if cb.Commands[i].Kind != replay.Commands[i].Kind {
			t.Errorf("command %d: kind %d, replayed %d", i, cb.Commands[i].Kind, replay.Commands[i].Kind)
		}
	}
	if texts := replay.Texts(); len(texts) != 1 || texts[0] != "BARS" {
		t.Errorf("unexpected texts %v", texts)
	}
}

func TestMeasureText(t *testing.T) {
	var cb CommandBuffer
	sz := cb.MeasureText("BARS")
	if sz[0] != 4*7 || sz[1] != 13 {
		t.Errorf("got %v, expected [28 13]", sz)
	}
}

func TestBuilders(t *testing.T) {
	lb := GetLinesDrawBuilder()
	defer ReturnLinesDrawBuilder(lb)
	lb.AddLineStrip([][2]float64{{0, 0}})
	lb.AddLineStrip([][2]float64{{0, 0}, {1, 1}})
	lb.AddLineLoop([][2]float64{{0, 0}, {1, 0}, {1, 1}})

	var cb CommandBuffer
	lb.GenerateCommands(&cb, 1, RGB{1, 1, 1})
	if len(cb.Commands) != 2 {
		t.Fatalf("expected 2 strips, got %d", len(cb.Commands))
	}
	if loop := cb.Commands[1].Lines; len(loop) != 4 || loop[3] != loop[0] {
		t.Errorf("line loop not closed: %v", loop)
	}

	tb := GetTrianglesDrawBuilder()
	defer ReturnTrianglesDrawBuilder(tb)
	tb.AddPolygon([][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	if tb.Len() != 2 {
		t.Errorf("expected square to triangulate to 2 triangles, got %d", tb.Len())
	}
	cb.Reset()
	tb.GenerateCommands(&cb, RGB{1, 0, 0})
	if len(cb.Commands) != 1 || len(cb.Commands[0].Tris) != 2 {
		t.Errorf("unexpected commands %+v", cb.Commands)
	}
}

func TestRaster(t *testing.T) {
	r := NewRaster(32, 32)
	black := color.RGBA{A: 255}
	r.Clear(RGB{})
	if r.Image.RGBAAt(10, 10) != black {
		t.Fatalf("clear did not fill image")
	}

	r.FillRect(image.Rect(0, 0, 4, 4), RGB{R: 1})
	if c := r.Image.RGBAAt(3, 3); c.R != 255 {
		t.Errorf("FillRect: got %v at (3,3)", c)
	}
	if c := r.Image.RGBAAt(4, 4); c != black {
		t.Errorf("FillRect painted outside its rectangle: %v", c)
	}

	r.DrawLines([][2]float64{{8, 20}, {28, 20}}, 2, RGB{G: 1})
	if c := r.Image.RGBAAt(16, 20); c.G == 0 {
		t.Errorf("DrawLines: pixel (16,20) not stroked: %v", c)
	}

	r.FillTriangles([][3][2]float64{{{20, 0}, {30, 0}, {20, 10}}}, RGB{B: 1})
	if c := r.Image.RGBAAt(22, 2); c.B == 0 {
		t.Errorf("FillTriangles: pixel (22,2) not filled: %v", c)
	}

	r.Clear(RGB{})
	r.DrawText("W", [2]float64{0, 0}, RGB{1, 1, 1})
	lit := false
	for y := range 13 {
		for x := range 7 {
			if r.Image.RGBAAt(x, y) != black {
				lit = true
			}
		}
	}
	if !lit {
		t.Errorf("DrawText did not draw inside its bounding box")
	}
}
