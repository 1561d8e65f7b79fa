// renderer/commandbuffer.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"image"
	"slices"
	"sync"
)

// The command buffer stores a series of drawing commands, each one a
// Command value that records its kind and arguments.  Only the arguments
// relevant to a command's kind are set.

const (
	RendererFillRect = iota
	RendererDrawLines
	RendererFillTriangles
	RendererDrawText
)

type Command struct {
	Kind  int
	Rect  image.Rectangle
	Lines [][2]float64
	Tris  [][3][2]float64
	Text  string
	Pos   [2]float64
	Width float64
	Color RGB
}

// CommandBuffer records drawing commands in an API-agnostic manner. It is
// itself a Graphics, so the overlay can draw into one and the result can
// be inspected or replayed onto another Graphics later, possibly more
// than once.
type CommandBuffer struct {
	Commands []Command
}

var _ Graphics = (*CommandBuffer)(nil)

// CommandBuffers are managed using a sync.Pool so that their slice
// allocations persist across multiple uses.
var commandBufferPool = sync.Pool{New: func() any { return &CommandBuffer{} }}

func GetCommandBuffer() *CommandBuffer {
	return commandBufferPool.Get().(*CommandBuffer)
}

func ReturnCommandBuffer(cb *CommandBuffer) {
	cb.Reset()
	commandBufferPool.Put(cb)
}

// Reset resets the command buffer's length to zero so that it can be
// reused.
func (cb *CommandBuffer) Reset() {
	cb.Commands = cb.Commands[:0]
}

func (cb *CommandBuffer) FillRect(r image.Rectangle, c RGB) {
	cb.Commands = append(cb.Commands, Command{Kind: RendererFillRect, Rect: r, Color: c})
}

func (cb *CommandBuffer) DrawLines(strip [][2]float64, width float64, c RGB) {
	cb.Commands = append(cb.Commands, Command{Kind: RendererDrawLines, Lines: slices.Clone(strip),
		Width: width, Color: c})
}

func (cb *CommandBuffer) FillTriangles(tris [][3][2]float64, c RGB) {
	cb.Commands = append(cb.Commands, Command{Kind: RendererFillTriangles, Tris: slices.Clone(tris), Color: c})
}

func (cb *CommandBuffer) DrawText(s string, p [2]float64, c RGB) {
	cb.Commands = append(cb.Commands, Command{Kind: RendererDrawText, Text: s, Pos: p, Color: c})
}

func (cb *CommandBuffer) MeasureText(s string) [2]float64 {
	return measureText(DefaultFace, s)
}

// Texts returns the strings of all of the recorded text commands, in
// order.
func (cb *CommandBuffer) Texts() []string {
	var s []string
	for _, cmd := range cb.Commands {
		if cmd.Kind == RendererDrawText {
			s = append(s, cmd.Text)
		}
	}
	return s
}

// Replay issues the recorded commands to g.
func (cb *CommandBuffer) Replay(g Graphics) {
	for _, cmd := range cb.Commands {
		switch cmd.Kind {
		case RendererFillRect:
			g.FillRect(cmd.Rect, cmd.Color)
		case RendererDrawLines:
			g.DrawLines(cmd.Lines, cmd.Width, cmd.Color)
		case RendererFillTriangles:
			g.FillTriangles(cmd.Tris, cmd.Color)
		case RendererDrawText:
			g.DrawText(cmd.Text, cmd.Pos, cmd.Color)
		}
	}
}
