/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractor

import (
	"github.com/unidoc/pdftextplace/internal/transform"
	"github.com/unidoc/pdftextplace/model"
)

// graphicsState is one frame of the §4.2 graphics-state machine. Per §5,
// this machine lives in the Collector, not the interpreter: the Collector
// owns the stack below and mutates it directly as it sees q/Q/cm and the
// text-state operators.
type graphicsState struct {
	ctm transform.Matrix

	font     *model.FontDescription
	fontID   string
	fontSize float64
	hasFont  bool

	charSpace  float64
	wordSpace  float64
	leading    float64
	horizScale float64 // stored as scale/100, default 1.0
	textRise   float64
	renderMode int
}

func newGraphicsState() graphicsState {
	return graphicsState{
		ctm:        transform.IdentityMatrix(),
		horizScale: 1.0,
	}
}

// graphicsStateStack is the explicit value stack of graphicsState frames.
// Frames are plain structs (font is a cheap handle, everything else a
// primitive), so pushing a copy is all "deep copy" ever needs to mean here.
type graphicsStateStack struct {
	frames []graphicsState
}

func newGraphicsStateStack() *graphicsStateStack {
	return &graphicsStateStack{frames: []graphicsState{newGraphicsState()}}
}

// top returns the current frame, mutable in place.
func (s *graphicsStateStack) top() *graphicsState {
	return &s.frames[len(s.frames)-1]
}

// push duplicates the current frame onto the stack (the `q` operator).
func (s *graphicsStateStack) push() {
	s.frames = append(s.frames, *s.top())
}

// pop restores the predecessor frame (the `Q` operator). Q on a stack with
// only the base frame is a no-op, matching §8's "Q on empty stack: no-op".
func (s *graphicsStateStack) pop() {
	if len(s.frames) <= 1 {
		return
	}
	s.frames = s.frames[:len(s.frames)-1]
}
