// Package canvas provides the mutable pixel surface artworks render
// into: a fixed-size RGB grid with integer-only compositing and a
// canonical byte serialization for determinism checks. Blend factors
// are Q31.32 values, never floats, so two renders of the same artwork
// produce byte-identical surfaces on every platform.
package canvas

import "encoding/binary"

// Canvas is a compositor backed by a flat RGB array with dirty tracking.
// Uses []RGB directly to allow zero-copy export, worth the coupling.
type Canvas struct {
	pix     []RGB
	touched []bool
	width   int
	height  int
}

// New creates a canvas with the specified dimensions
func New(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		panic("canvas: non-positive dimensions")
	}
	size := width * height
	return &Canvas{
		pix:     make([]RGB, size),
		touched: make([]bool, size),
		width:   width,
		height:  height,
	}
}

// Width returns the horizontal pixel count
func (c *Canvas) Width() int { return c.width }

// Height returns the vertical pixel count
func (c *Canvas) Height() int { return c.height }

// Resize adjusts canvas dimensions, reallocates only if capacity insufficient
func (c *Canvas) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		panic("canvas: non-positive dimensions")
	}
	size := width * height
	if cap(c.pix) < size {
		c.pix = make([]RGB, size)
		c.touched = make([]bool, size)
	} else {
		c.pix = c.pix[:size]
		c.touched = c.touched[:size]
	}
	c.width = width
	c.height = height
	c.Clear()
}

// Clear resets all pixels to black using exponential copy
func (c *Canvas) Clear() {
	if len(c.pix) == 0 {
		return
	}
	c.pix[0] = Black
	c.touched[0] = false
	for filled := 1; filled < len(c.pix); filled *= 2 {
		copy(c.pix[filled:], c.pix[:filled])
	}
	for filled := 1; filled < len(c.touched); filled *= 2 {
		copy(c.touched[filled:], c.touched[:filled])
	}
}

// Fill paints every pixel with one color and marks the surface dirty
func (c *Canvas) Fill(col RGB) {
	if len(c.pix) == 0 {
		return
	}
	c.pix[0] = col
	c.touched[0] = true
	for filled := 1; filled < len(c.pix); filled *= 2 {
		copy(c.pix[filled:], c.pix[:filled])
	}
	for filled := 1; filled < len(c.touched); filled *= 2 {
		copy(c.touched[filled:], c.touched[:filled])
	}
}

// inBounds returns true if in surface bounds
func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// At returns the pixel at (x, y), or black outside the surface
func (c *Canvas) At(x, y int) RGB {
	if !c.inBounds(x, y) {
		return Black
	}
	return c.pix[y*c.width+x]
}

// Set writes a pixel opaquely. Writes outside the surface are dropped.
func (c *Canvas) Set(x, y int, col RGB) {
	if !c.inBounds(x, y) {
		return
	}
	idx := y*c.width + x
	c.pix[idx] = col
	c.touched[idx] = true
}

// Blend composites a pixel with the specified blend mode. The t factor
// is Q31.32 and applies only to BlendAlpha; other modes ignore it.
// Writes outside the surface are dropped.
func (c *Canvas) Blend(x, y int, col RGB, mode BlendMode, t int64) {
	if !c.inBounds(x, y) {
		return
	}
	idx := y*c.width + x
	dst := &c.pix[idx]

	switch mode {
	case BlendReplace:
		*dst = col
	case BlendAlpha:
		*dst = dst.Lerp(col, t)
	case BlendAdd:
		*dst = dst.Add(col)
	case BlendMax:
		*dst = dst.Max(col)
	}
	c.touched[idx] = true
}

// --- Dirty Tracking ---

// Dirty reports whether the pixel changed since the last ResetDirty
func (c *Canvas) Dirty(x, y int) bool {
	if !c.inBounds(x, y) {
		return false
	}
	return c.touched[y*c.width+x]
}

// ResetDirty clears all dirty marks, typically after a presentation flush
func (c *Canvas) ResetDirty() {
	if len(c.touched) == 0 {
		return
	}
	c.touched[0] = false
	for filled := 1; filled < len(c.touched); filled *= 2 {
		copy(c.touched[filled:], c.touched[:filled])
	}
}

// --- Serialization ---

// Snapshot returns the canonical byte form of the surface: big-endian
// width and height, then row-major RGB triples. Equal snapshots mean
// pixel-identical artwork, which is the determinism contract tests
// assert against.
func (c *Canvas) Snapshot() []byte {
	buf := make([]byte, 8+len(c.pix)*3)
	binary.BigEndian.PutUint32(buf[0:4], uint32(c.width))
	binary.BigEndian.PutUint32(buf[4:8], uint32(c.height))
	for i, p := range c.pix {
		off := 8 + i*3
		buf[off] = p.R
		buf[off+1] = p.G
		buf[off+2] = p.B
	}
	return buf
}
