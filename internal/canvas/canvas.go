// Package canvas is a small retained-mode drawing surface. Shapes are
// created once and then moved or hidden through their handles; renderers
// walk the items in paint order each frame.
package canvas

import "image/color"

// Handle identifies a shape on a Canvas.
type Handle int

// Style describes how an oval is painted. A nil Fill leaves the interior
// empty; a nil Outline draws no border.
type Style struct {
	Fill    color.Color
	Outline color.Color
}

// Item is one oval bounded by the box (X0, Y0)-(X1, Y1).
type Item struct {
	X0, Y0, X1, Y1 float64
	Style          Style
	Hidden         bool
}

// Center returns the centre of the bounding box.
func (it Item) Center() (float64, float64) {
	return (it.X0 + it.X1) / 2, (it.Y0 + it.Y1) / 2
}

// Radius returns half the box width. Ovals on this canvas are circles.
func (it Item) Radius() float64 {
	return (it.X1 - it.X0) / 2
}

type Canvas struct {
	width      int
	height     int
	background color.Color
	items      []Item
}

func New(width, height int, background color.Color) *Canvas {
	return &Canvas{
		width:      width,
		height:     height,
		background: background,
	}
}

func (c *Canvas) Width() int              { return c.width }
func (c *Canvas) Height() int             { return c.height }
func (c *Canvas) Background() color.Color { return c.background }
func (c *Canvas) Len() int                { return len(c.items) }

func (c *Canvas) valid(h Handle) bool { return h >= 0 && int(h) < len(c.items) }

func (c *Canvas) Item(h Handle) (Item, bool) {
	if !c.valid(h) {
		return Item{}, false
	}
	return c.items[h], true
}

// CreateOval adds an oval on top of everything created before it.
func (c *Canvas) CreateOval(x0, y0, x1, y1 float64, style Style) Handle {
	c.items = append(c.items, Item{X0: x0, Y0: y0, X1: x1, Y1: y1, Style: style})
	return Handle(len(c.items) - 1)
}

// Coords moves the shape to a new bounding box. Unknown handles are ignored.
func (c *Canvas) Coords(h Handle, x0, y0, x1, y1 float64) {
	if !c.valid(h) {
		return
	}
	it := &c.items[h]
	it.X0, it.Y0, it.X1, it.Y1 = x0, y0, x1, y1
}

// SetHidden shows or hides a shape. Unknown handles are ignored.
func (c *Canvas) SetHidden(h Handle, hidden bool) {
	if !c.valid(h) {
		return
	}
	c.items[h].Hidden = hidden
}

func (c *Canvas) Hidden(h Handle) bool {
	if !c.valid(h) {
		return false
	}
	return c.items[h].Hidden
}

// Each calls fn for every item in paint order, hidden ones included.
func (c *Canvas) Each(fn func(h Handle, it Item)) {
	for i, it := range c.items {
		fn(Handle(i), it)
	}
}
