// Package orbit models stars, their planets and the planets' satellites as
// points on circular orbits advanced by a constant angle per tick. Every
// position change is pushed to a retained-mode Surface.
package orbit

import (
	"math"

	"github.com/iburimskiy/star-systems/internal/canvas"
)

// Surface is the drawing side of the model.
type Surface interface {
	CreateOval(x0, y0, x1, y1 float64, style canvas.Style) canvas.Handle
	Coords(h canvas.Handle, x0, y0, x1, y1 float64)
	SetHidden(h canvas.Handle, hidden bool)
}

// Point is a screen coordinate.
type Point struct {
	X, Y float64
}

// Polar returns center + radius*(cos, sin) for an angle in degrees.
func Polar(center Point, radius, angleDeg float64) Point {
	rad := angleDeg * math.Pi / 180
	return Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

func createDot(s Surface, p Point, r float64, style canvas.Style) canvas.Handle {
	return s.CreateOval(p.X-r, p.Y-r, p.X+r, p.Y+r, style)
}

func moveDot(s Surface, h canvas.Handle, p Point, r float64) {
	s.Coords(h, p.X-r, p.Y-r, p.X+r, p.Y+r)
}

// Satellite circles a planet. Its distance from the planet is twice its
// radius, and the same radius is used to draw it.
type Satellite struct {
	surface Surface
	handle  canvas.Handle

	parent Point
	radius float64
	angle  float64
	step   float64
}

func newSatellite(s Surface, parent Point, radius, step float64, style canvas.Style) *Satellite {
	sat := &Satellite{
		surface: s,
		parent:  parent,
		radius:  radius,
		step:    step,
	}
	sat.handle = createDot(s, sat.Position(), radius, style)
	return sat
}

// Move re-anchors the satellite on its planet's new position and advances
// its own angle.
func (s *Satellite) Move(parent Point) {
	s.parent = parent
	s.angle += s.step
	moveDot(s.surface, s.handle, s.Position(), s.radius)
}

func (s *Satellite) Position() Point       { return Polar(s.parent, 2*s.radius, s.angle) }
func (s *Satellite) Parent() Point         { return s.parent }
func (s *Satellite) Radius() float64       { return s.radius }
func (s *Satellite) Angle() float64        { return s.angle }
func (s *Satellite) Handle() canvas.Handle { return s.handle }

// Planet circles a fixed star position.
type Planet struct {
	surface Surface
	body    canvas.Handle
	ring    canvas.Handle
	size    float64

	star        Point
	orbitRadius float64
	angle       float64
	clockwise   bool
	step        float64

	satellite *Satellite
}

func (p *Planet) Move() {
	p.angle += p.step
	pos := p.Position()
	moveDot(p.surface, p.body, pos, p.size)
	if p.satellite != nil {
		p.satellite.Move(pos)
	}
}

func (p *Planet) Position() Point {
	return Polar(p.star, p.orbitRadius, p.angle)
}

func (p *Planet) Star() Point               { return p.star }
func (p *Planet) OrbitRadius() float64      { return p.orbitRadius }
func (p *Planet) Angle() float64            { return p.angle }
func (p *Planet) Clockwise() bool           { return p.clockwise }
func (p *Planet) Step() float64             { return p.step }
func (p *Planet) Body() canvas.Handle       { return p.body }
func (p *Planet) Ring() canvas.Handle       { return p.ring }
func (p *Planet) Satellite() *Satellite     { return p.satellite }
func (p *Planet) setRingHidden(hidden bool) { p.surface.SetHidden(p.ring, hidden) }

// Star is a fixed point owning its planets.
type Star struct {
	center  Point
	planets []*Planet
	handle  canvas.Handle
}

func (s *Star) Center() Point         { return s.center }
func (s *Star) Planets() []*Planet    { return s.planets }
func (s *Star) Handle() canvas.Handle { return s.handle }
