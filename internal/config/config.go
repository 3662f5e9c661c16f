package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"time"
)

const (
	StarRadius   = 10
	PlanetRadius = 5

	// Degrees per tick
	PlanetStep    = 1.0
	SatelliteStep = 5.0

	TickPeriod = 50 * time.Millisecond

	// Control bar below the canvas
	ControlBarHeight = 28
	CheckboxSize     = 14
	CheckboxLabel    = "Show Orbits"
	ShowOrbits       = true

	PlanetsPerRing = 4
)

var (
	Background     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	StarColor      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	PlanetColor    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	OrbitColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ControlBarFill = color.RGBA{R: 30, G: 32, B: 40, A: 255}
)

// ErrUnknownVariant is returned by Lookup for names it does not know.
var ErrUnknownVariant = errors.New("unknown variant")

// Layout selects the orbit layout rule a variant uses.
type Layout uint8

const (
	// LayoutBanded groups planets into bands of four by radius but spaces
	// all of a star's planets evenly around one circle.
	LayoutBanded Layout = iota
	// LayoutRings spaces planets evenly within each ring of up to four.
	LayoutRings
)

// StarSpec places one star relative to the window centre.
type StarSpec struct {
	OffsetX    float64
	Planets    int
	SecondStar bool
}

// Variant is one of the two fixed program presets.
type Variant struct {
	Name         string
	WindowWidth  int
	WindowHeight int
	OrbitSpacing float64
	Layout       Layout

	SatelliteRadius float64
	SatelliteColor  color.RGBA

	// ClockwiseIncrements flips the sign convention of the planet step.
	ClockwiseIncrements bool

	Stars []StarSpec
}

// CenterX returns the horizontal centre of the canvas.
func (v Variant) CenterX() float64 { return float64(v.WindowWidth / 2) }

// CenterY returns the vertical centre of the canvas.
func (v Variant) CenterY() float64 { return float64(v.WindowHeight / 2) }

// TPS is the number of animation ticks per second.
func TPS() int { return int(time.Second / TickPeriod) }

var (
	SolarM = Variant{
		Name:            "solar_M",
		WindowWidth:     800,
		WindowHeight:    600,
		OrbitSpacing:    30,
		Layout:          LayoutBanded,
		SatelliteRadius: 2,
		SatelliteColor:  color.RGBA{R: 190, G: 190, B: 190, A: 255},
		Stars: []StarSpec{
			{OffsetX: -200, Planets: 10},
			{OffsetX: 0, Planets: 20},
			{OffsetX: 200, Planets: 10},
		},
	}

	SolarAlles = Variant{
		Name:                "solar_alles",
		WindowWidth:         1300,
		WindowHeight:        810,
		OrbitSpacing:        79,
		Layout:              LayoutRings,
		SatelliteRadius:     3,
		SatelliteColor:      color.RGBA{R: 255, G: 0, B: 0, A: 255},
		ClockwiseIncrements: true,
		Stars: []StarSpec{
			{OffsetX: -300, Planets: 10},
			{OffsetX: 0, Planets: 20, SecondStar: true},
			{OffsetX: 300, Planets: 10},
		},
	}
)

// Lookup resolves a variant by its short ("a", "b") or full name.
func Lookup(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "a", "solar_m":
		return SolarM, nil
	case "b", "solar_alles":
		return SolarAlles, nil
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}
