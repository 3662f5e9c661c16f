package orbit

import (
	"iter"

	"github.com/iburimskiy/star-systems/internal/canvas"
	"github.com/iburimskiy/star-systems/internal/config"
)

// Scene owns every star of one variant and the orbit-ring visibility flag.
type Scene struct {
	stars      []*Star
	showOrbits bool
	ticks      int
}

// NewScene creates all stars, planets and satellites of v on s in their
// paint order and applies the default orbit visibility.
func NewScene(s Surface, v config.Variant) *Scene {
	sc := &Scene{showOrbits: true}
	center := Point{X: v.CenterX(), Y: v.CenterY()}
	for _, spec := range v.Stars {
		sc.stars = append(sc.stars, NewStar(s, v, Point{X: center.X + spec.OffsetX, Y: center.Y}, spec))
	}
	sc.SetOrbitVisibility(config.ShowOrbits)
	return sc
}

// NewStar draws a star at center and builds its planets with the layout
// rule of v.
func NewStar(s Surface, v config.Variant, center Point, spec config.StarSpec) *Star {
	star := &Star{center: center}
	star.handle = createDot(s, center, config.StarRadius, canvas.Style{Fill: config.StarColor})

	var specs []PlanetSpec
	switch v.Layout {
	case config.LayoutRings:
		specs = RingLayout(spec.Planets, config.PlanetsPerRing, v.OrbitSpacing, spec.SecondStar)
	default:
		specs = BandedLayout(spec.Planets, v.OrbitSpacing)
	}
	for _, ps := range specs {
		star.planets = append(star.planets, newPlanet(s, v, center, ps))
	}
	return star
}

func newPlanet(s Surface, v config.Variant, star Point, ps PlanetSpec) *Planet {
	p := &Planet{
		surface:     s,
		size:        config.PlanetRadius,
		star:        star,
		orbitRadius: ps.OrbitRadius,
		angle:       ps.Angle,
		clockwise:   ps.Clockwise,
		step:        planetStep(ps.Clockwise, v.ClockwiseIncrements),
	}
	pos := p.Position()
	p.body = createDot(s, pos, p.size, canvas.Style{Fill: config.PlanetColor})

	satStyle := canvas.Style{Fill: v.SatelliteColor}
	// The banded layout paints the satellite under the ring.
	if ps.HasSatellite && v.Layout == config.LayoutBanded {
		p.satellite = newSatellite(s, pos, v.SatelliteRadius, config.SatelliteStep, satStyle)
	}
	p.ring = createDot(s, star, ps.OrbitRadius, canvas.Style{Outline: config.OrbitColor})
	if ps.HasSatellite && p.satellite == nil {
		p.satellite = newSatellite(s, pos, v.SatelliteRadius, config.SatelliteStep, satStyle)
	}
	return p
}

func planetStep(clockwise, clockwiseIncrements bool) float64 {
	if clockwise == clockwiseIncrements {
		return config.PlanetStep
	}
	return -config.PlanetStep
}

// Tick advances every planet, and through it its satellite, by one step.
func (sc *Scene) Tick() {
	for p := range sc.Planets() {
		p.Move()
	}
	sc.ticks++
}

// SetOrbitVisibility shows or hides every orbit ring. Positions are not
// touched.
func (sc *Scene) SetOrbitVisibility(show bool) {
	sc.showOrbits = show
	for p := range sc.Planets() {
		p.setRingHidden(!show)
	}
}

func (sc *Scene) ShowOrbits() bool { return sc.showOrbits }
func (sc *Scene) Ticks() int       { return sc.ticks }
func (sc *Scene) Stars() []*Star   { return sc.stars }

// Planets yields every planet in star order.
func (sc *Scene) Planets() iter.Seq[*Planet] {
	return func(yield func(*Planet) bool) {
		for _, star := range sc.stars {
			for _, p := range star.planets {
				if !yield(p) {
					return
				}
			}
		}
	}
}
