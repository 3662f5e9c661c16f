package orbit

import "math"

// PlanetSpec is where a layout rule puts one planet before it exists.
type PlanetSpec struct {
	Ring         int // 1-based
	OrbitRadius  float64
	Angle        float64 // degrees
	Clockwise    bool
	HasSatellite bool
}

// BandedLayout groups planets into bands of four sharing a ring radius
// while spacing all n start angles evenly over one circle. Planets on odd
// rings get a satellite.
func BandedLayout(n int, spacing float64) []PlanetSpec {
	if n <= 0 {
		return nil
	}
	out := make([]PlanetSpec, 0, n)
	for i := 0; i < n; i++ {
		ring := i/4 + 1
		radius := spacing * float64(ring)
		out = append(out, PlanetSpec{
			Ring:         ring,
			OrbitRadius:  radius,
			Angle:        float64(i) * (360 / float64(n)),
			Clockwise:    i%2 == 0,
			HasSatellite: int(math.Floor(radius/spacing))%2 != 0,
		})
	}
	return out
}

// RingLayout fills rings of up to perRing planets from the inside out and
// spaces each ring's planets evenly. Planets on even rings run clockwise.
// Only a second star hands out satellites, one per planet on odd rings.
func RingLayout(n, perRing int, spacing float64, secondStar bool) []PlanetSpec {
	if n <= 0 || perRing <= 0 {
		return nil
	}
	rings := (n + perRing - 1) / perRing
	out := make([]PlanetSpec, 0, n)
	for ring := 1; ring <= rings; ring++ {
		count := min(perRing, n-(ring-1)*perRing)
		if count <= 0 {
			continue
		}
		for i := 0; i < count; i++ {
			out = append(out, PlanetSpec{
				Ring:         ring,
				OrbitRadius:  spacing * float64(ring),
				Angle:        float64(i) * (360 / float64(count)),
				Clockwise:    ring%2 == 0,
				HasSatellite: secondStar && ring%2 != 0,
			})
		}
	}
	return out
}
