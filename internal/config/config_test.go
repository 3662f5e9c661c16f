package config

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "", want: "solar_M"},
		{name: "a", want: "solar_M"},
		{name: "solar_M", want: "solar_M"},
		{name: "B", want: "solar_alles"},
		{name: " solar_alles ", want: "solar_alles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup(%q) error: %v", tt.name, err)
			}
			if v.Name != tt.want {
				t.Errorf("Lookup(%q) = %s, want %s", tt.name, v.Name, tt.want)
			}
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("solar_X")
	if !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("Lookup(solar_X) error = %v, want ErrUnknownVariant", err)
	}
}

func TestVariantWindows(t *testing.T) {
	if SolarM.WindowWidth != 800 || SolarM.WindowHeight != 600 {
		t.Errorf("solar_M window = %dx%d", SolarM.WindowWidth, SolarM.WindowHeight)
	}
	if SolarAlles.WindowWidth != 1300 || SolarAlles.WindowHeight != 810 {
		t.Errorf("solar_alles window = %dx%d", SolarAlles.WindowWidth, SolarAlles.WindowHeight)
	}
	if got := SolarAlles.CenterX(); got != 650 {
		t.Errorf("solar_alles CenterX = %v, want 650", got)
	}
	if got := TPS(); got != 20 {
		t.Errorf("TPS = %d, want 20", got)
	}
}
