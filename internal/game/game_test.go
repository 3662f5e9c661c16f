package game

import (
	"testing"

	"github.com/iburimskiy/star-systems/internal/config"
)

func TestGame_StepAdvancesScene(t *testing.T) {
	g := New(config.SolarM)
	if !g.Running() {
		t.Fatal("new game must be running")
	}
	for i := 0; i < 5; i++ {
		g.step()
	}
	if got := g.Scene().Ticks(); got != 5 {
		t.Errorf("Ticks() = %d, want 5", got)
	}
}

func TestGame_StopIsFinal(t *testing.T) {
	g := New(config.SolarAlles)
	g.step()
	g.Stop()
	if g.Running() {
		t.Fatal("Running() = true after Stop")
	}
	if g.state.String() != "stopped" {
		t.Errorf("state = %s, want stopped", g.state)
	}

	g.step()
	g.step()
	g.Stop()
	if got := g.Scene().Ticks(); got != 1 {
		t.Errorf("Ticks() = %d after stop, want 1", got)
	}
	if g.Running() {
		t.Error("driver left the stopped state")
	}
}

func TestGame_Layout(t *testing.T) {
	tests := []struct {
		name  string
		v     config.Variant
		wantW int
		wantH int
	}{
		{"solar_M", config.SolarM, 800, 600 + config.ControlBarHeight},
		{"solar_alles", config.SolarAlles, 1300, 810 + config.ControlBarHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.v)
			w, h := g.Layout(100, 100)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Layout() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
			if g.Canvas().Width() != tt.v.WindowWidth || g.Canvas().Height() != tt.v.WindowHeight {
				t.Errorf("canvas = %dx%d", g.Canvas().Width(), g.Canvas().Height())
			}
		})
	}
}

func click(g *Game, x, y int) {
	g.handlePointer(x, y, true, false)
	g.handlePointer(x, y, false, true)
}

func TestGame_CheckboxTogglesOrbits(t *testing.T) {
	g := New(config.SolarM)
	if !g.checkbox.checked || !g.Scene().ShowOrbits() {
		t.Fatal("Show Orbits must start checked")
	}
	x, y := g.checkbox.x+2, g.checkbox.y+2

	click(g, x, y)
	if g.checkbox.checked || g.Scene().ShowOrbits() {
		t.Fatal("first click did not hide orbits")
	}
	for p := range g.Scene().Planets() {
		if !g.Canvas().Hidden(p.Ring()) {
			t.Fatal("ring still visible after unchecking")
		}
	}

	click(g, x, y)
	if !g.checkbox.checked || !g.Scene().ShowOrbits() {
		t.Fatal("second click did not restore orbits")
	}
	for p := range g.Scene().Planets() {
		if g.Canvas().Hidden(p.Ring()) {
			t.Fatal("ring hidden after checking again")
		}
	}
}

func TestCheckbox_Update(t *testing.T) {
	tests := []struct {
		name   string
		events [][4]int // x, y, pressed, released
		want   bool
	}{
		{
			name:   "click on box",
			events: [][4]int{{2, 2, 1, 0}, {2, 2, 0, 1}},
			want:   false,
		},
		{
			name:   "click on label",
			events: [][4]int{{40, 5, 1, 0}, {40, 5, 0, 1}},
			want:   false,
		},
		{
			name:   "press inside release outside",
			events: [][4]int{{2, 2, 1, 0}, {500, 2, 0, 1}},
			want:   true,
		},
		{
			name:   "press outside release inside",
			events: [][4]int{{500, 2, 1, 0}, {2, 2, 0, 1}},
			want:   true,
		},
		{
			name:   "hover only",
			events: [][4]int{{2, 2, 0, 0}, {3, 3, 0, 0}},
			want:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCheckbox(800, 600)
			for _, ev := range tt.events {
				c.update(c.x+ev[0], c.y+ev[1], ev[2] == 1, ev[3] == 1)
			}
			if c.checked != tt.want {
				t.Errorf("checked = %v, want %v", c.checked, tt.want)
			}
			if c.pressed {
				t.Error("pressed state leaked past release")
			}
		})
	}
}

func TestCheckbox_InControlBar(t *testing.T) {
	c := newCheckbox(1300, 810)
	if c.y < 810 || c.y+c.size > 810+config.ControlBarHeight {
		t.Errorf("box y range [%d, %d] outside control bar", c.y, c.y+c.size)
	}
	if c.x <= 0 || c.x >= 1300/2 {
		t.Errorf("box x = %d, want left of centre", c.x)
	}
}
