package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/star-systems/internal/config"
)

// Width of one glyph of the debug font.
const charWidth = 6

const labelGap = 6

// checkbox is the "Show Orbits" control in the bar under the canvas. The box
// and its label both react to clicks.
type checkbox struct {
	barY  int
	width int
	x, y  int
	size  int
	label string

	checked bool
	hovered bool
	pressed bool
}

func newCheckbox(windowWidth, canvasHeight int) checkbox {
	size := config.CheckboxSize
	label := config.CheckboxLabel
	total := size + labelGap + len(label)*charWidth
	return checkbox{
		barY:    canvasHeight,
		width:   windowWidth,
		x:       (windowWidth - total) / 2,
		y:       canvasHeight + (config.ControlBarHeight-size)/2,
		size:    size,
		label:   label,
		checked: config.ShowOrbits,
	}
}

func (c *checkbox) contains(x, y int) bool {
	w := c.size + labelGap + len(c.label)*charWidth
	return x >= c.x && x <= c.x+w && y >= c.y && y <= c.y+c.size
}

// update feeds one frame of pointer state and reports whether the box was
// toggled, which happens on a release over the box that was pressed on it.
func (c *checkbox) update(x, y int, justPressed, justReleased bool) bool {
	c.hovered = c.contains(x, y)

	if c.hovered && justPressed {
		c.pressed = true
	}
	if !justReleased {
		return false
	}
	clicked := c.pressed && c.hovered
	c.pressed = false
	if clicked {
		c.checked = !c.checked
	}
	return clicked
}

func (c *checkbox) draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, float32(c.barY), float32(c.width), float32(config.ControlBarHeight), config.ControlBarFill, false)

	var bgColor color.Color
	if c.pressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if c.hovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 235, G: 235, B: 235, A: 255} // Normal
	}
	x, y, s := float32(c.x), float32(c.y), float32(c.size)
	vector.DrawFilledRect(screen, x, y, s, s, bgColor, false)
	vector.StrokeRect(screen, x, y, s, s, 1, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	if c.checked {
		tick := color.RGBA{R: 20, G: 20, B: 20, A: 255}
		vector.StrokeLine(screen, x+3, y+s/2, x+s/2-1, y+s-4, 2, tick, true)
		vector.StrokeLine(screen, x+s/2-1, y+s-4, x+s-3, y+3, 2, tick, true)
	}

	// Debug glyphs are 16px tall with some top padding.
	ebitenutil.DebugPrintAt(screen, c.label, c.x+c.size+labelGap, c.y-1)
}
