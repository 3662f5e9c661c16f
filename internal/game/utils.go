package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/star-systems/internal/canvas"
)

// outlineWidth matches the one-pixel ring outline of the snapshot renderer.
const outlineWidth = 1

func circleOf(it canvas.Item) (cx, cy, r float32) {
	x, y := it.Center()
	return float32(x), float32(y), float32(it.Radius())
}

// drawItem paints a canvas oval with its fill first and its outline on top.
func drawItem(screen *ebiten.Image, it canvas.Item) {
	cx, cy, r := circleOf(it)
	if r <= 0 {
		return
	}
	if it.Style.Fill != nil {
		vector.DrawFilledCircle(screen, cx, cy, r, it.Style.Fill, true)
	}
	if it.Style.Outline != nil {
		vector.StrokeCircle(screen, cx, cy, r, outlineWidth, it.Style.Outline, true)
	}
}
