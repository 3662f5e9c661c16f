// Package snapshot rasterizes a canvas without opening a window.
package snapshot

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/star-systems/internal/canvas"
)

// OutlineWidth is the stroke width used for unfilled ovals.
const OutlineWidth = 1.0

// Render paints every visible item of c, in paint order, onto a new
// drawing context of the canvas size.
func Render(c *canvas.Canvas) (*gg.Context, error) {
	dc := gg.NewContext(c.Width(), c.Height())
	dc.ClearWithColor(gg.FromColor(c.Background()))
	dc.SetLineWidth(OutlineWidth)

	var firstErr error
	c.Each(func(h canvas.Handle, it canvas.Item) {
		if it.Hidden || firstErr != nil {
			return
		}
		if err := drawItem(dc, it); err != nil {
			firstErr = fmt.Errorf("item %d: %w", h, err)
		}
	})
	if firstErr != nil {
		_ = dc.Close()
		return nil, firstErr
	}
	return dc, nil
}

func drawItem(dc *gg.Context, it canvas.Item) error {
	x, y := it.Center()
	r := it.Radius()
	if fill := it.Style.Fill; fill != nil {
		dc.SetColor(fill)
		dc.DrawCircle(x, y, r)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	if outline := it.Style.Outline; outline != nil {
		dc.SetColor(outline)
		dc.DrawCircle(x, y, r)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// SavePNG renders c and writes it to path.
func SavePNG(c *canvas.Canvas, path string) error {
	dc, err := Render(c)
	if err != nil {
		return fmt.Errorf("render snapshot: %w", err)
	}
	defer dc.Close()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}

// At returns the colour of one rendered pixel.
func At(dc *gg.Context, x, y int) color.RGBA {
	r, g, b, a := dc.Image().At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
