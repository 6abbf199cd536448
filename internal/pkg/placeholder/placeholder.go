// Package placeholder draws the fallback app icon glyph: two overlapping
// ellipse outlines suggesting a chain link.
package placeholder

import (
	"image"
	"image/color"

	"github.com/ds124wfegd/storeassets/internal/entity"
	"github.com/fogleman/gg"
)

const (
	strokeWidth = 30
	// horizontal gap between each ring and the canvas center
	ringOffset = 50
)

// DefaultColor is the glyph stroke color.
var DefaultColor = color.RGBA{R: 100, G: 150, B: 255, A: 255}

// Boxes returns the bounding boxes of the left and right rings for a canvas
// of the given width and height.
func Boxes(width, height int) (left, right image.Rectangle) {
	cx, cy := width/2, height/2
	r := width / 3

	left = image.Rect(cx-r-ringOffset, cy-r/2, cx-ringOffset, cy+r/2)
	right = image.Rect(cx+ringOffset, cy-r/2, cx+r+ringOffset, cy+r/2)
	return left, right
}

// Draw returns a copy of canvas with the glyph stroked in c.
// Strokes stay inside their bounding boxes.
func Draw(canvas *entity.PixelBuffer, c color.Color) *entity.PixelBuffer {
	dc := gg.NewContextForImage(canvas.Image)
	dc.SetColor(c)
	dc.SetLineWidth(strokeWidth)

	left, right := Boxes(canvas.Width(), canvas.Height())
	for _, box := range []image.Rectangle{left, right} {
		drawRing(dc, box)
	}

	return &entity.PixelBuffer{Image: dc.Image(), Mode: canvas.Mode}
}

func drawRing(dc *gg.Context, box image.Rectangle) {
	cx := float64(box.Min.X+box.Max.X) / 2
	cy := float64(box.Min.Y+box.Max.Y) / 2
	rx := float64(box.Dx())/2 - strokeWidth/2
	ry := float64(box.Dy())/2 - strokeWidth/2
	if rx <= 0 || ry <= 0 {
		return
	}

	dc.NewSubPath()
	dc.DrawEllipse(cx, cy, rx, ry)
	dc.Stroke()
}
