package entity

import (
	"fmt"
	"image"
)

// ColorMode tags a buffer as opaque or as carrying transparency.
type ColorMode int

const (
	ModeOpaque ColorMode = iota
	ModeWithAlpha
)

func (m ColorMode) String() string {
	switch m {
	case ModeWithAlpha:
		return "RGBA"
	default:
		return "RGB"
	}
}

// PixelBuffer is a decoded image together with its color mode.
// Buffers are never modified in place: every transformation returns a new one.
type PixelBuffer struct {
	Image image.Image
	Mode  ColorMode
}

func (b *PixelBuffer) Width() int {
	return b.Image.Bounds().Dx()
}

func (b *PixelBuffer) Height() int {
	return b.Image.Bounds().Dy()
}

// Rectangle is a region inside a buffer, relative to its top-left corner.
type Rectangle struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Within reports whether r lies entirely inside a w x h buffer.
func (r Rectangle) Within(w, h int) bool {
	return r.X >= 0 && r.Y >= 0 && r.Width >= 0 && r.Height >= 0 &&
		r.X+r.Width <= w && r.Y+r.Height <= h
}

func (r Rectangle) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%dx%d at (%d, %d)", r.Width, r.Height, r.X, r.Y)
}

// TargetSpec is a named output resolution.
type TargetSpec struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Label  string `json:"label"`
}

func NewTargetSpec(width, height int) TargetSpec {
	return TargetSpec{
		Width:  width,
		Height: height,
		Label:  fmt.Sprintf("%dx%d", width, height),
	}
}

// AppStoreTargets are the Mac App Store screenshot resolutions, all 16:10.
var AppStoreTargets = []TargetSpec{
	NewTargetSpec(1280, 800),
	NewTargetSpec(1440, 900),
	NewTargetSpec(2560, 1600),
	NewTargetSpec(2880, 1800),
}
