// Package geometry holds the aspect-ratio arithmetic shared by the asset tools.
// Everything is computed on integers so results do not depend on float rounding.
package geometry

import (
	"fmt"
	"image"

	"github.com/ds124wfegd/storeassets/internal/entity"
)

// Ratio is an exact aspect ratio Num:Den (width:height).
type Ratio struct {
	Num int
	Den int
}

// AspectAppStore is the 16:10 ratio shared by every App Store screenshot size.
var AspectAppStore = Ratio{Num: 16, Den: 10}

func (r Ratio) Float() float64 {
	return float64(r.Num) / float64(r.Den)
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d:%d", r.Num, r.Den)
}

// CenterCrop returns the largest centered rectangle of the given aspect that
// fits in a w x h image. A source wider than aspect keeps its full height;
// anything else, including an exact match, keeps its full width.
func CenterCrop(w, h int, aspect Ratio) (entity.Rectangle, error) {
	if w <= 0 || h <= 0 {
		return entity.Rectangle{}, fmt.Errorf("%w: image size %dx%d", entity.ErrInvalidInput, w, h)
	}
	if aspect.Num <= 0 || aspect.Den <= 0 {
		return entity.Rectangle{}, fmt.Errorf("%w: aspect %s", entity.ErrInvalidInput, aspect)
	}

	// w/h > Num/Den
	if w*aspect.Den > h*aspect.Num {
		cropW := h * aspect.Num / aspect.Den
		return entity.Rectangle{
			X:      (w - cropW) / 2,
			Y:      0,
			Width:  cropW,
			Height: h,
		}, nil
	}

	cropH := w * aspect.Den / aspect.Num
	return entity.Rectangle{
		X:      0,
		Y:      (h - cropH) / 2,
		Width:  w,
		Height: cropH,
	}, nil
}

// Fit describes how a source is scaled and placed inside a target frame.
type Fit struct {
	Scale  float64
	Width  int
	Height int
	Offset image.Point
}

// FitInside scales srcW x srcH uniformly so it fits inside dstW x dstH without
// cropping and centers it. The limiting axis matches the target exactly; the
// other axis is floored.
func FitInside(srcW, srcH, dstW, dstH int) (Fit, error) {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return Fit{}, fmt.Errorf("%w: fit %dx%d into %dx%d", entity.ErrInvalidInput, srcW, srcH, dstW, dstH)
	}

	var fit Fit
	// dstW/srcW <= dstH/srcH
	if dstW*srcH <= dstH*srcW {
		fit.Scale = float64(dstW) / float64(srcW)
		fit.Width = dstW
		fit.Height = max(1, srcH*dstW/srcW)
	} else {
		fit.Scale = float64(dstH) / float64(srcH)
		fit.Width = max(1, srcW*dstH/srcH)
		fit.Height = dstH
	}
	fit.Offset = CenterOffset(dstW, dstH, fit.Width, fit.Height)
	return fit, nil
}

// FitSquare scales srcW x srcH so its larger side equals box, rounding the
// other side to the nearest pixel. Small sources are scaled up.
func FitSquare(srcW, srcH, box int) (int, int, error) {
	if srcW <= 0 || srcH <= 0 || box <= 0 {
		return 0, 0, fmt.Errorf("%w: fit %dx%d into %d square", entity.ErrInvalidInput, srcW, srcH, box)
	}
	if srcW >= srcH {
		return box, max(1, (srcH*box+srcW/2)/srcW), nil
	}
	return max(1, (srcW*box+srcH/2)/srcH), box, nil
}

// CenterOffset is the top-left position that centers an inner box in an
// outer one. Odd remainders leave the extra pixel on the right/bottom.
func CenterOffset(outerW, outerH, innerW, innerH int) image.Point {
	return image.Pt((outerW-innerW)/2, (outerH-innerH)/2)
}
