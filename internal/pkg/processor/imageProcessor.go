package processor

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/storeassets/internal/entity"
	"github.com/sirupsen/logrus"

	_ "golang.org/x/image/webp"
)

type ImageProcessor interface {
	Decode(path string) (*entity.PixelBuffer, error)
	Crop(src *entity.PixelBuffer, rect entity.Rectangle) (*entity.PixelBuffer, error)
	Resample(src *entity.PixelBuffer, width, height int) (*entity.PixelBuffer, error)
	NewCanvas(width, height int, fill color.Color) *entity.PixelBuffer
	Composite(canvas, src *entity.PixelBuffer, at image.Point) *entity.PixelBuffer
}

type imageProcessor struct {
	filter imaging.ResampleFilter
}

func NewImageProcessor(filter imaging.ResampleFilter) ImageProcessor {
	return &imageProcessor{filter: filter}
}

func (p *imageProcessor) Decode(path string) (*entity.PixelBuffer, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", entity.ErrSourceNotFound)
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", entity.ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", entity.ErrDecodeFailure, err)
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", entity.ErrDecodeFailure, path, err)
	}

	buf := &entity.PixelBuffer{Image: img, Mode: ModeOf(img)}
	logrus.Debugf("Decoded %s: %dx%d %s", path, buf.Width(), buf.Height(), buf.Mode)
	return buf, nil
}

func (p *imageProcessor) Crop(src *entity.PixelBuffer, rect entity.Rectangle) (*entity.PixelBuffer, error) {
	if !rect.Within(src.Width(), src.Height()) || rect.Width == 0 || rect.Height == 0 {
		return nil, fmt.Errorf("%w: crop %s outside %dx%d", entity.ErrInvalidInput, rect, src.Width(), src.Height())
	}

	r := rect.Bounds().Add(src.Image.Bounds().Min)
	return &entity.PixelBuffer{
		Image: imaging.Crop(src.Image, r),
		Mode:  src.Mode,
	}, nil
}

func (p *imageProcessor) Resample(src *entity.PixelBuffer, width, height int) (*entity.PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", entity.ErrResampleFailure, width, height)
	}
	if src.Width() == 0 || src.Height() == 0 {
		return nil, fmt.Errorf("%w: empty source", entity.ErrResampleFailure)
	}

	return &entity.PixelBuffer{
		Image: imaging.Resize(src.Image, width, height, p.filter),
		Mode:  src.Mode,
	}, nil
}

func (p *imageProcessor) NewCanvas(width, height int, fill color.Color) *entity.PixelBuffer {
	r, g, b, _ := fill.RGBA()
	opaque := color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xff}
	return &entity.PixelBuffer{
		Image: imaging.New(width, height, opaque),
		Mode:  entity.ModeOpaque,
	}
}

// Composite places src on canvas with its top-left corner at `at`.
// Sources with alpha are blended; opaque sources replace the covered pixels.
func (p *imageProcessor) Composite(canvas, src *entity.PixelBuffer, at image.Point) *entity.PixelBuffer {
	var out *image.NRGBA
	switch src.Mode {
	case entity.ModeWithAlpha:
		out = imaging.Overlay(canvas.Image, src.Image, at, 1.0)
	default:
		out = imaging.Paste(canvas.Image, src.Image, at)
	}
	return &entity.PixelBuffer{Image: out, Mode: canvas.Mode}
}

// ModeOf derives the buffer mode from the decoded image. Images whose pixels
// are all fully opaque are tagged opaque whatever their color model.
func ModeOf(img image.Image) entity.ColorMode {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return entity.ModeOpaque
	}

	if p, ok := img.ColorModel().(color.Palette); ok {
		for _, c := range p {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return entity.ModeWithAlpha
			}
		}
		return entity.ModeOpaque
	}

	switch img.ColorModel() {
	case color.RGBAModel, color.NRGBAModel, color.RGBA64Model, color.NRGBA64Model,
		color.AlphaModel, color.Alpha16Model:
		return entity.ModeWithAlpha
	}
	return entity.ModeOpaque
}

var filters = map[string]imaging.ResampleFilter{
	"lanczos":    imaging.Lanczos,
	"catmullrom": imaging.CatmullRom,
	"mitchell":   imaging.MitchellNetravali,
	"linear":     imaging.Linear,
	"box":        imaging.Box,
	"nearest":    imaging.NearestNeighbor,
}

// ParseFilter maps a configured filter name to an imaging filter.
func ParseFilter(name string) (imaging.ResampleFilter, error) {
	if name == "" {
		return imaging.Lanczos, nil
	}
	f, ok := filters[strings.ToLower(name)]
	if !ok {
		return imaging.ResampleFilter{}, fmt.Errorf("%w: unknown resample filter %q", entity.ErrInvalidInput, name)
	}
	return f, nil
}
