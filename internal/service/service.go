package service

import (
	"image/color"

	"github.com/ds124wfegd/storeassets/internal/entity"
	"github.com/ds124wfegd/storeassets/internal/pkg/geometry"
	"github.com/ds124wfegd/storeassets/internal/pkg/processor"
	"github.com/ds124wfegd/storeassets/internal/pkg/storage"
)

type IconService interface {
	Compose(sourcePath, outputPath string) (*entity.IconResult, error)
}

// ScreenshotService turns one screenshot into one file per target resolution.
type ScreenshotService interface {
	Run(inputPath string) (*entity.BatchReport, error)
}

type IconOptions struct {
	Size       int
	Margin     int
	Background color.Color
	GlyphColor color.Color
}

type iconService struct {
	processor processor.ImageProcessor
	opts      IconOptions
}

func NewIconService(processor processor.ImageProcessor, opts IconOptions) IconService {
	return &iconService{
		processor: processor,
		opts:      opts,
	}
}

type cropService struct {
	processor processor.ImageProcessor
	storage   storage.FileStorage
	targets   []entity.TargetSpec
	aspect    geometry.Ratio
}

func NewCropService(processor processor.ImageProcessor, storage storage.FileStorage, targets []entity.TargetSpec, aspect geometry.Ratio) ScreenshotService {
	return &cropService{
		processor: processor,
		storage:   storage,
		targets:   targets,
		aspect:    aspect,
	}
}

type padService struct {
	processor  processor.ImageProcessor
	storage    storage.FileStorage
	targets    []entity.TargetSpec
	background color.Color
}

func NewPadService(processor processor.ImageProcessor, storage storage.FileStorage, targets []entity.TargetSpec, background color.Color) ScreenshotService {
	return &padService{
		processor:  processor,
		storage:    storage,
		targets:    targets,
		background: background,
	}
}
