package service

import (
	"fmt"

	"github.com/ds124wfegd/storeassets/internal/entity"
	"github.com/ds124wfegd/storeassets/internal/pkg/geometry"
	"github.com/sirupsen/logrus"
)

// Run letterboxes the screenshot into every target. Each target resamples the
// original source; nothing is shared between targets.
func (s *padService) Run(inputPath string) (*entity.BatchReport, error) {
	if err := s.storage.EnsureDir(); err != nil {
		return nil, err
	}
	logrus.Infof("📁 Output directory: %s", s.storage.Dir())

	src, err := s.processor.Decode(inputPath)
	if err != nil {
		logrus.Errorf("❌ Error opening image: %v", err)
		return nil, err
	}
	logrus.Infof("📐 Original dimensions: %dx%d", src.Width(), src.Height())

	logrus.Info("🔄 Resizing with padding to App Store dimensions...")
	report := exportBatch(s.storage, inputPath, s.targets, func(target entity.TargetSpec) (*entity.PixelBuffer, string, error) {
		return s.letterbox(src, target)
	})
	if report.OK() {
		logrus.Info("💡 Tip: Screenshots now have padding to preserve all UI elements")
	}
	return report, nil
}

func (s *padService) letterbox(src *entity.PixelBuffer, target entity.TargetSpec) (*entity.PixelBuffer, string, error) {
	fit, err := geometry.FitInside(src.Width(), src.Height(), target.Width, target.Height)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", entity.ErrResampleFailure, err)
	}

	resized, err := s.processor.Resample(src, fit.Width, fit.Height)
	if err != nil {
		return nil, "", err
	}

	canvas := s.processor.NewCanvas(target.Width, target.Height, s.background)
	out := s.processor.Composite(canvas, resized, fit.Offset)
	return out, fmt.Sprintf("scaled %.2fx, centered", fit.Scale), nil
}
