package service

import (
	"fmt"

	"github.com/ds124wfegd/storeassets/internal/entity"
	"github.com/ds124wfegd/storeassets/internal/pkg/geometry"
	"github.com/sirupsen/logrus"
)

// Run crops the screenshot once to the service aspect and resamples that crop
// to every target. Decode and crop errors abort before any target is written.
func (s *cropService) Run(inputPath string) (*entity.BatchReport, error) {
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

	rect, err := geometry.CenterCrop(src.Width(), src.Height(), s.aspect)
	if err != nil {
		return nil, fmt.Errorf("crop %s: %w", inputPath, err)
	}
	logrus.Infof("✂️  Cropping to %s aspect ratio...", s.aspect)
	logrus.Infof("   Crop area: %s", rect)

	cropped, err := s.processor.Crop(src, rect)
	if err != nil {
		return nil, fmt.Errorf("crop %s: %w", inputPath, err)
	}

	logrus.Info("🔄 Resizing to App Store dimensions...")
	report := exportBatch(s.storage, inputPath, s.targets, func(target entity.TargetSpec) (*entity.PixelBuffer, string, error) {
		buf, err := s.processor.Resample(cropped, target.Width, target.Height)
		return buf, "", err
	})
	return report, nil
}
