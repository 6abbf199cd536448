package service

import (
	"errors"
	"path/filepath"

	"github.com/ds124wfegd/storeassets/internal/entity"
	"github.com/ds124wfegd/storeassets/internal/pkg/geometry"
	"github.com/ds124wfegd/storeassets/internal/pkg/placeholder"
	"github.com/ds124wfegd/storeassets/internal/pkg/storage"
	"github.com/sirupsen/logrus"
)

// Compose renders the square app icon and writes it to outputPath. Any problem
// with the source image falls back to the placeholder glyph; only a failure
// to write the output is returned.
func (s *iconService) Compose(sourcePath, outputPath string) (*entity.IconResult, error) {
	canvas := s.processor.NewCanvas(s.opts.Size, s.opts.Size, s.opts.Background)
	result := &entity.IconResult{}

	icon, err := s.placeSource(canvas, sourcePath)
	switch {
	case err == nil:
		logrus.Infof("✅ Created icon from: %s", sourcePath)
	case errors.Is(err, entity.ErrSourceNotFound) && sourcePath == "":
		logrus.Debug("No source image given")
	case errors.Is(err, entity.ErrSourceNotFound):
		logrus.Infof("ℹ️  Source image not found: %s", sourcePath)
	default:
		logrus.Warnf("⚠️  Could not use source image: %v", err)
		logrus.Warn("   Creating default icon instead...")
	}

	if err != nil {
		icon = placeholder.Draw(canvas, s.opts.GlyphColor)
		result.Placeholder = true
		result.Reason = err
		logrus.Info("ℹ️  Created default icon (you should replace with your custom design)")
	}

	path, err := storage.NewFileStorage(filepath.Dir(outputPath)).SavePNG(filepath.Base(outputPath), icon)
	if err != nil {
		logrus.Errorf("❌ Could not save icon: %v", err)
		return nil, err
	}
	result.Path = path

	logrus.Infof("✅ App icon saved to: %s", path)
	logrus.Infof("📐 Size: %dx%dpx", s.opts.Size, s.opts.Size)
	return result, nil
}

// placeSource scales the source so its larger side fills the icon minus the
// margin and centers it on canvas.
func (s *iconService) placeSource(canvas *entity.PixelBuffer, sourcePath string) (*entity.PixelBuffer, error) {
	src, err := s.processor.Decode(sourcePath)
	if err != nil {
		return nil, err
	}

	w, h, err := geometry.FitSquare(src.Width(), src.Height(), s.opts.Size-s.opts.Margin)
	if err != nil {
		return nil, err
	}

	scaled, err := s.processor.Resample(src, w, h)
	if err != nil {
		return nil, err
	}

	at := geometry.CenterOffset(s.opts.Size, s.opts.Size, w, h)
	return s.processor.Composite(canvas, scaled, at), nil
}
