package service

import (
	"github.com/ds124wfegd/storeassets/internal/entity"
	"github.com/ds124wfegd/storeassets/internal/pkg/storage"
	"github.com/sirupsen/logrus"
)

// renderFunc produces the image for one target plus an optional note for the log.
type renderFunc func(target entity.TargetSpec) (*entity.PixelBuffer, string, error)

// exportBatch renders and saves every target in order. A failing target is
// recorded and skipped; the remaining targets are still attempted.
func exportBatch(store storage.FileStorage, source string, targets []entity.TargetSpec, render renderFunc) *entity.BatchReport {
	report := &entity.BatchReport{
		Source:    source,
		OutputDir: store.Dir(),
		Results:   make([]entity.ExportResult, 0, len(targets)),
	}

	for _, target := range targets {
		name := storage.OutputName(source, target)
		result := entity.ExportResult{Target: target}

		buf, note, err := render(target)
		if err == nil {
			result.Path, err = store.SavePNG(name, buf)
		}

		if err != nil {
			result.Err = err
			logrus.WithField("target", target.Label).Errorf("  ❌ Failed to create %s: %v", target.Label, err)
		} else if note != "" {
			logrus.WithField("target", target.Label).Infof("  ✅ %s (%s)", name, note)
		} else {
			logrus.WithField("target", target.Label).Infof("  ✅ %s", name)
		}

		report.Results = append(report.Results, result)
	}

	logrus.Infof("✨ Done! Created %d/%d screenshots", report.Succeeded(), report.Total())
	logrus.Infof("📁 All files saved to: %s", report.OutputDir)
	return report
}
