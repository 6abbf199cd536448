// wiring configuration, logging, processor, storage and services for the CLI tools
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/ds124wfegd/storeassets/config"
	"github.com/ds124wfegd/storeassets/internal/entity"
	"github.com/ds124wfegd/storeassets/internal/pkg/geometry"
	"github.com/ds124wfegd/storeassets/internal/pkg/processor"
	"github.com/ds124wfegd/storeassets/internal/pkg/storage"
	"github.com/ds124wfegd/storeassets/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	ToolIcon    = "iconcomposer"
	ToolCropper = "aspectcropper"
	ToolPadder  = "aspectpadder"
)

type App struct {
	cfg     *config.Config
	icon    service.IconService
	cropper service.ScreenshotService
	padder  service.ScreenshotService
	// usage and other plain output
	out io.Writer
}

// Bootstrap loads configuration from ./config and the environment and builds
// the application for the named tool.
func Bootstrap(tool string) (*App, error) {
	v, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		return nil, err
	}
	if err := ConfigureLogging(cfg.Log, tool); err != nil {
		return nil, err
	}
	return New(cfg)
}

func New(cfg *config.Config) (*App, error) {
	filter, err := processor.ParseFilter(cfg.Resample.Filter)
	if err != nil {
		return nil, err
	}
	iconBackground, err := config.ParseHexColor(cfg.Icon.Background)
	if err != nil {
		return nil, err
	}
	glyphColor, err := config.ParseHexColor(cfg.Icon.GlyphColor)
	if err != nil {
		return nil, err
	}
	padBackground, err := config.ParseHexColor(cfg.Screenshots.Background)
	if err != nil {
		return nil, err
	}

	imgProcessor := processor.NewImageProcessor(filter)
	fileStorage := storage.NewFileStorage(storage.ExpandHome(cfg.Output.Dir))

	return &App{
		cfg: cfg,
		icon: service.NewIconService(imgProcessor, service.IconOptions{
			Size:       cfg.Icon.Size,
			Margin:     cfg.Icon.Margin,
			Background: iconBackground,
			GlyphColor: glyphColor,
		}),
		cropper: service.NewCropService(imgProcessor, fileStorage, entity.AppStoreTargets, geometry.AspectAppStore),
		padder:  service.NewPadService(imgProcessor, fileStorage, entity.AppStoreTargets, padBackground),
		out:     os.Stdout,
	}, nil
}

// RunIcon implements `iconcomposer [sourceImagePath] [outputPath]`.
// Source problems never fail the run; only a failed write does.
func (a *App) RunIcon(args []string) int {
	var source string
	if len(args) > 0 {
		source = args[0]
	}
	output := storage.ExpandHome(a.cfg.Icon.Output)
	if len(args) > 1 {
		output = args[1]
	}

	if _, err := a.icon.Compose(source, output); err != nil {
		return 1
	}
	logrus.Info("📤 Ready to upload to App Store Connect!")
	return 0
}

// RunCrop implements `aspectcropper <inputImagePath>`.
func (a *App) RunCrop(args []string) int {
	return a.runBatch(ToolCropper, a.cropper, args)
}

// RunPad implements `aspectpadder <inputImagePath>`.
func (a *App) RunPad(args []string) int {
	return a.runBatch(ToolPadder, a.padder, args)
}

func (a *App) runBatch(tool string, svc service.ScreenshotService, args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(a.out, "Usage: %s <input_image.png>\n", tool)
		fmt.Fprintf(a.out, "\nExample: %s ~/Desktop/LinkShelf1.png\n", tool)
		return 1
	}

	input := args[0]
	if _, err := os.Stat(input); err != nil {
		logrus.Errorf("❌ Error: File not found: %s", input)
		return 1
	}

	report, err := svc.Run(input)
	if err != nil {
		return 1
	}
	logrus.Info("📤 Ready to upload to App Store Connect!")
	return ExitCode(report)
}

// ExitCode is 0 only when every target of the batch was written.
func ExitCode(report *entity.BatchReport) int {
	if report != nil && report.OK() {
		return 0
	}
	return 1
}
