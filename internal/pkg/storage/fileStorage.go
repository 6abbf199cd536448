package storage

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/storeassets/internal/entity"
)

type FileStorage interface {
	EnsureDir() error
	Save(name string, data io.Reader) error
	SavePNG(name string, buf *entity.PixelBuffer) (string, error)
	Path(name string) string
	Dir() string
}

type fileStorage struct {
	basePath string
}

func NewFileStorage(basePath string) FileStorage {
	return &fileStorage{basePath: basePath}
}

func (s *fileStorage) EnsureDir() error {
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return fmt.Errorf("%w: create %s: %v", entity.ErrSaveFailure, s.basePath, err)
	}
	return nil
}

func (s *fileStorage) Save(name string, data io.Reader) error {
	fullPath := s.Path(name)

	// Создаем директорию если нужно
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return err
	}

	if _, err = io.Copy(file, data); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// SavePNG encodes buf as a maximally compressed PNG and returns the full path.
// The image is encoded in memory first so a failed encode leaves no file behind.
func (s *fileStorage) SavePNG(name string, buf *entity.PixelBuffer) (string, error) {
	var encoded bytes.Buffer
	err := imaging.Encode(&encoded, buf.Image, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	if err != nil {
		return "", fmt.Errorf("%w: encode %s: %v", entity.ErrSaveFailure, name, err)
	}

	if err := s.Save(name, &encoded); err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrSaveFailure, err)
	}
	return s.Path(name), nil
}

func (s *fileStorage) Path(name string) string {
	return filepath.Join(s.basePath, name)
}

func (s *fileStorage) Dir() string {
	return s.basePath
}

// OutputName builds "{basename}_{label}.png" for a source file and target.
func OutputName(inputPath string, target entity.TargetSpec) string {
	return fmt.Sprintf("%s_%s.png", BaseName(inputPath), target.Label)
}

// BaseName strips the directory, the extension and any leftover ".png"/".PNG".
func BaseName(inputPath string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, ".png", "")
	return strings.ReplaceAll(base, ".PNG", "")
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
