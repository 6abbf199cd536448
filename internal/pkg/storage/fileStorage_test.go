package storage

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/storeassets/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "screenshots")
	s := NewFileStorage(dir)

	require.NoError(t, s.EnsureDir())
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// second call is a no-op
	assert.NoError(t, s.EnsureDir())
}

func TestEnsureDirOverFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	err := NewFileStorage(file).EnsureDir()
	assert.ErrorIs(t, err, entity.ErrSaveFailure)
}

func TestSavePNG(t *testing.T) {
	s := NewFileStorage(t.TempDir())
	buf := &entity.PixelBuffer{Image: imaging.New(32, 20, color.NRGBA{R: 200, A: 255})}

	path, err := s.SavePNG("shot_32x20.png", buf)
	require.NoError(t, err)
	assert.Equal(t, s.Path("shot_32x20.png"), path)
	assert.FileExists(t, path)

	decoded, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 20), decoded.Bounds())
}

func TestSavePNGFailure(t *testing.T) {
	dir := t.TempDir()
	// a regular file where the output directory should be
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	s := NewFileStorage(blocker)
	buf := &entity.PixelBuffer{Image: imaging.New(4, 4, color.Black)}

	_, err := s.SavePNG("out.png", buf)
	assert.ErrorIs(t, err, entity.ErrSaveFailure)
}

func TestSave(t *testing.T) {
	s := NewFileStorage(t.TempDir())

	require.NoError(t, s.Save("meta/report.txt", strings.NewReader("ok")))
	data, err := os.ReadFile(s.Path("meta/report.txt"))
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
	assert.NoFileExists(t, s.Path("meta/missing.txt"))
}

func TestOutputName(t *testing.T) {
	target := entity.NewTargetSpec(1280, 800)

	tests := []struct {
		input    string
		expected string
	}{
		{input: "/Users/me/Desktop/LinkShelf1.png", expected: "LinkShelf1_1280x800.png"},
		{input: "shot.PNG", expected: "shot_1280x800.png"},
		{input: "shot.png.png", expected: "shot_1280x800.png"},
		{input: "photo.jpeg", expected: "photo_1280x800.png"},
		{input: "noext", expected: "noext_1280x800.png"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, OutputName(tt.input, target))
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "Desktop", "x.png"), ExpandHome("~/Desktop/x.png"))
	assert.Equal(t, "/tmp/x.png", ExpandHome("/tmp/x.png"))
	assert.Equal(t, "relative/x.png", ExpandHome("relative/x.png"))
}
