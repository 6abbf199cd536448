package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	v, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	cfg, err := ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "~/Desktop/LinkShelf_AppStore_Screenshots", cfg.Output.Dir)
	assert.Equal(t, "~/Desktop/LinkShelf_AppIcon_1024x1024.png", cfg.Icon.Output)
	assert.Equal(t, 1024, cfg.Icon.Size)
	assert.Equal(t, 200, cfg.Icon.Margin)
	assert.Equal(t, "#1C1C1E", cfg.Screenshots.Background)
	assert.Equal(t, "lanczos", cfg.Resample.Filter)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("output:\n  dir: /tmp/shots\nicon:\n  margin: 100\nlog:\n  format: json\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0644))

	v, err := LoadConfig(dir)
	require.NoError(t, err)
	cfg, err := ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/shots", cfg.Output.Dir)
	assert.Equal(t, 100, cfg.Icon.Margin)
	assert.Equal(t, 1024, cfg.Icon.Size)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("STOREASSETS_OUTPUT_DIR", "/srv/out")
	t.Setenv("STOREASSETS_RESAMPLE_FILTER", "catmullrom")

	v, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	cfg, err := ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "/srv/out", cfg.Output.Dir)
	assert.Equal(t, "catmullrom", cfg.Resample.Filter)
}

func TestLoadConfigBrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("icon: [unterminated"), 0644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Icon: IconConfig{Size: 1024, Margin: 200, Background: "#1C1C1E", GlyphColor: "#6496FF"},
			Screenshots: ScreenshotsConfig{Background: "#000000"},
		}
	}

	assert.NoError(t, valid().Validate())

	c := valid()
	c.Icon.Margin = 1024
	assert.Error(t, c.Validate())

	c = valid()
	c.Icon.Size = 0
	assert.Error(t, c.Validate())

	c = valid()
	c.Screenshots.Background = "blue"
	assert.Error(t, c.Validate())
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input    string
		expected color.NRGBA
		wantErr  bool
	}{
		{input: "#1C1C1E", expected: color.NRGBA{R: 28, G: 28, B: 30, A: 255}},
		{input: "6496ff", expected: color.NRGBA{R: 100, G: 150, B: 255, A: 255}},
		{input: " #FFFFFF ", expected: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{input: "#FFF", wantErr: true},
		{input: "#GGGGGG", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseHexColor(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("STOREASSETS_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("STOREASSETS_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("STOREASSETS_UNSET_KEY", "fallback"))
}
