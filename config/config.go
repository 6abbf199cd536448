// Initializing configuration shared by the asset tools
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "STOREASSETS"

type Config struct {
	Output      OutputConfig      `mapstructure:"output"`
	Icon        IconConfig        `mapstructure:"icon"`
	Screenshots ScreenshotsConfig `mapstructure:"screenshots"`
	Resample    ResampleConfig    `mapstructure:"resample"`
	Log         LogConfig         `mapstructure:"log"`
}

type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

type IconConfig struct {
	Output     string `mapstructure:"output"`
	Size       int    `mapstructure:"size"`
	Margin     int    `mapstructure:"margin"`
	Background string `mapstructure:"background"`
	GlyphColor string `mapstructure:"glyph_color"`
}

type ScreenshotsConfig struct {
	Background string `mapstructure:"background"`
}

type ResampleConfig struct {
	Filter string `mapstructure:"filter"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.dir", "~/Desktop/LinkShelf_AppStore_Screenshots")
	v.SetDefault("icon.output", "~/Desktop/LinkShelf_AppIcon_1024x1024.png")
	v.SetDefault("icon.size", 1024)
	v.SetDefault("icon.margin", 200)
	v.SetDefault("icon.background", "#1C1C1E")
	v.SetDefault("icon.glyph_color", "#6496FF")
	v.SetDefault("screenshots.background", "#1C1C1E")
	v.SetDefault("resample.filter", "lanczos")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// LoadConfig reads ./config/config.yaml when present. Defaults apply for
// missing keys and STOREASSETS_* environment variables override both.
func LoadConfig(paths ...string) (*viper.Viper, error) {

	viperInstance := viper.New()
	setDefaults(viperInstance)

	if len(paths) == 0 {
		paths = []string{"./config"}
	}
	for _, p := range paths {
		viperInstance.AddConfigPath(p)
	}
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	viperInstance.SetEnvPrefix(envPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperInstance.AutomaticEnv()

	err := viperInstance.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return nil, err
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	err := v.Unmarshal(&c)
	if err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c.Icon.Size <= 0 {
		return fmt.Errorf("icon.size must be positive, got %d", c.Icon.Size)
	}
	if c.Icon.Margin < 0 || c.Icon.Margin >= c.Icon.Size {
		return fmt.Errorf("icon.margin must be in [0, %d), got %d", c.Icon.Size, c.Icon.Margin)
	}
	for key, value := range map[string]string{
		"icon.background":        c.Icon.Background,
		"icon.glyph_color":       c.Icon.GlyphColor,
		"screenshots.background": c.Screenshots.Background,
	} {
		if _, err := ParseHexColor(value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB" into an opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
