package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SCENEUI_WINDOW_WIDTH.
const EnvPrefix = "SCENEUI"

// Config holds CLI configuration.
type Config struct {
	Debug  DebugConfig  `mapstructure:"debug"`
	Window WindowConfig `mapstructure:"window"`
}

// DebugConfig holds debug log settings.
type DebugConfig struct {
	// LogPath enables the debug log at this path when non-empty.
	LogPath string `mapstructure:"log_path"`
}

// WindowConfig holds settings for the play window.
type WindowConfig struct {
	Width  int     `mapstructure:"width"`
	Height int     `mapstructure:"height"`
	Title  string  `mapstructure:"title"`
	Scale  float64 `mapstructure:"scale"`
}

// Path returns the config file Load reads: $SCENEUI_CONFIG when set,
// otherwise ~/.config/sceneui/config.toml.
func Path() string {
	if p := os.Getenv(EnvPrefix + "_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "sceneui", "config.toml")
}

// Load reads configuration from file and env. A missing file is not an
// error; a malformed one is.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("debug.log_path", "")
	v.SetDefault("window.width", 640)
	v.SetDefault("window.height", 480)
	v.SetDefault("window.title", "sceneui")
	v.SetDefault("window.scale", 1.0)

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config %s: %w", Path(), err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the play window cannot use.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d: must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window scale %v: must be positive", c.Window.Scale)
	}
	return nil
}
