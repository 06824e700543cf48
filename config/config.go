package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

// Config holds runtime configuration for the trimmer window, overlay and export.
// Fields may be loaded from a JSON file and overridden by environment variables.
type Config struct {
	Debug     bool   `json:"debug"`
	LogFormat string `json:"log_format"` // "json" or "text"
	DarkMode  bool   `json:"dark_mode"`

	// Window and canvas geometry
	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`
	CanvasWidth  int `json:"canvas_width"`
	CanvasHeight int `json:"canvas_height"`

	// Selection overlay
	OutlineColor string  `json:"outline_color"`
	FrozenColor  string  `json:"frozen_color"`
	OutlineWidth float64 `json:"outline_width"`

	// Export resizing: "none", "scale" or "dimensions"
	ResizeMode   string  `json:"resize_mode"`
	ResizeScale  float64 `json:"resize_scale"`
	ResizeWidth  int     `json:"resize_width"`
	ResizeHeight int     `json:"resize_height"`

	OutputDir   string `json:"output_dir"`
	LastOpenDir string `json:"last_open_dir"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:        false,
		LogFormat:    "json",
		WindowWidth:  1300,
		WindowHeight: 850,
		CanvasWidth:  960,
		CanvasHeight: 720,
		OutlineColor: "#ff0000",
		FrozenColor:  "#ffd400",
		OutlineWidth: 2,
		ResizeMode:   "none",
		ResizeScale:  1.0,
		ResizeWidth:  0,
		ResizeHeight: 0,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	d := DefaultConfig()
	if c.LogFormat != "json" && c.LogFormat != "text" {
		c.LogFormat = d.LogFormat
	}
	if c.WindowWidth < 200 {
		c.WindowWidth = d.WindowWidth
	}
	if c.WindowHeight < 200 {
		c.WindowHeight = d.WindowHeight
	}
	if c.CanvasWidth < 50 {
		c.CanvasWidth = d.CanvasWidth
	}
	if c.CanvasHeight < 50 {
		c.CanvasHeight = d.CanvasHeight
	}
	if _, err := colorful.Hex(c.OutlineColor); err != nil {
		c.OutlineColor = d.OutlineColor
	}
	if _, err := colorful.Hex(c.FrozenColor); err != nil {
		c.FrozenColor = d.FrozenColor
	}
	if c.OutlineWidth <= 0 || c.OutlineWidth > 20 {
		c.OutlineWidth = d.OutlineWidth
	}
	switch c.ResizeMode {
	case "none", "scale", "dimensions":
	default:
		c.ResizeMode = d.ResizeMode
	}
	if c.ResizeScale < 0.1 {
		c.ResizeScale = d.ResizeScale
	}
	if c.ResizeWidth < 0 {
		c.ResizeWidth = 0
	}
	if c.ResizeHeight < 0 {
		c.ResizeHeight = 0
	}
	if c.ResizeMode == "dimensions" && (c.ResizeWidth == 0 || c.ResizeHeight == 0) {
		c.ResizeMode = "none"
	}
	return nil
}

// Outline returns the in-progress selection colour.
func (c *Config) Outline() color.Color { return parseColor(c.OutlineColor, DefaultConfig().OutlineColor) }

// Frozen returns the colour of a released selection.
func (c *Config) Frozen() color.Color { return parseColor(c.FrozenColor, DefaultConfig().FrozenColor) }

func parseColor(hex, fallback string) color.Color {
	col, err := colorful.Hex(hex)
	if err != nil {
		col, _ = colorful.Hex(fallback)
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// Backup copies the file at path to path + ".bak" and returns the backup
// path. It is used when path could not be loaded, before the running app gets
// a chance to overwrite it with defaults.
func Backup(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read config for backup: %w", err)
	}
	bak := path + ".bak"
	if err := os.WriteFile(bak, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write config backup %s: %w", bak, err)
	}
	return bak, nil
}
