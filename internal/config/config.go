// internal/config/config.go
package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"hexmancer/pkg/hexmap"
	"hexmancer/pkg/render"
)

const (
	ScreenWidth      = 1200
	ScreenHeight     = 900
	HexSize          = 56
	FogMemory        = 10
	ThumbnailSize    = 100
	ProjectorMonitor = 1

	DefaultImagePath   = "assets/map/map.png"
	DefaultHistoryPath = "assets/map/history.txt"
	DefaultDumpPath    = "assets/map/tmp.png"
)

var (
	DefaultOffset = [2]int{-2, -6}
	DefaultStart  = [2]int{131, 43}

	BackgroundColor = color.RGBA{0, 0, 0, 255}
	OutlineColor    = color.RGBA{255, 215, 0, 255} // gold
	TrailColor      = color.RGBA{255, 215, 0, 255}
	FogColor        = color.RGBA{20, 20, 30, 200}
	LabelColor      = color.RGBA{240, 240, 240, 255}
	OutlineWidth    = 3.0
	TrailWidth      = 2.0
)

// Config holds the settings bundle.
type Config struct {
	Map       MapConfig       `yaml:"map"`
	History   HistoryConfig   `yaml:"history"`
	Projector ProjectorConfig `yaml:"projector"`
}

// MapConfig describes the backdrop and its hex grid.
type MapConfig struct {
	Image      string  `yaml:"image"`
	Resolution *[2]int `yaml:"resolution"`
	HexSize    int     `yaml:"hex_size"`
	Offset     *[2]int `yaml:"offset"`
	Start      *[2]int `yaml:"start"`
	FogMemory  *int    `yaml:"fog_memory"` // history entries kept clear of fog
	FogSeed    int64   `yaml:"fog_seed"`
	Label      bool    `yaml:"label"`
}

// HistoryConfig selects where the movement log lives.
type HistoryConfig struct {
	Backend string `yaml:"backend"` // file | sqlite
	Path    string `yaml:"path"`
}

// ProjectorConfig holds the second-display window settings.
type ProjectorConfig struct {
	Title      string  `yaml:"title"`
	Monitor    *int    `yaml:"monitor"` // 0 is the primary display
	Fullscreen bool    `yaml:"fullscreen"`
	DumpPath   string  `yaml:"dump_path"`
	Thumbnail  *[2]int `yaml:"thumbnail"`
}

// Default returns a Config with every default filled in.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML settings and fills defaults for missing values.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func pair(x, y int) *[2]int { return &[2]int{x, y} }

func (c *Config) applyDefaults() {
	if c.Map.Image == "" {
		c.Map.Image = DefaultImagePath
	}
	if c.Map.Resolution == nil {
		c.Map.Resolution = pair(ScreenWidth, ScreenHeight)
	}
	if c.Map.HexSize == 0 {
		c.Map.HexSize = HexSize
	}
	if c.Map.Offset == nil {
		c.Map.Offset = pair(DefaultOffset[0], DefaultOffset[1])
	}
	if c.Map.Start == nil {
		c.Map.Start = pair(DefaultStart[0], DefaultStart[1])
	}
	if c.Map.FogMemory == nil {
		n := FogMemory
		c.Map.FogMemory = &n
	}
	if c.History.Backend == "" {
		c.History.Backend = "file"
	}
	if c.History.Path == "" {
		c.History.Path = DefaultHistoryPath
	}
	if c.Projector.Title == "" {
		c.Projector.Title = "Hex Map"
	}
	if c.Projector.Monitor == nil {
		m := ProjectorMonitor
		c.Projector.Monitor = &m
	}
	if c.Projector.DumpPath == "" {
		c.Projector.DumpPath = DefaultDumpPath
	}
	if c.Projector.Thumbnail == nil {
		c.Projector.Thumbnail = pair(ThumbnailSize, ThumbnailSize)
	}
}

// Validate rejects settings a HexMap cannot run with.
func (c *Config) Validate() error {
	if c.Map.Resolution[0] <= 0 || c.Map.Resolution[1] <= 0 {
		return fmt.Errorf("map.resolution must be positive, got %v", *c.Map.Resolution)
	}
	if c.Map.HexSize < 0 {
		return fmt.Errorf("map.hex_size must be positive, got %d", c.Map.HexSize)
	}
	switch c.History.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("history.backend must be file or sqlite, got %q", c.History.Backend)
	}
	return nil
}

// Palette returns the render colours.
func Palette() render.Palette {
	return render.Palette{
		Background:   BackgroundColor,
		Outline:      OutlineColor,
		Trail:        TrailColor,
		Fog:          FogColor,
		Label:        LabelColor,
		OutlineWidth: float32(OutlineWidth),
		TrailWidth:   float32(TrailWidth),
	}
}

// HexMap returns the immutable construction settings for hexmap.New.
func (c *Config) HexMap() hexmap.Config {
	m := c.Map
	return hexmap.Config{
		Resolution: hexmap.C(m.Resolution[0], m.Resolution[1]),
		HexSize:    m.HexSize,
		Offset:     hexmap.C(m.Offset[0], m.Offset[1]),
		Start:      hexmap.C(m.Start[0], m.Start[1]),
		FogMemory:  *m.FogMemory,
		FogSeed:    m.FogSeed,
		Label:      m.Label,
		Palette:    Palette(),
	}
}
