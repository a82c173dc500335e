package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// RawConfig mirrors the YAML file. Pointer fields distinguish "absent" from
// a zero value so a file only overrides what it names.
type RawConfig struct {
	Title      *string  `yaml:"title"`
	Resizeable *bool    `yaml:"resizeable"`
	Logical    *RawSize `yaml:"logical"`
	Window     *RawSize `yaml:"window"`
	TargetFPS  *int     `yaml:"target_fps"`
}

type RawSize struct {
	Width  *int `yaml:"width"`
	Height *int `yaml:"height"`
}

// LoadFromPath reads a YAML file over Default. A missing file yields the
// defaults; unknown keys are an error.
func LoadFromPath(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	raw, err := parseRaw(data)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg = raw.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func parseRaw(data []byte) (RawConfig, error) {
	var raw RawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	return raw, nil
}

func (r RawConfig) apply(cfg Config) Config {
	if r.Title != nil {
		cfg.Title = *r.Title
	}
	if r.Resizeable != nil {
		cfg.Resizeable = *r.Resizeable
	}
	if r.Logical != nil {
		cfg.LogicalWidth, cfg.LogicalHeight = r.Logical.apply(cfg.LogicalWidth, cfg.LogicalHeight)
	}
	if r.Window != nil {
		cfg.WindowWidth, cfg.WindowHeight = r.Window.apply(cfg.WindowWidth, cfg.WindowHeight)
	}
	if r.TargetFPS != nil {
		cfg.TargetFPS = *r.TargetFPS
	}
	return cfg
}

func (s RawSize) apply(width, height int) (int, int) {
	if s.Width != nil {
		width = *s.Width
	}
	if s.Height != nil {
		height = *s.Height
	}
	return width, height
}
