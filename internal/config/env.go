package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	EnvTitle   = "PIXELPAD_TITLE"
	EnvFPS     = "PIXELPAD_FPS"
	EnvLogical = "PIXELPAD_LOGICAL"
	EnvWindow  = "PIXELPAD_WINDOW"
)

// FromEnv overrides base with any PIXELPAD_* variables that are set.
// Sizes are written as WIDTHxHEIGHT.
func FromEnv(base Config) (Config, error) {
	return fromLookup(base, os.LookupEnv)
}

func fromLookup(base Config, lookup func(string) (string, bool)) (Config, error) {
	cfg := base
	if v, ok := lookup(EnvTitle); ok {
		cfg.Title = v
	}
	if v, ok := lookup(EnvFPS); ok && v != "" {
		fps, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%s must be an integer (got %q): %w", EnvFPS, v, err)
		}
		cfg.TargetFPS = fps
	}
	if v, ok := lookup(EnvLogical); ok && v != "" {
		w, h, err := ParseSize(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogical, err)
		}
		cfg.LogicalWidth, cfg.LogicalHeight = w, h
	}
	if v, ok := lookup(EnvWindow); ok && v != "" {
		w, h, err := ParseSize(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvWindow, err)
		}
		cfg.WindowWidth, cfg.WindowHeight = w, h
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseSize parses "640x400" (an upper-case X is accepted too).
func ParseSize(s string) (width, height int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: size %q is not WIDTHxHEIGHT", ErrInvalid, s)
	}
	width, err = strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: size %q: bad width: %v", ErrInvalid, s, err)
	}
	height, err = strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: size %q: bad height: %v", ErrInvalid, s, err)
	}
	return width, height, nil
}
