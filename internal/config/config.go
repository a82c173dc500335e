package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

const (
	DefaultTitle         = "Untitled"
	DefaultLogicalWidth  = 640
	DefaultLogicalHeight = 400
	DefaultWindowWidth   = 1280
	DefaultWindowHeight  = 800
	DefaultTargetFPS     = 60

	// fallbackFPS sets the interval used for the dt clamp when uncapped.
	fallbackFPS = 60
)

// Config describes the window and the frame scheduler.
type Config struct {
	Title      string
	Resizeable bool

	// LogicalWidth and LogicalHeight size the drawing canvas. They never
	// change after the window is created.
	LogicalWidth  int
	LogicalHeight int

	// WindowWidth and WindowHeight are the initial physical window size.
	WindowWidth  int
	WindowHeight int

	// TargetFPS caps the tick rate. Zero means uncapped.
	TargetFPS int
}

func Default() Config {
	return Config{
		Title:         DefaultTitle,
		Resizeable:    true,
		LogicalWidth:  DefaultLogicalWidth,
		LogicalHeight: DefaultLogicalHeight,
		WindowWidth:   DefaultWindowWidth,
		WindowHeight:  DefaultWindowHeight,
		TargetFPS:     DefaultTargetFPS,
	}
}

type Option func(*Config)

func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

func WithResizeable(resizeable bool) Option {
	return func(c *Config) { c.Resizeable = resizeable }
}

func WithLogicalSize(width, height int) Option {
	return func(c *Config) { c.LogicalWidth, c.LogicalHeight = width, height }
}

func WithWindowSize(width, height int) Option {
	return func(c *Config) { c.WindowWidth, c.WindowHeight = width, height }
}

// WithTargetFPS sets the frame cap; 0 removes it.
func WithTargetFPS(fps int) Option {
	return func(c *Config) { c.TargetFPS = fps }
}

// New applies opts over Default and validates the result.
func New(opts ...Option) (Config, error) {
	cfg := Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.LogicalWidth <= 0 || c.LogicalHeight <= 0 {
		return fmt.Errorf("%w: logical size must be positive (got %dx%d)", ErrInvalid, c.LogicalWidth, c.LogicalHeight)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size must be positive (got %dx%d)", ErrInvalid, c.WindowWidth, c.WindowHeight)
	}
	if c.TargetFPS < 0 {
		return fmt.Errorf("%w: target_fps must be >= 0 (got %d)", ErrInvalid, c.TargetFPS)
	}
	return nil
}

// Capped reports whether the scheduler paces ticks.
func (c Config) Capped() bool { return c.TargetFPS > 0 }

// FrameInterval is the nominal time between ticks. Uncapped configs report
// the 60 fps interval, which is what an oversized dt gets clamped to.
func (c Config) FrameInterval() time.Duration {
	fps := c.TargetFPS
	if fps <= 0 {
		fps = fallbackFPS
	}
	return time.Second / time.Duration(fps)
}
