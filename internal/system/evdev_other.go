//go:build !linux

package system

import (
	"context"
	"errors"
)

var ErrNoInputDevices = errors.New("evdev input is only supported on linux")

func ReadInputEvents(ctx context.Context, l logger, fn func(InputEvent)) error {
	return ErrNoInputDevices
}
