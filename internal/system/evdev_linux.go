//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

// ErrNoInputDevices is returned when /dev/input has no event devices.
var ErrNoInputDevices = errors.New("no evdev devices found")

// ReadInputEvents reads every /dev/input/event* device and calls fn for each
// record until ctx is done. Calls to fn are serialised. Devices that fail
// to open or go away are skipped.
func ReadInputEvents(ctx context.Context, l logger, fn func(InputEvent)) error {
	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return ErrNoInputDevices
	}

	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := binary.Size(unix.Timeval{})

	var mu sync.Mutex
	emit := func(ev InputEvent) {
		mu.Lock()
		fn(ev)
		mu.Unlock()
	}

	opened := 0
	for _, path := range paths {
		fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
		if err != nil {
			if l != nil {
				l.Errorf("input", "open %s: %v", path, err)
			}
			continue
		}
		opened++
		go readDevice(ctx, os.NewFile(uintptr(fd), path), fd, tvSize, emit)
	}
	if opened == 0 {
		return ErrNoInputDevices
	}
	if l != nil {
		l.Infof("input", "reading %d evdev devices", opened)
	}
	return nil
}

func readDevice(ctx context.Context, f *os.File, fd int, tvSize int, emit func(InputEvent)) {
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		for _, ev := range ParseInputEvents(buf[:n], tvSize) {
			emit(ev)
		}
	}
}
