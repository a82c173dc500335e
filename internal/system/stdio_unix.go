//go:build unix

package system

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// RedirectStdIO points file descriptors 1 and 2 at path so panics from any
// goroutine land in the file even while the console shows graphics.
func RedirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := openStdIOLog(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, std := range []*os.File{os.Stdout, os.Stderr} {
		if err := unix.Dup2(int(f.Fd()), int(std.Fd())); err != nil {
			return fmt.Errorf("dup2 %s onto fd %d: %w", path, std.Fd(), err)
		}
	}
	return nil
}
