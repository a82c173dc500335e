//go:build !unix

package system

import "os"

// RedirectStdIO swaps the os.Stdout and os.Stderr handles. Runtime panics
// still go to the original stderr.
func RedirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := openStdIOLog(path)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
