package system

import (
	"os"
	"strings"
)

// EnvStdIOLog names the file stdout and stderr are redirected to when no
// flag is given.
const EnvStdIOLog = "PIXELPAD_STDIO_LOG"

// StdIOLogPath picks the redirect target: the flag value wins over the
// environment.
func StdIOLogPath(flagValue string, lookup func(string) (string, bool)) string {
	if p := strings.TrimSpace(flagValue); p != "" {
		return p
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	p, _ := lookup(EnvStdIOLog)
	return strings.TrimSpace(p)
}

func openStdIOLog(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}
