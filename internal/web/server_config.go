package web

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvListenAddr = "PIXELPAD_LISTEN"
	EnvDevMode    = "PIXELPAD_DEV"
)

// ServerConfig contains settings for running the preview server.
//
// The intended defaults differ per binary:
// - pixelpad:  127.0.0.1:8080, only when -preview is given
// - simulator: :8080
type ServerConfig struct {
	ListenAddr string
	DevMode    bool
}

func DefaultServerConfigFromEnv(defaultListenAddr string) (ServerConfig, error) {
	return serverConfigFromLookup(os.LookupEnv, defaultListenAddr)
}

func serverConfigFromLookup(lookup func(string) (string, bool), defaultListenAddr string) (ServerConfig, error) {
	listenAddr, _ := lookup(EnvListenAddr)
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	devMode := false
	if raw, _ := lookup(EnvDevMode); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDevMode, raw, err)
		}
		devMode = parsed
	}

	return ServerConfig{ListenAddr: listenAddr, DevMode: devMode}, nil
}
