package web

import "context"

type Server interface {
	Start(ctx context.Context) error
	Stop() error
}

// NoopServer is used when the preview server is disabled.
type NoopServer struct{}

func (n *NoopServer) Start(ctx context.Context) error { return nil }
func (n *NoopServer) Stop() error                     { return nil }
