package web

import (
	"net/http"
	"path"

	"github.com/rook-computer/pixelpad/internal/assets"
)

// RegisterAPIV1 registers the public API routes under /api/v1/.
func RegisterAPIV1(mux *http.ServeMux, deps APIV1Deps) {
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiV1Router(deps)))
}

// RegisterUI serves the embedded preview page, which polls frame.png.
func RegisterUI(mux *http.ServeMux) {
	fileServer := http.FileServer(http.FS(assets.WebUI))
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Clean path to avoid oddities.
		r.URL.Path = path.Clean("/" + r.URL.Path)
		fileServer.ServeHTTP(w, r)
	}))
}

// NewDefaultMux builds the mux used by both binaries:
// - /api/v1/* for the API
// - / for the preview page
func NewDefaultMux(deps APIV1Deps) *http.ServeMux {
	mux := http.NewServeMux()
	RegisterAPIV1(mux, deps)
	RegisterUI(mux)
	return mux
}
