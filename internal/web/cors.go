package web

import "net/http"

// WithDevCORS enables permissive CORS behavior for local development, so a
// page served elsewhere can poll the preview.
//
// It is intended to be used only when ServerConfig.DevMode is enabled.
func WithDevCORS(next http.Handler) http.Handler {
	if next == nil {
		next = http.NotFoundHandler()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,HEAD,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Cache-Control")
			w.Header().Set("Access-Control-Expose-Headers", "Content-Length,X-Pixelpad-Tick")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
