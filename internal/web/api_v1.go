package web

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"strconv"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type sizeResponse struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type statusResponse struct {
	Phase         string       `json:"phase"`
	Title         string       `json:"title"`
	Logical       sizeResponse `json:"logical"`
	Window        sizeResponse `json:"window"`
	Ticks         uint64       `json:"ticks"`
	LastDtMillis  float64      `json:"lastDtMs"`
	PresentErrors uint64       `json:"presentErrors"`
	DroppedEvents uint64       `json:"droppedEvents"`
}

func apiV1Router(deps APIV1Deps) http.Handler {
	deps = deps.withDefaults()
	mux := http.NewServeMux()
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) { handleStatus(w, r, deps) })
	mux.HandleFunc("/frame.png", func(w http.ResponseWriter, r *http.Request) { handleFrame(w, r, deps) })
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusNotFound, "not_found", "not found")
	})
	return mux
}

func handleStatus(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}

	snap := deps.Status.Snapshot()
	writeJSON(w, http.StatusOK, statusResponse{
		Phase:         snap.Phase.String(),
		Title:         snap.Title,
		Logical:       sizeResponse{Width: snap.LogicalWidth, Height: snap.LogicalHeight},
		Window:        sizeResponse{Width: snap.WindowWidth, Height: snap.WindowHeight},
		Ticks:         snap.Stats.Ticks,
		LastDtMillis:  float64(snap.Stats.LastDt.Microseconds()) / 1000,
		PresentErrors: snap.Stats.PresentErrors,
		DroppedEvents: snap.Stats.DroppedEvents,
	})
}

// handleFrame serves the last presented frame. ?scale=window returns it at
// the window size instead of the logical size.
func handleFrame(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}

	get := deps.Frames.Logical
	switch scale := r.URL.Query().Get("scale"); scale {
	case "", "logical":
	case "window":
		get = deps.Frames.Scaled
	default:
		writeAPIError(w, http.StatusBadRequest, "invalid_scale", "scale must be logical or window")
		return
	}

	frame, ok := get()
	if !ok {
		writeAPIError(w, http.StatusNotFound, "no_frame", "no frame presented yet")
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, frame); err != nil {
		deps.Logger.Errorf("web", "encode frame: %v", err)
		writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Pixelpad-Tick", strconv.FormatUint(deps.Status.Snapshot().Stats.Ticks, 10))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(buf.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
