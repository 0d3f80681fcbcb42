package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/orgball2608/inline-bot-layout/internal/layout"
	"github.com/orgball2608/inline-bot-layout/internal/parser"
	"github.com/orgball2608/inline-bot-layout/internal/ui"
	"github.com/orgball2608/inline-bot-layout/pkg/errors"
	"github.com/orgball2608/inline-bot-layout/pkg/logger"
)

const maxFeedBytes = 4 << 20

type layoutSnapshot struct {
	Registry layout.RegistryStats `json:"registry"`
	List     ui.ListStats         `json:"list"`
	Frames   uint64               `json:"frames"`
}

type diagnostics struct {
	logger  logger.Logger
	loop    *ui.Loop
	factory *layout.Factory
	list    *ui.List
	frames  *ui.FrameScheduler
	parser  parser.Client
}

func (d *diagnostics) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", d.healthCheck)
	mux.HandleFunc("GET /debug/layout", d.layoutStats)
	mux.HandleFunc("POST /results", d.replaceResults)
	return mux
}

func (d *diagnostics) snapshot(ctx context.Context) (layoutSnapshot, error) {
	var snap layoutSnapshot
	err := d.loop.Call(ctx, func() {
		snap = layoutSnapshot{
			Registry: d.factory.Registry().Stats(),
			List:     d.list.Stats(),
			Frames:   d.frames.Frames(),
		}
	})
	return snap, err
}

func (d *diagnostics) healthCheck(w http.ResponseWriter, r *http.Request) {
	d.logger.Debug("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		d.logger.Error("Failed to write response", "Error", err)
	}
}

func (d *diagnostics) layoutStats(w http.ResponseWriter, r *http.Request) {
	snap, err := d.snapshot(r.Context())
	if err != nil {
		d.logger.Warn("Layout snapshot failed", "Error", err)
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	d.writeJSON(w, http.StatusOK, snap)
}

// replaceResults swaps the shown list for the posted feed.
func (d *diagnostics) replaceResults(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxFeedBytes))
	if err != nil {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	shown, err := replaceResults(r.Context(), d.loop, d.parser, d.list, data)
	switch {
	case errors.IsInvalidInput(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		d.logger.Warn("Replacing results failed", "Error", err)
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	d.logger.Info("Results replaced", "items", shown)
	d.writeJSON(w, http.StatusOK, map[string]int{"items": shown})
}

func (d *diagnostics) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		d.logger.Error("Failed to write response", "Error", err)
	}
}
