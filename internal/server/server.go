// Package server exposes the projection engine over HTTP.
package server

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	json "github.com/goccy/go-json"

	"github.com/chentanran/allschemas"
	"github.com/chentanran/allschemas/dict"
)

// maxSchemaBytes bounds request bodies of POST /v1/projections.
const maxSchemaBytes = 4 << 20

// Options holds what the handlers need.
type Options struct {
	Engine   *allschemas.Engine
	Dicts    *dict.Cache
	Resolver allschemas.APIResolver
	// Wait bounds how long a projection request waits for option lists.
	Wait time.Duration
	Log  *slog.Logger
}

// Handlers serves projections and dictionary lookups.
type Handlers struct {
	opts Options
}

// NewHandlers fills defaults and returns the handlers.
func NewHandlers(opts Options) *Handlers {
	if opts.Engine == nil {
		opts.Engine = allschemas.NewEngine()
	}
	if opts.Dicts == nil {
		opts.Dicts = dict.New()
	}
	if opts.Log == nil {
		opts.Log = slog.New(slog.DiscardHandler)
	}
	return &Handlers{opts: opts}
}

// RegisterRoutes mounts the API on r.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.healthz)
	r.Post("/v1/projections", h.project)
	r.Get("/v1/dicts", h.listDicts)
	r.Get("/v1/dicts/{name}", h.getDict)
}

// NewRouter returns a router with request IDs, panic recovery, request
// logging and the API routes.
func NewRouter(h *Handlers) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.opts.Log))
	h.RegisterRoutes(r)
	return r
}

func (h *Handlers) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// project decodes the posted schema (JSON when Content-Type says so, YAML
// otherwise), builds all four projections and waits for enrichment up to
// ?wait= or the configured default.
func (h *Handlers) project(w http.ResponseWriter, r *http.Request) {
	wait := h.opts.Wait
	if q := r.URL.Query().Get("wait"); q != "" {
		d, err := time.ParseDuration(q)
		if err != nil || d < 0 {
			writeError(w, http.StatusBadRequest, "invalid wait duration", "INVALID_ARGUMENT")
			return
		}
		wait = d
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxSchemaBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unable to read body", "INVALID_ARGUMENT")
		return
	}
	if len(body) > maxSchemaBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "schema too large", "INVALID_ARGUMENT")
		return
	}

	var opts []allschemas.DecodeOption
	if h.opts.Resolver != nil {
		opts = append(opts, allschemas.WithAPIResolver(h.opts.Resolver))
	}
	var nodes []allschemas.Node
	if isJSON(r.Header.Get("Content-Type")) {
		nodes, err = allschemas.DecodeJSON(body, opts...)
	} else {
		nodes, err = allschemas.DecodeYAML(body, opts...)
	}
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error(), "INVALID_SCHEMA")
		return
	}

	// Pending fetches end with the request.
	buildCtx, stop := context.WithCancel(r.Context())
	defer stop()
	all := h.opts.Engine.Build(buildCtx, nodes)
	ctx, cancel := context.WithTimeout(buildCtx, wait)
	defer cancel()
	if err := all.Search.Wait(ctx); err != nil {
		h.opts.Log.InfoContext(r.Context(), "responding before enrichment finished", "wait", wait)
		w.Header().Set("X-Enrichment-Pending", "true")
	}
	writeJSON(w, http.StatusOK, all.Snapshot())
}

func (h *Handlers) listDicts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"data": h.opts.Dicts.Names()})
}

func (h *Handlers) getDict(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	opts, ok := h.opts.Dicts.Lookup(name)
	if !ok {
		writeError(w, http.StatusNotFound, "dictionary not found: "+name, "NOT_FOUND")
		return
	}
	writeJSON(w, http.StatusOK, allschemas.FetchResult{Data: opts})
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == "application/json"
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, code int, message, status string) {
	writeJSON(w, code, map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
			"status":  status,
		},
	})
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.InfoContext(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()))
		})
	}
}
