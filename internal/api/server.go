// Package api implements the gridsynth HTTP service.
//
// The service exposes the engine over a small JSON API — the same boundary
// the CLI consumes, made available to remote callers:
//
//	GET  /healthz             liveness probe
//	POST /v1/synthesize       archive in, synthesized archive out
//	POST /v1/render           archive in, rendered artifact out
//
// Request bodies are archive documents; malformed archives yield 400 with a
// machine-readable error code. Rendered artifacts are cached by grid
// content hash since rendering is deterministic.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/gridsynth/pkg/archive"
	"github.com/matzehuels/gridsynth/pkg/cache"
	"github.com/matzehuels/gridsynth/pkg/errors"
	"github.com/matzehuels/gridsynth/pkg/render"
)

// maxBodySize caps archive payloads at 16MB.
const maxBodySize = 16 << 20

// Server handles the HTTP API.
type Server struct {
	logger *log.Logger
	cache  cache.Cache
	keyer  cache.Keyer
	router chi.Router
}

// NewServer creates the API server. A nil cache disables artifact caching;
// a nil logger falls back to the default logger.
func NewServer(logger *log.Logger, c cache.Cache) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if c == nil {
		c = cache.NewNullCache()
	}

	s := &Server{
		logger: logger,
		cache:  c,
		keyer:  cache.NewDefaultKeyer(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/synthesize", s.handleSynthesize)
	r.Post("/v1/render", s.handleRender)

	s.router = r
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleSynthesize decodes an archive, runs the pipeline once and responds
// with the synthesized archive. Every run gets a fresh id for log
// correlation, returned in X-Run-ID.
func (s *Server) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	engine, err := archive.Read(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		s.writeError(w, err)
		return
	}

	runID := uuid.NewString()
	start := time.Now()
	if err := engine.Synthesize(); err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info("synthesized",
		"run_id", runID,
		"transformations", len(engine.Transformations()),
		"duration", time.Since(start).Round(time.Millisecond))

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Run-ID", runID)
	if err := archive.Write(engine, w); err != nil {
		s.logger.Error("write response", "err", err)
	}
}

// handleRender decodes an archive and responds with a rendered artifact of
// its grid. Supported formats: png (default), txt, dot, svg. PNG accepts a
// scale query parameter.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	engine, err := archive.Read(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		s.writeError(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "png"
	}
	scale := render.DefaultScale
	if v := r.URL.Query().Get("scale"); v != "" {
		scale, err = strconv.Atoi(v)
		if err != nil || scale < 1 {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid scale %q", v))
			return
		}
	}

	var artifact []byte
	var contentType string
	switch format {
	case "png":
		artifact, err = render.CachedPNG(r.Context(), s.cache, s.keyer, engine.Grid(), scale)
		contentType = "image/png"
	case "txt":
		artifact = []byte(render.Text(engine.Grid()))
		contentType = "text/plain; charset=utf-8"
	case "dot":
		artifact = []byte(render.PipelineDOT(engine))
		contentType = "text/vnd.graphviz"
	case "svg":
		artifact, err = render.SVG(render.PipelineDOT(engine))
		contentType = "image/svg+xml"
	default:
		err = errors.New(errors.ErrCodeInvalidInput, "invalid format %q (must be one of: png, txt, dot, svg)", format)
	}
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(artifact)
}

// errorResponse is the JSON error payload.
type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// writeError maps engine error codes to HTTP status codes and writes a
// JSON error payload.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeMalformedArchive, errors.ErrCodeInvalidInput, errors.ErrCodeEmptyAlphabet:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeOutOfRange:
		status = http.StatusNotFound
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Code:  string(errors.GetCode(err)),
		Error: errors.UserMessage(err),
	})
}

// logRequests emits one structured log line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Millisecond),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
