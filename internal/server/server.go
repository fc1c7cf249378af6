// Package server implements the wireform HTTP facade.
//
// The server exposes the layout engine over a small JSON API so renderers
// and editors can request placements without linking the Go library:
//
//	POST /v1/layout  - lay out a wireframe document, returns placements
//	GET  /v1/canvas  - compute canvas dimensions for a screen count
//	GET  /healthz    - liveness probe
//
// This is deliberately a thin delivery surface over pkg/pipeline; diagram
// storage and collaboration belong to other services.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ben-mad-jlp/wireform/pkg/diagram"
	"github.com/ben-mad-jlp/wireform/pkg/errors"
	"github.com/ben-mad-jlp/wireform/pkg/observability"
	"github.com/ben-mad-jlp/wireform/pkg/pipeline"
	"github.com/ben-mad-jlp/wireform/pkg/wireframe"
)

// Defaults carries the operator-configured layout defaults from
// config.toml. Zero values fall back to the pipeline defaults.
type Defaults struct {
	// TTL bounds how long computed layouts stay cached.
	TTL time.Duration

	// Viewport and Arrangement apply when neither the request nor the
	// document specifies one.
	Viewport    string
	Arrangement string
}

// Server handles HTTP requests against a pipeline runner.
type Server struct {
	runner   *pipeline.Runner
	defaults Defaults
	logger   *log.Logger
}

// New creates a server around the given runner.
func New(runner *pipeline.Runner, defaults Defaults, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if defaults.Viewport == "" {
		defaults.Viewport = string(pipeline.DefaultViewport)
	}
	if defaults.Arrangement == "" {
		defaults.Arrangement = string(pipeline.DefaultArrangement)
	}
	return &Server{runner: runner, defaults: defaults, logger: logger}
}

// Router builds the chi router with all routes and middleware registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Get("/canvas", s.handleCanvas)
	})
	return r
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// layoutRequest is the POST /v1/layout body.
type layoutRequest struct {
	Document    *diagram.Document `json:"document"`
	Viewport    string            `json:"viewport,omitempty"`
	Arrangement string            `json:"arrangement,omitempty"`
	LeavesOnly  bool              `json:"leaves_only,omitempty"`
	Refresh     bool              `json:"refresh,omitempty"`
}

// layoutResponse is the POST /v1/layout reply.
type layoutResponse struct {
	Canvas     wireframe.Dims      `json:"canvas"`
	Placements []diagram.Placement `json:"placements"`
	DocHash    string              `json:"doc_hash"`
	Cached     bool                `json:"cached"`
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	if req.Document == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "document is required"))
		return
	}

	// Operator defaults fill in only when both the request and the
	// document leave the value open.
	viewport := req.Viewport
	if viewport == "" && req.Document.Viewport == "" {
		viewport = s.defaults.Viewport
	}
	arrangement := req.Arrangement
	if arrangement == "" && req.Document.Arrangement == "" {
		arrangement = s.defaults.Arrangement
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Document:    req.Document,
		Viewport:    viewport,
		Arrangement: arrangement,
		LeavesOnly:  req.LeavesOnly,
		Refresh:     req.Refresh,
		TTL:         s.defaults.TTL,
		Logger:      s.logger,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, layoutResponse{
		Canvas:     result.Layout.Canvas,
		Placements: result.Layout.Placements,
		DocHash:    result.DocHash,
		Cached:     result.CacheInfo.LayoutHit,
	})
}

func (s *Server) handleCanvas(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	viewport := q.Get("viewport")
	if viewport == "" {
		viewport = s.defaults.Viewport
	}
	arrangement := q.Get("arrangement")
	if arrangement == "" {
		arrangement = s.defaults.Arrangement
	}

	screens := 1
	if raw := q.Get("screens"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "screens must be an integer"))
			return
		}
		screens = n
	}
	if screens < 1 {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "screens must be >= 1"))
		return
	}
	if !pipeline.ValidViewports[viewport] {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidViewport, "invalid viewport %q", viewport))
		return
	}
	if !pipeline.ValidArrangements[arrangement] {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidArrangement, "invalid arrangement %q", arrangement))
		return
	}

	frame := wireframe.Frame{
		Viewport:    wireframe.ViewportClass(viewport),
		Arrangement: wireframe.Arrangement(arrangement),
	}
	dims, err := frame.Dimensions(screens)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidViewport, err, "compute canvas"))
		return
	}

	writeJSON(w, http.StatusOK, dims)
}

// =============================================================================
// Responses
// =============================================================================

// errorBody is the JSON shape of all error responses.
type errorBody struct {
	Error struct {
		Code    errors.Code `json:"code"`
		Message string      `json:"message"`
	} `json:"error"`
}

// writeError maps structured error codes to HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := errors.GetCode(err)

	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidKind, errors.ErrCodeInvalidDocument,
		errors.ErrCodeInvalidTree, errors.ErrCodeInvalidViewport, errors.ErrCodeInvalidArrangement,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPath:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case "":
		code = errors.ErrCodeInternal
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
	}

	var body errorBody
	body.Error.Code = code
	body.Error.Message = errors.UserMessage(err)
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
