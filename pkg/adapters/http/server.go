package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/textops"
	"github.com/aretw0/textops/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultMaxBodySize bounds request bodies when no limit is configured.
const DefaultMaxBodySize int64 = 1 << 20

// Plugin is the part of textops.Plugin the HTTP adapter needs.
type Plugin interface {
	Call(ctx context.Context, name string, args map[string]any) (string, error)
	Execute(ctx context.Context, call domain.ToolCall) (domain.ToolResult, error)
	Tools() []domain.Tool
}

// Server serves a Plugin over HTTP.
type Server struct {
	plugin      Plugin
	apiVersion  string
	maxBodySize int64
	gatherer    prometheus.Gatherer
	logger      *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithMaxBodySize limits request bodies to n bytes; larger bodies get 413.
func WithMaxBodySize(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodySize = n
		}
	}
}

// WithGatherer exposes g on GET /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// OperationResponse is the body of a successful POST /operations/{name}.
type OperationResponse struct {
	Operation string `json:"operation"`
	Result    string `json:"result"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}

// NewHandler creates the HTTP handler for plugin. It fails only if the
// embedded OpenAPI document does not validate.
func NewHandler(plugin Plugin, opts ...Option) (http.Handler, error) {
	doc, err := LoadSpec()
	if err != nil {
		return nil, err
	}

	s := &Server{
		plugin:      plugin,
		apiVersion:  doc.Info.Version,
		maxBodySize: DefaultMaxBodySize,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(rawSpec)
	})
	r.Get("/operations", s.ListOperations)
	r.Post("/operations/{name}", s.RunOperation)
	r.Post("/call", s.CallTool)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r), nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "textops-http",
		"version":     textops.Version,
		"api_version": s.apiVersion,
	})
}

// ListOperations handles GET /operations.
func (s *Server) ListOperations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.plugin.Tools())
}

// RunOperation handles POST /operations/{name}. The body is the keyed context;
// an empty body means an empty context.
func (s *Server) RunOperation(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	var args map[string]any
	if len(body) > 0 {
		if err := json.Unmarshal(body, &args); err != nil {
			s.logger.Warn("RunOperation: invalid request body", "operation", name, "err", err)
			writeError(w, http.StatusBadRequest, "", "request body must be a JSON object")
			return
		}
	}

	out, err := s.plugin.Call(r.Context(), name, args)
	if err != nil {
		writeError(w, http.StatusNotFound, domain.ErrorCode(err), domain.UserMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, OperationResponse{Operation: name, Result: out})
}

// CallTool handles POST /call.
func (s *Server) CallTool(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	var call domain.ToolCall
	if err := json.Unmarshal(body, &call); err != nil || call.Name == "" {
		s.logger.Warn("CallTool: invalid request body", "err", err)
		writeError(w, http.StatusBadRequest, "", "request body must be a tool call with a name")
		return
	}

	res, err := s.plugin.Execute(r.Context(), call)
	if err != nil {
		// Only a cancelled request ends up here; the client is gone.
		s.logger.Debug("CallTool: aborted", "call_id", call.ID, "err", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodySize))
	if err == nil {
		return body, true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "", "request body too large")
		return nil, false
	}
	writeError(w, http.StatusBadRequest, "", "could not read request body")
	return nil, false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Code: code, Error: msg})
}
