// Package server exposes extraction over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tsawler/pdfstrings"
	"github.com/tsawler/pdfstrings/boundary"
	"github.com/tsawler/pdfstrings/internal/config"
)

// PasswordHeader carries the password for encrypted uploads.
const PasswordHeader = "X-PDF-Password"

// Server wraps the HTTP server instance and its handlers.
type Server struct {
	httpServer *http.Server
	lib        *boundary.Library
	maxUpload  int64
	log        *slog.Logger
}

// New builds and wires all routes. Every extraction goes through lib.
func New(cfg *config.Config, lib *boundary.Library, logger *slog.Logger) *Server {
	s := &Server{
		lib:       lib,
		maxUpload: cfg.MaxUpload,
		log:       logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", PasswordHeader},
		}))
	}

	r.Get("/healthz", s.health)
	r.Post("/extract", s.extract)

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start() error {
	s.log.Info("HTTP server listening", slog.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)))
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"engine": s.lib.Name(),
	})
}

// extract reads a PDF from the request body and writes it in the format named
// by the "format" query parameter: plain (default), pretty, json, debug or
// html.
func (s *Server) extract(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "plain"
	}
	if !validFormat(format) {
		writeError(w, http.StatusBadRequest, "unknown format "+format)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxUpload))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(data) == 0 {
		writeError(w, http.StatusBadRequest, "empty request body")
		return
	}

	e := pdfstrings.Load(data).
		Library(s.lib).
		Logger(s.log.With(slog.String("request_id", middleware.GetReqID(r.Context()))))
	if pw, ok := r.Header[http.CanonicalHeaderKey(PasswordHeader)]; ok && len(pw) > 0 {
		e = e.Password(pw[0])
	}

	var body []byte
	var contentType string
	err = e.With(func(doc *pdfstrings.Document) error {
		var err error
		body, contentType, err = render(format, doc)
		return err
	})
	if err != nil {
		s.writeExtractError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func validFormat(format string) bool {
	switch format {
	case "plain", "pretty", "json", "debug", "html":
		return true
	}
	return false
}

// render produces the whole body while the document's handle is open.
func render(format string, doc *pdfstrings.Document) ([]byte, string, error) {
	var buf bytes.Buffer
	var err error
	contentType := "text/plain; charset=utf-8"

	switch format {
	case "plain":
		err = writeText(&buf, doc.ToPlainText)
	case "pretty":
		err = writeText(&buf, doc.ToPrettyText)
	case "json":
		contentType = "application/json"
		err = json.NewEncoder(&buf).Encode(doc)
	case "debug":
		err = doc.WriteDebug(&buf)
	case "html":
		contentType = "text/html; charset=utf-8"
		err = doc.WriteHTML(&buf)
	}
	if err != nil {
		return nil, "", err
	}
	return buf.Bytes(), contentType, nil
}

func writeText(buf *bytes.Buffer, render func() (string, error)) error {
	text, err := render()
	if err != nil {
		return err
	}
	buf.WriteString(text)
	return nil
}

func (s *Server) writeExtractError(w http.ResponseWriter, err error) {
	var (
		extractErr *pdfstrings.ExtractionError
		loadErr    *pdfstrings.LoadError
	)

	switch {
	case errors.As(err, &extractErr):
		writeError(w, http.StatusUnprocessableEntity, extractErr.Message)
	case errors.As(err, &loadErr):
		s.log.Error("extraction engine unavailable", slog.Any("error", err))
		writeError(w, http.StatusServiceUnavailable, "extraction engine unavailable")
	default:
		s.log.Error("extraction failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
