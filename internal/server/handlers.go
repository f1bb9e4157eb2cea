package server

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hyperifyio/wordbubble/internal/app"
	"github.com/hyperifyio/wordbubble/internal/report"
)

//go:embed web/index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = indexTmpl.Execute(w, struct{ Version string }{Version: app.BuildVersion})
}

type analyzeRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	if !s.limiter.Allow() {
		writeErrorKind(w, http.StatusTooManyRequests, "rate_limited", "Too many requests. Slow down a little.")
		return
	}
	// One pipeline at a time. The UI disables its button while a request
	// is in flight; this is the server-side guarantee behind it.
	if !s.inflight.TryAcquire(1) {
		writeErrorKind(w, http.StatusTooManyRequests, "busy", "An analysis is already running. Wait for it to finish.")
		return
	}
	defer s.inflight.Release(1)

	var req analyzeRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 4096)).Decode(&req); err != nil {
		writeErrorKind(w, http.StatusBadRequest, "bad_request", "Request body must be JSON with a url field.")
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		writeErrorKind(w, http.StatusBadRequest, "invalid_url", "Enter a URL first.")
		return
	}

	rep, err := s.app.Analyze(r.Context(), req.URL)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	if !s.limiter.Allow() {
		writeErrorKind(w, http.StatusTooManyRequests, "rate_limited", "Too many requests. Slow down a little.")
		return
	}
	if !s.inflight.TryAcquire(1) {
		writeErrorKind(w, http.StatusTooManyRequests, "busy", "An analysis is already running. Wait for it to finish.")
		return
	}
	defer s.inflight.Release(1)

	rawURL := strings.TrimSpace(r.URL.Query().Get("url"))
	if rawURL == "" {
		writeErrorKind(w, http.StatusBadRequest, "invalid_url", "Provide a url query parameter.")
		return
	}

	rep, err := s.app.Analyze(r.Context(), rawURL)
	if err != nil {
		writeError(w, logger, err)
		return
	}

	// Render to a buffer first so a rendering failure can still produce a
	// JSON error instead of a truncated download.
	var buf bytes.Buffer
	if err := report.WritePDF(&buf, rep); err != nil {
		logger.Error().Err(err).Msg("pdf rendering failed")
		writeErrorKind(w, http.StatusInternalServerError, "internal", "Could not render the PDF report.")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="wordbubble-report.pdf"`)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": app.BuildVersion,
		"commit":  app.BuildCommit,
	})
}
