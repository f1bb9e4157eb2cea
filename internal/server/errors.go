package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/hyperifyio/wordbubble/internal/extract"
	"github.com/hyperifyio/wordbubble/internal/fetch"
)

// apiError is the wire shape of a failed request.
type apiError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// classify maps pipeline errors to an HTTP status and a stable kind the UI
// switches on. Unknown errors become an opaque 500.
func classify(err error) (int, apiError) {
	var (
		invalidURL  *fetch.InvalidURLError
		connErr     *fetch.ConnectionError
		timeoutErr  *fetch.TimeoutError
		statusErr   *fetch.StatusError
		contentType *fetch.ContentTypeError
	)
	switch {
	case errors.As(err, &invalidURL):
		return http.StatusBadRequest, apiError{
			Kind:    "invalid_url",
			Message: "That does not look like a fetchable URL. Check the address and try again.",
		}
	case errors.As(err, &timeoutErr):
		return http.StatusGatewayTimeout, apiError{
			Kind:    "timeout",
			Message: "The page took too long to respond.",
		}
	case errors.As(err, &connErr):
		return http.StatusBadGateway, apiError{
			Kind:    "connection",
			Message: "Could not connect to the site. Check the URL or your network.",
		}
	case errors.As(err, &statusErr):
		return http.StatusBadGateway, apiError{
			Kind:    "http_status",
			Message: err.Error(),
		}
	case errors.As(err, &contentType):
		return http.StatusUnsupportedMediaType, apiError{
			Kind:    "non_html",
			Message: "The URL did not return an HTML page. Point it at a web page, not a file.",
		}
	case errors.Is(err, extract.ErrParse):
		return http.StatusUnprocessableEntity, apiError{
			Kind:    "parse",
			Message: "The page could not be parsed as HTML.",
		}
	}
	return http.StatusInternalServerError, apiError{
		Kind:    "internal",
		Message: "Something went wrong while analyzing the page.",
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, logger *zerolog.Logger, err error) {
	status, apiErr := classify(err)
	if status >= 500 {
		logger.Error().Err(err).Msg("pipeline error")
	}
	writeJSON(w, status, map[string]apiError{"error": apiErr})
}

func writeErrorKind(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, map[string]apiError{"error": {Kind: kind, Message: message}})
}
