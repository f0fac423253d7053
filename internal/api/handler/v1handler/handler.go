// Package v1handler implements the version 1 HTTP handlers of the exposure
// monitoring API. All handlers speak JSON and translate semantic errors into
// HTTP status codes.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"guardian/internal/monitor"
	"guardian/pkg/logger"
	"guardian/pkg/serrors"

	"go.uber.org/zap"
)

// Deps holds the services the handlers are backed by.
type Deps struct {
	Monitor monitor.Monitor
}

type Handler struct {
	deps Deps
}

// errorResponse is the JSON body returned for every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// statusFromError maps a semantic error to its HTTP status code.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, serrors.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, serrors.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs the failure and renders its JSON body. Internal errors are
// masked so storage details never leak to clients.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
		msg = "internal error"
	}

	writeJSON(w, r, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(r.Context(), "could not write response body", zap.Error(err))
	}
}

// decodeJSON reads the request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}
