package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/app/gateway"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/http/middleware"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/http/requestutil"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/logging"
)

const notFoundMessage = "Player not found"

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// statusFor maps gateway errors onto HTTP status codes and client messages.
func statusFor(err error) (int, string) {
	var vErr *gateway.ValidationError
	var uErr *gateway.UpstreamError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest, vErr.Error()
	case errors.Is(err, gateway.ErrNotFound):
		return http.StatusNotFound, notFoundMessage
	case errors.As(err, &uErr):
		return http.StatusInternalServerError, uErr.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	logger := loggerFromContext(r, h.logger)
	if status >= http.StatusInternalServerError {
		logging.Error(logger, "request failed", err, slog.Int(logging.FieldStatusCode, status))
	} else {
		logging.Info(logger, "request rejected", slog.Int(logging.FieldStatusCode, status), "reason", msg)
	}
	writeError(w, r, status, msg, h.logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
