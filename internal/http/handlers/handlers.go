package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"sync/atomic"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/app/gateway"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/players"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/stats"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/logging"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/playerindex"
)

const rootMessage = "NBA stats gateway is running"

// Gateway is the player lookup surface the handlers expose over HTTP.
type Gateway interface {
	SearchPlayers(ctx context.Context, name string) ([]players.Player, error)
	RecentGames(ctx context.Context, ident players.Identifier, numGames int, season string) (stats.RecentGamesResponse, error)
	CareerTotals(ctx context.Context, ident players.Identifier) (stats.CareerResponse, error)
}

// Handler wires HTTP routes to the gateway.
type Handler struct {
	svc             Gateway
	logger          *slog.Logger
	defaultNumGames int
	statusFn        func() playerindex.Status
	draining        atomic.Bool
}

// NewHandler constructs a Handler. statusFn reports player index readiness
// and may be nil.
func NewHandler(svc Gateway, logger *slog.Logger, defaultNumGames int, statusFn func() playerindex.Status) *Handler {
	if defaultNumGames <= 0 {
		defaultNumGames = gateway.DefaultNumGames
	}
	return &Handler{
		svc:             svc,
		logger:          logger,
		defaultNumGames: defaultNumGames,
		statusFn:        statusFn,
	}
}

// Drain marks the handler as shutting down; health and readiness report 503 from then on.
func (h *Handler) Drain() {
	h.draining.Store(true)
}

// ServeHTTP dispatches to the route handlers without a mux.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.URL.Path {
	case "/":
		h.Root(w, r)
	case "/search_player":
		h.SearchPlayer(w, r)
	case "/player/lastgames_by_name":
		h.LastGames(w, r)
	case "/player/career_by_name":
		h.Career(w, r)
	case "/health":
		h.Health(w, r)
	case "/ready":
		h.Ready(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Root confirms the service is up.
func (h *Handler) Root(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}
	if !h.allowGet(w, r) {
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"message": rootMessage}, h.logger)
}

// SearchPlayer returns every player whose name matches ?name=.
func (h *Handler) SearchPlayer(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	matches, err := h.svc.SearchPlayers(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "player search served", slog.Int(logging.FieldCount, len(matches)))
	writeJSON(w, nethttp.StatusOK, matches, h.logger)
}

// LastGames returns the player's most recent regular-season games.
func (h *Handler) LastGames(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	q := r.URL.Query()
	ident, err := parseIdentifier(q)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	numGames, err := parseNumGames(q.Get("num_games"), h.defaultNumGames)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	resp, err := h.svc.RecentGames(r.Context(), ident, numGames, q.Get("season"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "recent games served",
		slog.Int(logging.FieldPlayerID, resp.PlayerID),
		slog.Int(logging.FieldCount, len(resp.RecentGames)),
	)
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// Career returns the player's regular-season totals for every season.
func (h *Handler) Career(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	ident, err := parseIdentifier(r.URL.Query())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	resp, err := h.svc.CareerTotals(r.Context(), ident)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "career totals served",
		slog.Int(logging.FieldPlayerID, resp.PlayerID),
		slog.Int(logging.FieldCount, len(resp.Seasons)),
	)
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	if h.draining.Load() || r.Context().Err() != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the player index is loaded and lookups can be served.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	if h.draining.Load() {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "player index not loaded"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

func (h *Handler) allowGet(w nethttp.ResponseWriter, r *nethttp.Request) bool {
	if r.Method == nethttp.MethodGet {
		return true
	}
	w.Header().Set("Allow", nethttp.MethodGet)
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	return false
}
