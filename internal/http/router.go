package http

import (
	nethttp "net/http"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/", handler.Root)
	mux.HandleFunc("/search_player", handler.SearchPlayer)
	mux.HandleFunc("/player/lastgames_by_name", handler.LastGames)
	mux.HandleFunc("/player/career_by_name", handler.Career)
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	return mux
}
