package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/app/gateway"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/players"
)

// parseIdentifier reads exactly one of ?name= or ?player_id=.
func parseIdentifier(q url.Values) (players.Identifier, error) {
	name := strings.TrimSpace(q.Get("name"))
	rawID := strings.TrimSpace(q.Get("player_id"))

	switch {
	case name != "" && rawID != "":
		return players.Identifier{}, &gateway.ValidationError{Field: "player_id", Message: "provide either name or player_id, not both"}
	case name != "":
		return players.ByName(name), nil
	case rawID == "":
		return players.Identifier{}, &gateway.ValidationError{Field: "name", Message: "name or player_id is required"}
	}

	id, err := strconv.Atoi(rawID)
	if err != nil || id <= 0 {
		return players.Identifier{}, &gateway.ValidationError{Field: "player_id", Message: "player_id must be a positive integer"}
	}
	return players.ByID(id), nil
}

func parseNumGames(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, &gateway.ValidationError{Field: "num_games", Message: "num_games must be a positive integer"}
	}
	return n, nil
}
