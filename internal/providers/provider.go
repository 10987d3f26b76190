package providers

import (
	"context"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/players"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/stats"
)

// Operation names used in logs, metrics and ProviderError.Op.
const (
	OpPlayerIndex  = "player_index"
	OpGameLog      = "player_game_log"
	OpCareerTotals = "player_career_totals"
)

// IndexProvider exposes the provider's static player name index.
type IndexProvider interface {
	PlayerIndex(ctx context.Context) ([]players.Player, error)
}

// StatsProvider fetches per-player statistics and maps the provider's tables
// into typed records. Failures should be returned as *ProviderError.
type StatsProvider interface {
	PlayerGameLog(ctx context.Context, playerID int, season string, segment stats.SeasonSegment) ([]stats.GameLogEntry, error)
	PlayerCareerTotals(ctx context.Context, playerID int) ([]stats.SeasonTotals, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	IndexProvider
	StatsProvider
}
