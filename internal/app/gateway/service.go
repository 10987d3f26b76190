package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/players"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/stats"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/logging"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/providers"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/timeutil"
)

// DefaultNumGames is how many recent games are returned when the caller
// does not ask for a specific count.
const DefaultNumGames = 5

// Index resolves name fragments against the static player list.
type Index interface {
	Search(fragment string) ([]players.Player, error)
}

// Service answers player lookups by combining the name index with the
// stats provider. It holds no mutable state.
type Service struct {
	provider providers.StatsProvider
	index    Index
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs a Service with the provided collaborators.
func NewService(provider providers.StatsProvider, index Index, logger *slog.Logger) *Service {
	return &Service{
		provider: provider,
		index:    index,
		logger:   logger,
		now:      time.Now,
	}
}

// SearchPlayers returns every indexed player whose full name matches name.
func (s *Service) SearchPlayers(ctx context.Context, name string) ([]players.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name", "name is required")
	}

	var matches []players.Player
	err := s.call(ctx, providers.OpPlayerIndex, func() error {
		var searchErr error
		matches, searchErr = s.index.Search(name)
		return searchErr
	})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrNotFound
	}
	return matches, nil
}

// RecentGames returns the first numGames rows of the player's regular-season
// game log for season, in provider order. An empty season means the current one.
func (s *Service) RecentGames(ctx context.Context, ident players.Identifier, numGames int, season string) (stats.RecentGamesResponse, error) {
	if err := validateIdentifier(ident); err != nil {
		return stats.RecentGamesResponse{}, err
	}
	if numGames < 1 {
		return stats.RecentGamesResponse{}, invalid("num_games", "num_games must be a positive integer")
	}
	season = strings.TrimSpace(season)
	if season == "" {
		season = timeutil.CurrentSeason(s.now())
	} else if !timeutil.ValidSeason(season) {
		return stats.RecentGamesResponse{}, invalid("season", fmt.Sprintf("season %q must look like 2024-25", season))
	}

	if err := s.requireProvider(providers.OpGameLog); err != nil {
		return stats.RecentGamesResponse{}, err
	}
	id, name, err := s.resolve(ctx, ident)
	if err != nil {
		return stats.RecentGamesResponse{}, err
	}

	var rows []stats.GameLogEntry
	err = s.call(ctx, providers.OpGameLog, func() error {
		var callErr error
		rows, callErr = s.provider.PlayerGameLog(ctx, id, season, stats.SegmentRegularSeason)
		return callErr
	})
	if err != nil {
		return stats.RecentGamesResponse{}, err
	}
	if len(rows) > numGames {
		rows = rows[:numGames]
	}
	return stats.NewRecentGamesResponse(id, name, rows), nil
}

// CareerTotals returns every regular-season totals row for the player.
func (s *Service) CareerTotals(ctx context.Context, ident players.Identifier) (stats.CareerResponse, error) {
	if err := validateIdentifier(ident); err != nil {
		return stats.CareerResponse{}, err
	}

	if err := s.requireProvider(providers.OpCareerTotals); err != nil {
		return stats.CareerResponse{}, err
	}
	id, name, err := s.resolve(ctx, ident)
	if err != nil {
		return stats.CareerResponse{}, err
	}

	var rows []stats.SeasonTotals
	err = s.call(ctx, providers.OpCareerTotals, func() error {
		var callErr error
		rows, callErr = s.provider.PlayerCareerTotals(ctx, id)
		return callErr
	})
	if err != nil {
		return stats.CareerResponse{}, err
	}
	return stats.NewCareerResponse(id, name, rows), nil
}

// resolve maps an identifier to a player ID. Name lookups take the first
// index match and also return its full name.
func (s *Service) resolve(ctx context.Context, ident players.Identifier) (int, string, error) {
	if !ident.IsByName() {
		return ident.PlayerID, "", nil
	}
	matches, err := s.SearchPlayers(ctx, ident.Name)
	if err != nil {
		return 0, "", err
	}
	best := matches[0]
	logging.Debug(logging.FromContext(ctx, s.logger), "player name resolved",
		slog.String(logging.FieldQuery, ident.Name),
		slog.Int(logging.FieldPlayerID, best.ID),
		slog.Int(logging.FieldCount, len(matches)),
	)
	return best.ID, best.FullName, nil
}

func (s *Service) requireProvider(op string) error {
	if s.provider == nil {
		return &UpstreamError{Op: op, Err: providers.ErrProviderUnavailable}
	}
	return nil
}

// call runs fn, converting both returned errors and panics into UpstreamError.
func (s *Service) call(ctx context.Context, op string, fn func() error) (err error) {
	logger := logging.FromContext(ctx, s.logger)
	defer func() {
		if r := recover(); r != nil {
			err = &UpstreamError{Op: op, Err: fmt.Errorf("%v", r)}
			logging.Error(logger, "upstream call panicked", err, slog.String(logging.FieldOperation, op))
		}
	}()

	if callErr := fn(); callErr != nil {
		logging.Warn(logger, "upstream call failed",
			slog.String(logging.FieldOperation, op),
			"error", callErr,
		)
		return &UpstreamError{Op: op, Err: callErr}
	}
	return nil
}

func validateIdentifier(ident players.Identifier) error {
	switch {
	case ident.IsByName() && ident.PlayerID != 0:
		return invalid("player_id", "provide either name or player_id, not both")
	case ident.IsByName():
		return nil
	case ident.PlayerID <= 0:
		return invalid("player_id", "either name or a positive player_id is required")
	}
	return nil
}
