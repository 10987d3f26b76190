package teststubs

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/players"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/stats"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Players  []players.Player
	GameLogs map[int][]stats.GameLogEntry
	Careers  map[int][]stats.SeasonTotals

	IndexErr  error
	StatsErr  error
	PanicWith any
	Notify    chan struct{}

	IndexCalls   atomic.Int32
	GameLogCalls atomic.Int32
	CareerCalls  atomic.Int32

	mu          sync.Mutex
	LastSeason  string
	LastSegment stats.SeasonSegment
}

// PlayerIndex returns the configured players while tracking calls.
func (s *StubProvider) PlayerIndex(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	s.IndexCalls.Add(1)
	s.notify()
	if s.IndexErr != nil {
		return nil, s.IndexErr
	}
	return s.Players, nil
}

// PlayerGameLog returns the configured log for playerID.
func (s *StubProvider) PlayerGameLog(ctx context.Context, playerID int, season string, segment stats.SeasonSegment) ([]stats.GameLogEntry, error) {
	_ = ctx
	s.GameLogCalls.Add(1)
	s.mu.Lock()
	s.LastSeason = season
	s.LastSegment = segment
	s.mu.Unlock()
	if s.PanicWith != nil {
		panic(s.PanicWith)
	}
	if s.StatsErr != nil {
		return nil, s.StatsErr
	}
	return s.GameLogs[playerID], nil
}

// PlayerCareerTotals returns the configured career rows for playerID.
func (s *StubProvider) PlayerCareerTotals(ctx context.Context, playerID int) ([]stats.SeasonTotals, error) {
	_ = ctx
	s.CareerCalls.Add(1)
	if s.PanicWith != nil {
		panic(s.PanicWith)
	}
	if s.StatsErr != nil {
		return nil, s.StatsErr
	}
	return s.Careers[playerID], nil
}

// Requested returns the season and segment from the last game log call.
func (s *StubProvider) Requested() (string, stats.SeasonSegment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.LastSeason, s.LastSegment
}

func (s *StubProvider) notify() {
	if s.Notify == nil {
		return
	}
	select {
	case <-s.Notify:
	default:
		close(s.Notify)
	}
}

// GameLog builds n game log rows for playerID, most recent first.
func GameLog(playerID, n int) []stats.GameLogEntry {
	rows := make([]stats.GameLogEntry, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, stats.GameLogEntry{
			SeasonID: "22024",
			PlayerID: playerID,
			GameID:   fmt.Sprintf("00224%05d", n-i),
			Matchup:  "CHA vs. BOS",
			PTS:      float64(20 + i),
		})
	}
	return rows
}
