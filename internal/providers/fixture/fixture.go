package fixture

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/players"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/stats"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/providers"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/timeutil"
)

const providerName = "fixture"

// Provider returns a static set of players and stats useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

var index = []players.Player{
	{ID: 1630163, FullName: "LaMelo Ball", FirstName: "LaMelo", LastName: "Ball", IsActive: true},
	{ID: 2544, FullName: "LeBron James", FirstName: "LeBron", LastName: "James", IsActive: true},
	{ID: 203999, FullName: "Nikola Jokić", FirstName: "Nikola", LastName: "Jokić", IsActive: true},
	{ID: 201939, FullName: "Stephen Curry", FirstName: "Stephen", LastName: "Curry", IsActive: true},
	{ID: 893, FullName: "Michael Jordan", FirstName: "Michael", LastName: "Jordan", IsActive: false},
}

type gameLine struct {
	date, matchup, wl string
	min, pts, reb, ast float64
	fgm, fga           float64
	plusMinus          float64
}

var gameLines = map[int][]gameLine{
	1630163: {
		{"NOV 08, 2024", "CHA vs. DET", "W", 36, 35, 5, 8, 12, 27, 9},
		{"NOV 06, 2024", "CHA @ MIA", "L", 34, 22, 4, 9, 8, 21, -6},
		{"NOV 04, 2024", "CHA vs. BOS", "L", 35, 26, 6, 10, 9, 23, -11},
		{"NOV 02, 2024", "CHA @ TOR", "W", 33, 24, 7, 6, 9, 19, 4},
		{"NOV 01, 2024", "CHA vs. ATL", "W", 34, 31, 3, 10, 11, 24, 7},
		{"OCT 30, 2024", "CHA @ HOU", "L", 30, 17, 5, 7, 6, 18, -4},
	},
	2544: {
		{"NOV 08, 2024", "LAL vs. PHI", "W", 33, 21, 6, 12, 8, 16, 10},
		{"NOV 06, 2024", "LAL @ MEM", "L", 35, 39, 12, 11, 15, 24, -2},
		{"NOV 04, 2024", "LAL vs. TOR", "W", 32, 19, 10, 16, 8, 13, 14},
		{"NOV 02, 2024", "LAL vs. CAR", "W", 34, 26, 8, 9, 10, 20, 5},
		{"OCT 31, 2024", "LAL @ CLE", "L", 31, 14, 7, 7, 6, 14, -18},
		{"OCT 28, 2024", "LAL vs. SAC", "W", 37, 32, 14, 10, 12, 21, 3},
	},
	203999: {
		{"NOV 08, 2024", "DEN vs. DAL", "W", 37, 30, 12, 11, 11, 19, 12},
		{"NOV 06, 2024", "DEN @ OKC", "W", 38, 16, 13, 10, 6, 14, 8},
		{"NOV 04, 2024", "DEN vs. MIA", "W", 36, 27, 14, 10, 11, 18, 5},
		{"NOV 02, 2024", "DEN vs. UTA", "W", 31, 29, 13, 10, 12, 17, 17},
		{"OCT 31, 2024", "DEN @ MIN", "W", 39, 27, 20, 11, 9, 17, 9},
	},
	201939: {
		{"NOV 08, 2024", "GSW vs. CLE", "W", 28, 21, 4, 7, 7, 15, 20},
		{"NOV 06, 2024", "GSW @ BOS", "W", 33, 27, 6, 6, 9, 18, 13},
		{"NOV 04, 2024", "GSW @ HOU", "W", 29, 18, 4, 10, 6, 14, 9},
		{"NOV 02, 2024", "GSW @ WAS", "W", 25, 24, 3, 5, 8, 15, 22},
		{"OCT 30, 2024", "GSW vs. NOP", "L", 27, 17, 3, 6, 6, 16, -3},
	},
	// Retired players have no rows in any current season.
	893: {},
}

type careerLine struct {
	season, team string
	age          float64
	gp, gs       int
	pts, ast     float64
}

var careerLines = map[int][]careerLine{
	1630163: {
		{"2020-21", "CHA", 19, 51, 31, 803, 312},
		{"2021-22", "CHA", 20, 75, 75, 1514, 576},
		{"2022-23", "CHA", 21, 36, 36, 848, 302},
		{"2023-24", "CHA", 22, 22, 22, 522, 177},
	},
	2544: {
		{"2003-04", "CLE", 19, 79, 79, 1654, 465},
		{"2004-05", "CLE", 20, 80, 80, 2175, 577},
		{"2010-11", "MIA", 26, 79, 79, 2111, 554},
		{"2014-15", "CLE", 30, 69, 69, 1743, 511},
		{"2018-19", "LAL", 34, 55, 55, 1505, 454},
	},
	203999: {
		{"2015-16", "DEN", 21, 80, 55, 804, 191},
		{"2018-19", "DEN", 24, 80, 80, 1604, 580},
		{"2020-21", "DEN", 26, 72, 72, 1898, 599},
		{"2022-23", "DEN", 28, 69, 69, 1690, 678},
	},
	201939: {
		{"2009-10", "GSW", 22, 80, 77, 1399, 472},
		{"2015-16", "GSW", 28, 79, 79, 2375, 527},
		{"2020-21", "GSW", 33, 63, 63, 2015, 361},
	},
	893: {
		{"1984-85", "CHI", 22, 82, 82, 2313, 481},
		{"1987-88", "CHI", 25, 82, 82, 2868, 485},
		{"1995-96", "CHI", 33, 82, 82, 2491, 352},
		{"2002-03", "WAS", 40, 82, 82, 1640, 311},
	},
}

// PlayerIndex returns the deterministic player list.
func (p *Provider) PlayerIndex(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	out := make([]players.Player, len(index))
	copy(out, index)
	return out, nil
}

// PlayerGameLog returns fixed game rows newest first, stamped with the requested season.
func (p *Provider) PlayerGameLog(ctx context.Context, playerID int, season string, segment stats.SeasonSegment) ([]stats.GameLogEntry, error) {
	_ = ctx
	_ = segment
	lines, ok := gameLines[playerID]
	if !ok {
		return nil, unknownPlayer(providers.OpGameLog, playerID)
	}
	if season == "" {
		season = timeutil.CurrentSeason(p.now())
	}

	seasonID := "2" + season
	if len(season) >= 4 {
		seasonID = "2" + season[:4]
	}

	out := make([]stats.GameLogEntry, 0, len(lines))
	for i, l := range lines {
		fgPct := round3(l.fgm / l.fga)
		plusMinus := l.plusMinus
		out = append(out, stats.GameLogEntry{
			SeasonID:       seasonID,
			PlayerID:       playerID,
			GameID:         fmt.Sprintf("00224%05d", len(lines)-i),
			GameDate:       l.date,
			Matchup:        l.matchup,
			WL:             l.wl,
			Min:            l.min,
			FGM:            l.fgm,
			FGA:            l.fga,
			FGPct:          &fgPct,
			REB:            l.reb,
			AST:            l.ast,
			PTS:            l.pts,
			PlusMinus:      &plusMinus,
			VideoAvailable: 1,
		})
	}
	return out, nil
}

// PlayerCareerTotals returns fixed regular-season totals, oldest season first.
func (p *Provider) PlayerCareerTotals(ctx context.Context, playerID int) ([]stats.SeasonTotals, error) {
	_ = ctx
	lines, ok := careerLines[playerID]
	if !ok {
		return nil, unknownPlayer(providers.OpCareerTotals, playerID)
	}

	out := make([]stats.SeasonTotals, 0, len(lines))
	for _, l := range lines {
		age := l.age
		gs := l.gs
		out = append(out, stats.SeasonTotals{
			PlayerID:         playerID,
			SeasonID:         l.season,
			LeagueID:         "00",
			TeamAbbreviation: l.team,
			PlayerAge:        &age,
			GP:               l.gp,
			GS:               &gs,
			AST:              l.ast,
			PTS:              l.pts,
		})
	}
	return out, nil
}

// unknownPlayer mirrors the upstream rejection of an ID it has no data for.
func unknownPlayer(op string, playerID int) error {
	return &providers.ProviderError{
		Provider:   providerName,
		Op:         op,
		Kind:       providers.KindStatus,
		StatusCode: http.StatusBadRequest,
		Message:    fmt.Sprintf("no fixture data for player %d", playerID),
	}
}

func round3(v float64) float64 {
	return float64(int(v*1000+0.5)) / 1000
}
