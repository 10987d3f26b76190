package testutil

import (
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/players"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/stats"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/playerindex"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/timeutil"
)

// SamplePlayers returns a small index with a shared surname and an accented name.
func SamplePlayers() []players.Player {
	return []players.Player{
		{ID: 1630163, FullName: "LaMelo Ball", FirstName: "LaMelo", LastName: "Ball", IsActive: true},
		{ID: 1628366, FullName: "Lonzo Ball", FirstName: "Lonzo", LastName: "Ball", IsActive: true},
		{ID: 2544, FullName: "LeBron James", FirstName: "LeBron", LastName: "James", IsActive: true},
		{ID: 203999, FullName: "Nikola Jokić", FirstName: "Nikola", LastName: "Jokić", IsActive: true},
		{ID: 893, FullName: "Michael Jordan", FirstName: "Michael", LastName: "Jordan", IsActive: false},
	}
}

// SampleIndex returns a loaded index of SamplePlayers.
func SampleIndex() *playerindex.Index {
	idx := playerindex.New()
	idx.Set(SamplePlayers())
	return idx
}

// SampleSeasons returns n consecutive regular-season totals rows starting in startYear.
func SampleSeasons(playerID, startYear, n int) []stats.SeasonTotals {
	rows := make([]stats.SeasonTotals, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, stats.SeasonTotals{
			PlayerID: playerID,
			SeasonID: timeutil.SeasonLabel(startYear + i),
			LeagueID: "00",
			GP:       70 + i,
			PTS:      float64(1500 + 10*i),
		})
	}
	return rows
}
