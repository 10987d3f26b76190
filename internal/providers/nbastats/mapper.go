package nbastats

import (
	"strings"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/players"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/stats"
)

func mapPlayer(r row) players.Player {
	first, last := splitLastCommaFirst(r.String("DISPLAY_LAST_COMMA_FIRST"))
	full := strings.TrimSpace(r.String("DISPLAY_FIRST_LAST"))
	if full == "" {
		full = strings.TrimSpace(strings.Join([]string{first, last}, " "))
	}
	return players.Player{
		ID:        r.Int("PERSON_ID"),
		FullName:  full,
		FirstName: first,
		LastName:  last,
		IsActive:  r.Int("ROSTERSTATUS") == 1,
	}
}

// splitLastCommaFirst turns "Ball, LaMelo" into ("LaMelo", "Ball"). Single
// names ("Nene") are treated as a first name.
func splitLastCommaFirst(raw string) (first, last string) {
	raw = strings.TrimSpace(raw)
	last, first, found := strings.Cut(raw, ",")
	if !found {
		return raw, ""
	}
	return strings.TrimSpace(first), strings.TrimSpace(last)
}

func mapGameLog(r row) stats.GameLogEntry {
	return stats.GameLogEntry{
		SeasonID:       r.String("SEASON_ID"),
		PlayerID:       r.Int("Player_ID"),
		GameID:         r.String("Game_ID"),
		GameDate:       r.String("GAME_DATE"),
		Matchup:        r.String("MATCHUP"),
		WL:             r.String("WL"),
		Min:            r.Float("MIN"),
		FGM:            r.Float("FGM"),
		FGA:            r.Float("FGA"),
		FGPct:          r.FloatPtr("FG_PCT"),
		FG3M:           r.Float("FG3M"),
		FG3A:           r.Float("FG3A"),
		FG3Pct:         r.FloatPtr("FG3_PCT"),
		FTM:            r.Float("FTM"),
		FTA:            r.Float("FTA"),
		FTPct:          r.FloatPtr("FT_PCT"),
		OREB:           r.Float("OREB"),
		DREB:           r.Float("DREB"),
		REB:            r.Float("REB"),
		AST:            r.Float("AST"),
		STL:            r.Float("STL"),
		BLK:            r.Float("BLK"),
		TOV:            r.Float("TOV"),
		PF:             r.Float("PF"),
		PTS:            r.Float("PTS"),
		PlusMinus:      r.FloatPtr("PLUS_MINUS"),
		VideoAvailable: r.Int("VIDEO_AVAILABLE"),
	}
}

func mapSeasonTotals(r row) stats.SeasonTotals {
	return stats.SeasonTotals{
		PlayerID:         r.Int("PLAYER_ID"),
		SeasonID:         r.String("SEASON_ID"),
		LeagueID:         r.String("LEAGUE_ID"),
		TeamID:           r.Int("TEAM_ID"),
		TeamAbbreviation: r.String("TEAM_ABBREVIATION"),
		PlayerAge:        r.FloatPtr("PLAYER_AGE"),
		GP:               r.Int("GP"),
		GS:               r.IntPtr("GS"),
		Min:              r.FloatPtr("MIN"),
		FGM:              r.Float("FGM"),
		FGA:              r.Float("FGA"),
		FGPct:            r.FloatPtr("FG_PCT"),
		FG3M:             r.FloatPtr("FG3M"),
		FG3A:             r.FloatPtr("FG3A"),
		FG3Pct:           r.FloatPtr("FG3_PCT"),
		FTM:              r.Float("FTM"),
		FTA:              r.Float("FTA"),
		FTPct:            r.FloatPtr("FT_PCT"),
		OREB:             r.FloatPtr("OREB"),
		DREB:             r.FloatPtr("DREB"),
		REB:              r.FloatPtr("REB"),
		AST:              r.Float("AST"),
		STL:              r.FloatPtr("STL"),
		BLK:              r.FloatPtr("BLK"),
		TOV:              r.FloatPtr("TOV"),
		PF:               r.Float("PF"),
		PTS:              r.Float("PTS"),
	}
}
