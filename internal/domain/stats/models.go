package stats

// SeasonSegment is the provider label separating regular season from postseason data.
type SeasonSegment string

const (
	SegmentRegularSeason SeasonSegment = "Regular Season"
	SegmentPlayoffs      SeasonSegment = "Playoffs"
	SegmentPreSeason     SeasonSegment = "Pre Season"
	SegmentAllStar       SeasonSegment = "All Star"
)

// Valid reports whether the segment is one the provider understands.
func (s SeasonSegment) Valid() bool {
	switch s {
	case SegmentRegularSeason, SegmentPlayoffs, SegmentPreSeason, SegmentAllStar:
		return true
	default:
		return false
	}
}

// GameLogEntry is one row of a player's per-game log.
// JSON keys keep the upstream column names.
type GameLogEntry struct {
	SeasonID       string   `json:"SEASON_ID"`
	PlayerID       int      `json:"Player_ID"`
	GameID         string   `json:"Game_ID"`
	GameDate       string   `json:"GAME_DATE"`
	Matchup        string   `json:"MATCHUP"`
	WL             string   `json:"WL"`
	Min            float64  `json:"MIN"`
	FGM            float64  `json:"FGM"`
	FGA            float64  `json:"FGA"`
	FGPct          *float64 `json:"FG_PCT"`
	FG3M           float64  `json:"FG3M"`
	FG3A           float64  `json:"FG3A"`
	FG3Pct         *float64 `json:"FG3_PCT"`
	FTM            float64  `json:"FTM"`
	FTA            float64  `json:"FTA"`
	FTPct          *float64 `json:"FT_PCT"`
	OREB           float64  `json:"OREB"`
	DREB           float64  `json:"DREB"`
	REB            float64  `json:"REB"`
	AST            float64  `json:"AST"`
	STL            float64  `json:"STL"`
	BLK            float64  `json:"BLK"`
	TOV            float64  `json:"TOV"`
	PF             float64  `json:"PF"`
	PTS            float64  `json:"PTS"`
	PlusMinus      *float64 `json:"PLUS_MINUS"`
	VideoAvailable int      `json:"VIDEO_AVAILABLE"`
}

// SeasonTotals is one season of aggregated career statistics.
type SeasonTotals struct {
	PlayerID         int      `json:"PLAYER_ID"`
	SeasonID         string   `json:"SEASON_ID"`
	LeagueID         string   `json:"LEAGUE_ID"`
	TeamID           int      `json:"TEAM_ID"`
	TeamAbbreviation string   `json:"TEAM_ABBREVIATION"`
	PlayerAge        *float64 `json:"PLAYER_AGE"`
	GP               int      `json:"GP"`
	GS               *int     `json:"GS"`
	Min              *float64 `json:"MIN"`
	FGM              float64  `json:"FGM"`
	FGA              float64  `json:"FGA"`
	FGPct            *float64 `json:"FG_PCT"`
	FG3M             *float64 `json:"FG3M"`
	FG3A             *float64 `json:"FG3A"`
	FG3Pct           *float64 `json:"FG3_PCT"`
	FTM              float64  `json:"FTM"`
	FTA              float64  `json:"FTA"`
	FTPct            *float64 `json:"FT_PCT"`
	OREB             *float64 `json:"OREB"`
	DREB             *float64 `json:"DREB"`
	REB              *float64 `json:"REB"`
	AST              float64  `json:"AST"`
	STL              *float64 `json:"STL"`
	BLK              *float64 `json:"BLK"`
	TOV              *float64 `json:"TOV"`
	PF               float64  `json:"PF"`
	PTS              float64  `json:"PTS"`
}

// RecentGamesResponse is the payload for a player's most recent games.
type RecentGamesResponse struct {
	PlayerID    int            `json:"player_id"`
	PlayerName  string         `json:"player_name,omitempty"`
	RecentGames []GameLogEntry `json:"recent_games"`
}

// CareerResponse is the payload for a player's career totals.
type CareerResponse struct {
	PlayerID   int            `json:"player_id"`
	PlayerName string         `json:"player_name,omitempty"`
	Seasons    []SeasonTotals `json:"seasons"`
}

// NewRecentGamesResponse normalizes a nil slice to empty so it encodes as [].
func NewRecentGamesResponse(playerID int, playerName string, games []GameLogEntry) RecentGamesResponse {
	if games == nil {
		games = []GameLogEntry{}
	}
	return RecentGamesResponse{PlayerID: playerID, PlayerName: playerName, RecentGames: games}
}

// NewCareerResponse normalizes a nil slice to empty so it encodes as [].
func NewCareerResponse(playerID int, playerName string, seasons []SeasonTotals) CareerResponse {
	if seasons == nil {
		seasons = []SeasonTotals{}
	}
	return CareerResponse{PlayerID: playerID, PlayerName: playerName, Seasons: seasons}
}
