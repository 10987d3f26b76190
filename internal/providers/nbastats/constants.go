package nbastats

import "time"

const (
	providerName       = "nbastats"
	defaultBaseURL     = "https://stats.nba.com/stats"
	defaultHTTPTimeout = 30 * time.Second
	leagueNBA          = "00"
	// Cap on bytes of an error body copied into the failure message.
	errorBodyLimit = 512
	// Career and index payloads are a few MB at most.
	maxResponseBytes = 32 << 20

	endpointAllPlayers  = "commonallplayers"
	endpointGameLog     = "playergamelog"
	endpointCareerStats = "playercareerstats"

	resultSetAllPlayers   = "CommonAllPlayers"
	resultSetGameLog      = "PlayerGameLog"
	resultSetSeasonTotals = "SeasonTotalsRegularSeason"
)

// stats.nba.com drops requests that do not look like they come from nba.com.
var defaultHeaders = map[string]string{
	"Accept":             "application/json, text/plain, */*",
	"Accept-Encoding":    "gzip",
	"Accept-Language":    "en-US,en;q=0.9",
	"Connection":         "keep-alive",
	"Origin":             "https://www.nba.com",
	"Referer":            "https://www.nba.com/",
	"User-Agent":         "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36",
	"x-nba-stats-origin": "stats",
	"x-nba-stats-token":  "true",
}
