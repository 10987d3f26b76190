package config

// NBAStatsConfig controls how we talk to the stats.nba.com API.
type NBAStatsConfig struct {
	BaseURL string
	Timeout Duration
}

func loadNBAStats() NBAStatsConfig {
	return NBAStatsConfig{
		BaseURL: envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
		Timeout: durationEnvOrDefault(envStatsTimeout, defaultStatsTimeout),
	}
}
