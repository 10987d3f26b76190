package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	Provider        string
	DefaultNumGames int
	NBAStats        NBAStatsConfig
	Index           IndexConfig
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is honored but never overrides the real environment.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		Provider:        envOrDefault(envProvider, defaultProvider),
		DefaultNumGames: intEnvOrDefault(envDefaultNumGames, defaultNumGames),
		NBAStats:        loadNBAStats(),
		Index:           loadIndex(),
		Metrics:         loadMetrics(),
	}
}
