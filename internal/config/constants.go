package config

import "time"

const (
	envPort               = "PORT"
	envProvider           = "PROVIDER"
	envStatsBaseURL       = "NBA_STATS_BASE_URL"
	envStatsTimeout       = "NBA_STATS_TIMEOUT"
	envPlayerIndexPath    = "PLAYER_INDEX_PATH"
	envIndexRetryInterval = "INDEX_RETRY_INTERVAL"
	envDefaultNumGames    = "DEFAULT_NUM_GAMES"
	envMetricsPort        = "METRICS_PORT"
	envMetricsOn          = "METRICS_ENABLED"
	envOtelEndpoint       = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService        = "OTEL_SERVICE_NAME"
	envOtelInsecure       = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "8000"
	defaultProvider = "fixture"
	// Matches the default request timeout of the upstream stats client library.
	defaultStatsTimeout       = 30 * Duration(time.Second)
	defaultStatsBaseURL       = "https://stats.nba.com/stats"
	defaultIndexRetryInterval = 30 * Duration(time.Second)
	defaultNumGames           = 5
	defaultMetricsPort        = "9090"
	defaultServiceName        = "nba-stats-gateway"
)
