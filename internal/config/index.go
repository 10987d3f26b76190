package config

// IndexConfig controls where the static player index comes from.
type IndexConfig struct {
	// Path to a JSON player list; empty means fetch from the provider.
	Path          string
	RetryInterval Duration
}

func loadIndex() IndexConfig {
	return IndexConfig{
		Path:          envOrDefault(envPlayerIndexPath, ""),
		RetryInterval: durationEnvOrDefault(envIndexRetryInterval, defaultIndexRetryInterval),
	}
}
