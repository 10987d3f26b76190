package server

import "time"

const (
	readTimeout       = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
	// Upstream stats calls may take the full client timeout before the
	// response is written.
	writeSlack = 15 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// writeTimeoutFor sizes the server write deadline to outlast one upstream call.
func writeTimeoutFor(upstream time.Duration) time.Duration {
	if upstream <= 0 {
		upstream = 30 * time.Second
	}
	return upstream + writeSlack
}
