package server

import (
	"context"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/playerindex"
)

// IndexLoader defines the minimal player index loader behavior needed by the server.
type IndexLoader interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() playerindex.Status
}
