package testutil

import (
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/app/gateway"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/teststubs"
)

// NewGateway builds a gateway over the stub provider and a loaded sample index.
func NewGateway(provider *teststubs.StubProvider) *gateway.Service {
	if provider == nil {
		provider = &teststubs.StubProvider{}
	}
	return gateway.NewService(provider, SampleIndex(), nil)
}
