package providers

import (
	"testing"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/teststubs"
)

func TestStubSatisfiesDataProvider(t *testing.T) {
	var _ DataProvider = (*teststubs.StubProvider)(nil)
}
