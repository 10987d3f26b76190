package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/stats"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/http/handlers"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/testutil"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/teststubs"
)

func newTestRouter() http.Handler {
	provider := &teststubs.StubProvider{
		GameLogs: map[int][]stats.GameLogEntry{1630163: teststubs.GameLog(1630163, 3)},
		Careers:  map[int][]stats.SeasonTotals{1630163: testutil.SampleSeasons(1630163, 2020, 2)},
	}
	h := handlers.NewHandler(testutil.NewGateway(provider), nil, 0, nil)
	return NewRouter(h)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		path   string
		status int
	}{
		{"/", http.StatusOK},
		{"/health", http.StatusOK},
		{"/ready", http.StatusOK},
		{"/search_player?name=ball", http.StatusOK},
		{"/player/lastgames_by_name?name=lamelo", http.StatusOK},
		{"/player/career_by_name?player_id=1630163", http.StatusOK},
		{"/player/career_by_name?name=nobody", http.StatusNotFound},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != tc.status {
			t.Fatalf("route %s expected status %d, got %d", tc.path, tc.status, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", rr.Code)
	}
}
