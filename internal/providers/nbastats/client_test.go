package nbastats

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/stats"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/providers"
)

const gameLogBody = `{
	"resource": "playergamelog",
	"resultSets": [{
		"name": "PlayerGameLog",
		"headers": ["SEASON_ID", "Player_ID", "Game_ID", "GAME_DATE", "MATCHUP", "WL", "MIN", "FG_PCT", "PTS", "PLUS_MINUS", "VIDEO_AVAILABLE"],
		"rowSet": [
			["22024", 1630163, "0022400061", "NOV 01, 2024", "CHA vs. ATL", "W", 34, 0.462, 31, 7, 1],
			["22024", 1630163, "0022400050", "OCT 30, 2024", "CHA @ HOU", "L", 30, null, 17, -4, 1]
		]
	}]
}`

func TestPlayerGameLogBuildsRequestAndMapsRows(t *testing.T) {
	var captured *http.Request
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, gameLogBody), nil
	})

	client := NewClient(Config{BaseURL: "https://stats.example.com/stats/", HTTPClient: &http.Client{Transport: rt}})
	games, err := client.PlayerGameLog(context.Background(), 1630163, "2024-25", stats.SegmentPlayoffs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured.URL.Path != "/stats/playergamelog" {
		t.Fatalf("unexpected path %s", captured.URL.Path)
	}
	q := captured.URL.Query()
	if q.Get("PlayerID") != "1630163" || q.Get("Season") != "2024-25" || q.Get("SeasonType") != "Playoffs" || q.Get("LeagueID") != "00" {
		t.Fatalf("unexpected query %s", captured.URL.RawQuery)
	}
	if captured.Header.Get("Referer") == "" || captured.Header.Get("User-Agent") == "" {
		t.Fatalf("expected browser headers, got %v", captured.Header)
	}

	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}
	if games[0].GameID != "0022400061" || games[0].PTS != 31 || games[0].WL != "W" {
		t.Fatalf("unexpected first game %+v", games[0])
	}
	if games[1].FGPct != nil {
		t.Fatalf("expected nil FG_PCT for null cell")
	}
	if games[1].PlusMinus == nil || *games[1].PlusMinus != -4 {
		t.Fatalf("expected plus minus -4, got %v", games[1].PlusMinus)
	}
}

func TestPlayerGameLogDefaultsSeasonAndSegment(t *testing.T) {
	var query string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		query = req.URL.RawQuery
		return jsonResponse(http.StatusOK, gameLogBody), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})
	client.now = func() time.Time { return time.Date(2024, 11, 3, 0, 0, 0, 0, time.UTC) }

	if _, err := client.PlayerGameLog(context.Background(), 2544, "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "Season=2024-25") || !strings.Contains(query, "SeasonType=Regular+Season") {
		t.Fatalf("unexpected defaults in query %s", query)
	}
}

func TestPlayerGameLogRejectsUnknownSegment(t *testing.T) {
	calls := 0
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		return jsonResponse(http.StatusOK, gameLogBody), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.PlayerGameLog(context.Background(), 2544, "2024-25", stats.SeasonSegment("Summer League"))
	pErr, ok := providers.AsProviderError(err)
	if !ok || pErr.Kind != providers.KindStatus || pErr.StatusCode != http.StatusBadRequest || pErr.Op != providers.OpGameLog {
		t.Fatalf("expected status error for unknown segment, got %v", err)
	}
	if !strings.Contains(err.Error(), "Summer League") {
		t.Fatalf("expected segment in message, got %q", err.Error())
	}
	if calls != 0 {
		t.Fatalf("expected no upstream request, got %d", calls)
	}
}

func TestPlayerIndexDecodesGzipAndSkipsBlankIDs(t *testing.T) {
	body := `{"resultSets": [{"name": "CommonAllPlayers",
		"headers": ["PERSON_ID", "DISPLAY_LAST_COMMA_FIRST", "DISPLAY_FIRST_LAST", "ROSTERSTATUS"],
		"rowSet": [[2544, "James, LeBron", "LeBron James", 1], [null, "", "", 0]]}]}`
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte(body))
	_ = gz.Close()

	var query string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		query = req.URL.RawQuery
		resp := jsonResponse(http.StatusOK, "")
		resp.Header.Set("Content-Encoding", "gzip")
		resp.Body = io.NopCloser(&buf)
		return resp, nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	list, err := client.PlayerIndex(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].ID != 2544 || list[0].LastName != "James" || !list[0].IsActive {
		t.Fatalf("unexpected players %+v", list)
	}
	if !strings.Contains(query, "IsOnlyCurrentSeason=0") {
		t.Fatalf("expected full history query, got %s", query)
	}
}

func TestPlayerCareerTotalsMapsSeasons(t *testing.T) {
	body := `{"resultSets": [
		{"name": "SeasonTotalsRegularSeason", "headers": ["PLAYER_ID", "SEASON_ID", "TEAM_ABBREVIATION", "GP", "PTS"],
		 "rowSet": [[2544, "2003-04", "CLE", 79, 1654], [2544, "2004-05", "CLE", 80, 2175]]},
		{"name": "CareerTotalsRegularSeason", "headers": ["PLAYER_ID"], "rowSet": [[2544]]}
	]}`
	var query string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		query = req.URL.RawQuery
		return jsonResponse(http.StatusOK, body), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	seasons, err := client.PlayerCareerTotals(context.Background(), 2544)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seasons) != 2 || seasons[1].SeasonID != "2004-05" || seasons[1].PTS != 2175 {
		t.Fatalf("unexpected seasons %+v", seasons)
	}
	if !strings.Contains(query, "PerMode=Totals") {
		t.Fatalf("expected totals per mode, got %s", query)
	}
}

func TestClientClassifiesFailures(t *testing.T) {
	cases := []struct {
		name    string
		rt      roundTripperFunc
		kind    providers.Kind
		status  int
		message string
	}{
		{
			name: "transport",
			rt: func(*http.Request) (*http.Response, error) {
				return nil, errors.New("connection reset")
			},
			kind: providers.KindTransport,
		},
		{
			name: "status",
			rt: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusBadRequest, "The PlayerID property is required."), nil
			},
			kind:    providers.KindStatus,
			status:  http.StatusBadRequest,
			message: "The PlayerID property is required.",
		},
		{
			name: "rate limited",
			rt: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusTooManyRequests, ""), nil
			},
			kind:   providers.KindRateLimited,
			status: http.StatusTooManyRequests,
		},
		{
			name: "bad json",
			rt: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, "<html>"), nil
			},
			kind:   providers.KindDecode,
			status: http.StatusOK,
		},
		{
			name: "missing result set",
			rt: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `{"resultSets": [{"name": "Other", "headers": [], "rowSet": []}]}`), nil
			},
			kind:   providers.KindDecode,
			status: http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := NewClient(Config{HTTPClient: &http.Client{Transport: tc.rt}})
			_, err := client.PlayerCareerTotals(context.Background(), 1)
			pErr, ok := providers.AsProviderError(err)
			if !ok {
				t.Fatalf("expected provider error, got %v", err)
			}
			if pErr.Kind != tc.kind || pErr.StatusCode != tc.status {
				t.Fatalf("expected kind=%s status=%d, got kind=%s status=%d", tc.kind, tc.status, pErr.Kind, pErr.StatusCode)
			}
			if pErr.Provider != providerName || pErr.Op != providers.OpCareerTotals {
				t.Fatalf("unexpected provider/op %s/%s", pErr.Provider, pErr.Op)
			}
			if tc.message != "" && err.Error() != tc.message {
				t.Fatalf("expected upstream message %q, got %q", tc.message, err.Error())
			}
		})
	}
}

func TestClientTruncatesLongErrorBodies(t *testing.T) {
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, strings.Repeat("e", 4096)), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})
	_, err := client.PlayerGameLog(context.Background(), 1, "2024-25", stats.SegmentRegularSeason)
	if err == nil || len(err.Error()) != errorBodyLimit {
		t.Fatalf("expected message capped at %d bytes, got %d", errorBodyLimit, len(err.Error()))
	}
}

func TestClientHonorsContextCancel(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		<-req.Context().Done()
		return nil, req.Context().Err()
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.PlayerIndex(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
