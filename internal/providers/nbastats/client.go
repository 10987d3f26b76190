package nbastats

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/players"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/stats"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/providers"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/timeutil"
)

// Config controls how the client reaches the stats API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches player data from stats.nba.com and maps the tabular
// result sets into typed records.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a stats.nba.com client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// PlayerIndex returns every player the league has on record, active or not.
func (c *Client) PlayerIndex(ctx context.Context) ([]players.Player, error) {
	params := url.Values{}
	params.Set("LeagueID", leagueNBA)
	params.Set("Season", timeutil.CurrentSeason(c.now()))
	params.Set("IsOnlyCurrentSeason", "0")

	t, err := c.fetchTable(ctx, providers.OpPlayerIndex, endpointAllPlayers, params, resultSetAllPlayers)
	if err != nil {
		return nil, err
	}
	out := make([]players.Player, 0, len(t.rows))
	t.each(func(r row) {
		if p := mapPlayer(r); p.ID != 0 {
			out = append(out, p)
		}
	})
	return out, nil
}

// PlayerGameLog returns the player's game log for one season segment in provider order.
func (c *Client) PlayerGameLog(ctx context.Context, playerID int, season string, segment stats.SeasonSegment) ([]stats.GameLogEntry, error) {
	if season == "" {
		season = timeutil.CurrentSeason(c.now())
	}
	if segment == "" {
		segment = stats.SegmentRegularSeason
	}
	if !segment.Valid() {
		return nil, c.fail(providers.OpGameLog, providers.KindStatus, http.StatusBadRequest,
			fmt.Sprintf("SeasonType %q is not a valid season segment", segment), nil)
	}
	params := url.Values{}
	params.Set("PlayerID", strconv.Itoa(playerID))
	params.Set("Season", season)
	params.Set("SeasonType", string(segment))
	params.Set("LeagueID", leagueNBA)

	t, err := c.fetchTable(ctx, providers.OpGameLog, endpointGameLog, params, resultSetGameLog)
	if err != nil {
		return nil, err
	}
	out := make([]stats.GameLogEntry, 0, len(t.rows))
	t.each(func(r row) {
		out = append(out, mapGameLog(r))
	})
	return out, nil
}

// PlayerCareerTotals returns the player's regular-season totals, one row per season (and team).
func (c *Client) PlayerCareerTotals(ctx context.Context, playerID int) ([]stats.SeasonTotals, error) {
	params := url.Values{}
	params.Set("PlayerID", strconv.Itoa(playerID))
	params.Set("PerMode", "Totals")
	params.Set("LeagueID", leagueNBA)

	t, err := c.fetchTable(ctx, providers.OpCareerTotals, endpointCareerStats, params, resultSetSeasonTotals)
	if err != nil {
		return nil, err
	}
	out := make([]stats.SeasonTotals, 0, len(t.rows))
	t.each(func(r row) {
		out = append(out, mapSeasonTotals(r))
	})
	return out, nil
}

func (c *Client) fetchTable(ctx context.Context, op, endpoint string, params url.Values, resultSet string) (*table, error) {
	req, err := c.buildRequest(ctx, endpoint, params)
	if err != nil {
		return nil, c.fail(op, providers.KindTransport, 0, err.Error(), err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(op, providers.KindTransport, 0, err.Error(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := readBody(resp, errorBodyLimit)
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = fmt.Sprintf("%s: unexpected status %d", endpoint, resp.StatusCode)
		}
		kind := providers.KindStatus
		if resp.StatusCode == http.StatusTooManyRequests {
			kind = providers.KindRateLimited
		}
		return nil, c.fail(op, kind, resp.StatusCode, msg, nil)
	}

	data, err := readBody(resp, maxResponseBytes)
	if err != nil {
		return nil, c.fail(op, providers.KindTransport, resp.StatusCode, err.Error(), err)
	}
	tables, err := parseTables(data)
	if err != nil {
		return nil, c.fail(op, providers.KindDecode, resp.StatusCode, err.Error(), err)
	}
	t, ok := tables[resultSet]
	if !ok {
		msg := fmt.Sprintf("%s: result set %q missing from response", endpoint, resultSet)
		return nil, c.fail(op, providers.KindDecode, resp.StatusCode, msg, nil)
	}
	return t, nil
}

func (c *Client) buildRequest(ctx context.Context, endpoint string, params url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = params.Encode()
	for k, v := range defaultHeaders {
		req.Header.Set(k, v)
	}
	return req, nil
}

func (c *Client) fail(op string, kind providers.Kind, status int, msg string, err error) error {
	return &providers.ProviderError{
		Provider:   providerName,
		Op:         op,
		Kind:       kind,
		StatusCode: status,
		Message:    msg,
		Err:        err,
	}
}
