// Package steam fetches player stats and summaries from the Steam Web API.
package steam

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/leighmacdonald/steamid/v2/steamid"
	"github.com/tidwall/gjson"

	"github.com/cory-johannsen/tf2stats/internal/config"
	"github.com/cory-johannsen/tf2stats/internal/reporter"
	"github.com/cory-johannsen/tf2stats/internal/stats"
)

var _ reporter.Source = (*Client)(nil)

// ErrNoPlayers is returned when a player summary response lists no players.
var ErrNoPlayers = errors.New("player summary contains no players")

// ErrMalformedResponse is returned when a response body is not the expected JSON shape.
var ErrMalformedResponse = errors.New("malformed response")

const (
	userStatsPath      = "/ISteamUserStats/GetUserStatsForGame/v0002/"
	playerSummaryPath  = "/ISteamUser/GetPlayerSummaries/v2/"
	maxErrorBodyLength = 512
)

// Client handles Steam Web API requests.
type Client struct {
	httpClient *http.Client
	baseURL    string
	appID      int
	userAgent  string
}

// New creates a Steam client from cfg.
//
// Precondition: cfg must have passed config validation.
// Postcondition: Returns a non-nil Client.
func New(cfg config.SteamConfig) *Client {
	return NewWithHTTPClient(cfg, &http.Client{Timeout: cfg.Timeout})
}

// NewWithHTTPClient creates a Steam client that sends requests through hc.
func NewWithHTTPClient(cfg config.SteamConfig, hc *http.Client) *Client {
	return &Client{
		httpClient: hc,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		appID:      cfg.AppID,
		userAgent:  cfg.UserAgent,
	}
}

// FetchUserStats returns the raw stats of the player for the configured app,
// in response order. Entries without a name are skipped.
func (c *Client) FetchUserStats(ctx context.Context, id steamid.SID64, apiKey string) ([]stats.RawStat, error) {
	q := url.Values{}
	q.Set("appid", strconv.Itoa(c.appID))
	q.Set("key", apiKey)
	q.Set("steamid", id.String())

	body, err := c.fetch(ctx, userStatsPath, q)
	if err != nil {
		return nil, fmt.Errorf("fetching user stats: %w", err)
	}
	return ParseUserStats(body)
}

// FetchPersonaName returns the display name of the player.
func (c *Client) FetchPersonaName(ctx context.Context, id steamid.SID64, apiKey string) (string, error) {
	q := url.Values{}
	q.Set("key", apiKey)
	q.Set("format", "json")
	q.Set("steamids", id.String())

	body, err := c.fetch(ctx, playerSummaryPath, q)
	if err != nil {
		return "", fmt.Errorf("fetching player summary: %w", err)
	}
	return ParsePersonaName(body)
}

// ParseUserStats extracts playerstats.stats from a GetUserStatsForGame body.
func ParseUserStats(body []byte) ([]stats.RawStat, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: user stats body is not JSON", ErrMalformedResponse)
	}
	list := gjson.GetBytes(body, "playerstats.stats")
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: playerstats.stats missing", ErrMalformedResponse)
	}

	out := make([]stats.RawStat, 0, len(list.Array()))
	list.ForEach(func(_, entry gjson.Result) bool {
		name := entry.Get("name")
		if !name.Exists() {
			return true
		}
		out = append(out, stats.RawStat{
			Name:  name.String(),
			Value: int(entry.Get("value").Int()),
		})
		return true
	})
	return out, nil
}

// ParsePersonaName extracts the first player's personaname from a
// GetPlayerSummaries body.
func ParsePersonaName(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("%w: player summary body is not JSON", ErrMalformedResponse)
	}
	name := gjson.GetBytes(body, "response.players.0.personaname")
	if !name.Exists() {
		return "", ErrNoPlayers
	}
	return name.String(), nil
}

// fetch makes an HTTP GET request and returns the raw body.
func (c *Client) fetch(ctx context.Context, path string, q url.Values) ([]byte, error) {
	u := c.baseURL + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", redactKey(err, q.Get("key")))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if len(body) > maxErrorBodyLength {
			body = body[:maxErrorBodyLength]
		}
		return nil, fmt.Errorf("steam API error: status=%d, body=%s", resp.StatusCode, string(body))
	}
	return body, nil
}

// redactKey strips the API key from the URL embedded in transport errors.
func redactKey(err error, key string) error {
	var ue *url.Error
	if key != "" && errors.As(err, &ue) {
		ue.URL = strings.ReplaceAll(ue.URL, url.QueryEscape(key), "REDACTED")
	}
	return err
}
