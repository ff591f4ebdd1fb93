// Package feed fetches the upstream paginated game-update feed and drives
// per-game phase machines over it.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/baseball-sim/feedcore/wire"
)

const (
	requestTimeout = 10 * time.Second
	maxAttempts    = 3
)

// Client fetches pages of game updates from the upstream feed, grounded in
// the teacher's weather.Service HTTP client: a shared *http.Client with a
// fixed timeout, context-aware requests, and explicit status checks rather
// than relying on the default client's zero timeout.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient returns a feed client pointed at baseURL (the chronicler-style
// game-events endpoint root).
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
	}
}

// FetchPage fetches one page of updates for gameID, optionally continuing
// from a previous page's NextPage token. It makes up to maxAttempts
// attempts in all, with exponential backoff between them; every failure
// (network error, non-200 status, undecodable body) is retried.
func (c *Client) FetchPage(ctx context.Context, gameID string, page string) (*wire.GameEventsResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("feed: invalid base url: %w", err)
	}
	q := u.Query()
	q.Set("gameId", gameID)
	if page != "" {
		q.Set("page", page)
	}
	u.RawQuery = q.Encode()

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * 200 * time.Millisecond
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		resp, err := c.fetchOnce(ctx, u.String())
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("feed: fetching page for game %s: %w", gameID, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, u string) (*wire.GameEventsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var page wire.GameEventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &page, nil
}

// FetchAll walks every page for gameID until NextPage is empty or ctx is
// canceled, returning the concatenated items in feed order.
func (c *Client) FetchAll(ctx context.Context, gameID string) ([]wire.GameUpdate, error) {
	var all []wire.GameUpdate
	page := ""
	for {
		resp, err := c.FetchPage(ctx, gameID, page)
		if err != nil {
			return nil, err
		}
		all = append(all, resp.Items...)
		if resp.NextPage == "" {
			return all, nil
		}
		page = resp.NextPage
	}
}
