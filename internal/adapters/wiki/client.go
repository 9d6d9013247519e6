package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/Akarsh-2004/Bagragi/internal/adapters/observability"
	"github.com/Akarsh-2004/Bagragi/internal/domain"
)

// Client fetches free-text page summaries from the encyclopedia REST API.
type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, rps int) *Client {
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

type summaryResponse struct {
	Extract string `json:"extract"`
}

// Summary returns the page extract for title, or ErrNotFound when the page
// is missing or its extract is empty.
func (c *Client) Summary(ctx context.Context, title string) (string, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return "", err
	}
	// titles use underscores for spaces
	slug := url.PathEscape(strings.ReplaceAll(title, " ", "_"))
	u := fmt.Sprintf("%s/page/summary/%s", c.base, slug)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("wiki", "summary", 0, time.Since(start))
		return "", fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("wiki", "summary", resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", domain.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("%w: wiki status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var sr summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	if strings.TrimSpace(sr.Extract) == "" {
		return "", domain.ErrNotFound
	}
	return sr.Extract, nil
}
