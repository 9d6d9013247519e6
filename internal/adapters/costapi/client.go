package costapi

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

// Client wraps the RapidAPI places-to-live service for cost-of-living data.
type Client struct {
	base string
	host string
	key  string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base, host, key string, rps int) *Client {
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		host: host,
		key:  key,
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// Lookup returns the first match for (place, kind). kind is the place type
// the upstream expects, e.g. "City" or "Country". ErrNoData on empty result.
func (c *Client) Lookup(ctx context.Context, place, kind string) (domain.CostOfLiving, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return domain.CostOfLiving{}, err
	}
	u := fmt.Sprintf("%s/placesToLive?place=%s&type=%s",
		c.base, url.QueryEscape(place), url.QueryEscape(kind))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.CostOfLiving{}, err
	}
	req.Header.Set("x-rapidapi-host", c.host)
	req.Header.Set("x-rapidapi-key", c.key)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("costapi", "placesToLive", 0, time.Since(start))
		return domain.CostOfLiving{}, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("costapi", "placesToLive", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return domain.CostOfLiving{}, fmt.Errorf("%w: costapi status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var places []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return domain.CostOfLiving{}, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	if len(places) == 0 {
		return domain.CostOfLiving{}, domain.ErrNoData
	}

	first := places[0]
	return domain.CostOfLiving{
		Place:        place,
		Type:         kind,
		CostOfLiving: first["costOfLiving"],
		Summary:      first,
	}, nil
}
