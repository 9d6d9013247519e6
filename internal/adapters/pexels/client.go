package pexels

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

const perPage = 12

type Client struct {
	base string
	key  string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base, key string, rps int) *Client {
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		key:  key,
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

type searchResponse struct {
	Photos []struct {
		Alt string `json:"alt"`
		Src struct {
			Landscape string `json:"landscape"`
		} `json:"src"`
	} `json:"photos"`
}

// Search queries the photo API and reshapes the landscape renditions.
// Single attempt; any failure surfaces as ErrUpstream.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Image, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	u := fmt.Sprintf("%s/search?query=%s&per_page=%d", c.base, url.QueryEscape(q), perPage)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.key)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("pexels", "search", 0, time.Since(start))
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("pexels", "search", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: pexels status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	out := make([]domain.Image, 0, len(sr.Photos))
	for _, p := range sr.Photos {
		desc := p.Alt
		if desc == "" {
			desc = "Scene from " + q
		}
		out = append(out, domain.Image{URL: p.Src.Landscape, Description: desc})
	}
	return out, nil
}
