package restcountries

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/Akarsh-2004/Bagragi/internal/adapters/observability"
	"github.com/Akarsh-2004/Bagragi/internal/domain"
)

type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, rps int) *Client {
	if rps <= 0 {
		rps = 2
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

type countryRecord struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Capital []string `json:"capital"`
}

// All fetches the full country directory in one call. Filtering is the
// caller's concern; the list is returned sorted by name.
func (c *Client) All(ctx context.Context) ([]domain.Country, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}
	u := c.base + "/all?fields=name,capital"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("restcountries", "all", 0, time.Since(start))
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("restcountries", "all", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: restcountries status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var recs []countryRecord
	if err := json.NewDecoder(resp.Body).Decode(&recs); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	out := make([]domain.Country, 0, len(recs))
	for _, r := range recs {
		capital := ""
		if len(r.Capital) > 0 {
			capital = r.Capital[0]
		}
		out = append(out, domain.Country{Name: r.Name.Common, Capital: capital})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
