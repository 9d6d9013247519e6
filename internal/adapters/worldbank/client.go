package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/Akarsh-2004/Bagragi/internal/adapters/observability"
	"github.com/Akarsh-2004/Bagragi/internal/domain"
)

// indicator is consumer-price inflation, annual %.
const indicator = "FP.CPI.TOTL.ZG"

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

type entry struct {
	Date      string   `json:"date"`
	Value     *float64 `json:"value"`
	Indicator struct {
		Value string `json:"value"`
	} `json:"indicator"`
}

// Latest returns the most recent non-null data point for the ISO2 code.
// The API answers [metadata, entries] with entries newest-first; entries
// with null values are skipped. ErrNoData when every value is null.
func (c *Client) Latest(ctx context.Context, iso string) (domain.Inflation, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return domain.Inflation{}, err
	}
	u := fmt.Sprintf("%s/country/%s/indicator/%s?format=json&per_page=100", c.base, iso, indicator)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.Inflation{}, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("worldbank", "inflation", 0, time.Since(start))
		return domain.Inflation{}, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("worldbank", "inflation", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return domain.Inflation{}, fmt.Errorf("%w: worldbank status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var payload []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.Inflation{}, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	if len(payload) < 2 {
		return domain.Inflation{}, domain.ErrNoData
	}

	var entries []entry
	if err := json.Unmarshal(payload[1], &entries); err != nil {
		return domain.Inflation{}, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	for _, e := range entries {
		if e.Value == nil {
			continue
		}
		return domain.Inflation{
			Year:      e.Date,
			Inflation: fmt.Sprintf("%.2f%%", *e.Value),
			Indicator: e.Indicator.Value,
		}, nil
	}
	return domain.Inflation{}, domain.ErrNoData
}
