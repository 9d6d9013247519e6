package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Akarsh-2004/Bagragi/internal/domain"
)

// EnrichmentService fronts the four stateless upstream gateways, adding a
// read-through cache where the response is stable enough to be worth it.
type EnrichmentService struct {
	images    domain.ImageSearcher
	countries domain.CountryDirectory
	summaries domain.SummarySource
	inflation domain.InflationSource
	cost      domain.CostSource
	cache     domain.Cache
	cacheTTL  time.Duration
}

func NewEnrichmentService(
	images domain.ImageSearcher,
	countries domain.CountryDirectory,
	summaries domain.SummarySource,
	inflation domain.InflationSource,
	cost domain.CostSource,
	cache domain.Cache,
	ttl time.Duration,
) *EnrichmentService {
	return &EnrichmentService{
		images:    images,
		countries: countries,
		summaries: summaries,
		inflation: inflation,
		cost:      cost,
		cache:     cache,
		cacheTTL:  ttl,
	}
}

func (s *EnrichmentService) Images(ctx context.Context, query string) ([]domain.Image, error) {
	return s.images.Search(ctx, query)
}

// Countries returns the full directory; the upstream list changes rarely, so
// it is cached aggressively and filtered client-side.
func (s *EnrichmentService) Countries(ctx context.Context) ([]domain.Country, error) {
	var out []domain.Country
	if ok, _ := s.cache.Get(ctx, "countries:all", &out); ok {
		return out, nil
	}
	out, err := s.countries.All(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, "countries:all", out, int(s.cacheTTL.Seconds()))
	return out, nil
}

// History prefers the dedicated "History of X" page, falling back to the
// page for X itself.
func (s *EnrichmentService) History(ctx context.Context, place string) (string, error) {
	key := "history:" + strings.ToLower(place)
	var out string
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}

	out, err := s.summaries.Summary(ctx, "History of "+place)
	if errors.Is(err, domain.ErrNotFound) {
		out, err = s.summaries.Summary(ctx, place)
	}
	if err != nil {
		return "", err
	}
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

// Relations looks up the bilateral-relations article, trying both title
// orderings.
func (s *EnrichmentService) Relations(ctx context.Context, c1, c2 string) (string, error) {
	out, err := s.summaries.Summary(ctx, c1+"–"+c2+" relations")
	if errors.Is(err, domain.ErrNotFound) {
		out, err = s.summaries.Summary(ctx, c2+"–"+c1+" relations")
	}
	return out, err
}

// Inflation resolves the country name through the static ISO table before
// calling the statistics API. ErrUnknownCountry on a table miss.
func (s *EnrichmentService) Inflation(ctx context.Context, country string) (domain.Inflation, error) {
	iso, ok := isoCodes[country]
	if !ok {
		return domain.Inflation{}, domain.ErrUnknownCountry
	}

	key := "inflation:" + iso
	var out domain.Inflation
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}

	out, err := s.inflation.Latest(ctx, iso)
	if err != nil {
		return domain.Inflation{}, err
	}
	out.Country = country
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

func (s *EnrichmentService) CostOfLiving(ctx context.Context, place, kind string) (domain.CostOfLiving, error) {
	return s.cost.Lookup(ctx, place, kind)
}
