package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Akarsh-2004/Bagragi/internal/app"
	"github.com/Akarsh-2004/Bagragi/internal/domain"
)

// ---- fakes ----

type fakeSummaries struct {
	pages map[string]string
	asked []string
}

func (f *fakeSummaries) Summary(ctx context.Context, title string) (string, error) {
	f.asked = append(f.asked, title)
	s, ok := f.pages[title]
	if !ok {
		return "", domain.ErrNotFound
	}
	return s, nil
}

type fakeInflation struct {
	byISO map[string]domain.Inflation
}

func (f *fakeInflation) Latest(ctx context.Context, iso string) (domain.Inflation, error) {
	out, ok := f.byISO[iso]
	if !ok {
		return domain.Inflation{}, domain.ErrNoData
	}
	return out, nil
}

func newEnrich(sum *fakeSummaries, inf *fakeInflation) *app.EnrichmentService {
	return app.NewEnrichmentService(nil, nil, sum, inf, nil, &fakeCache{}, time.Minute)
}

// ---- tests ----

func TestHistory_PrefersHistoryOfPage(t *testing.T) {
	sum := &fakeSummaries{pages: map[string]string{
		"History of Japan": "Island archipelago, long history.",
		"Japan":            "A country in East Asia.",
	}}
	svc := newEnrich(sum, &fakeInflation{})

	out, err := svc.History(context.Background(), "Japan")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if out != "Island archipelago, long history." {
		t.Fatalf("unexpected summary: %q", out)
	}
}

func TestHistory_FallsBackToPlainPage(t *testing.T) {
	sum := &fakeSummaries{pages: map[string]string{
		"Wakanda": "A fictional country.",
	}}
	svc := newEnrich(sum, &fakeInflation{})

	out, err := svc.History(context.Background(), "Wakanda")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if out != "A fictional country." {
		t.Fatalf("unexpected summary: %q", out)
	}
	if len(sum.asked) != 2 || sum.asked[0] != "History of Wakanda" {
		t.Fatalf("unexpected lookup order: %v", sum.asked)
	}
}

func TestRelations_TriesBothOrderings(t *testing.T) {
	sum := &fakeSummaries{pages: map[string]string{
		"France–India relations": "Long-standing bilateral ties.",
	}}
	svc := newEnrich(sum, &fakeInflation{})

	out, err := svc.Relations(context.Background(), "India", "France")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if out != "Long-standing bilateral ties." {
		t.Fatalf("unexpected summary: %q", out)
	}

	if _, err := svc.Relations(context.Background(), "India", "Atlantis"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInflation_UnknownCountryRejectedBeforeUpstream(t *testing.T) {
	svc := newEnrich(&fakeSummaries{}, &fakeInflation{})

	_, err := svc.Inflation(context.Background(), "Nowhereland")
	if !errors.Is(err, domain.ErrUnknownCountry) {
		t.Fatalf("expected ErrUnknownCountry, got %v", err)
	}
}

func TestInflation_ResolvesISOAndSetsCountry(t *testing.T) {
	inf := &fakeInflation{byISO: map[string]domain.Inflation{
		"IN": {Year: "2024", Inflation: "4.95%", Indicator: "Inflation, consumer prices (annual %)"},
	}}
	svc := newEnrich(&fakeSummaries{}, inf)

	out, err := svc.Inflation(context.Background(), "India")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if out.Country != "India" || out.Inflation != "4.95%" {
		t.Fatalf("unexpected result: %+v", out)
	}
}
