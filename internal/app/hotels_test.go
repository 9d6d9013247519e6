package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Akarsh-2004/Bagragi/internal/app"
	"github.com/Akarsh-2004/Bagragi/internal/domain"
)

// ---- fakes ----

type fakeListings struct {
	byID map[string]domain.Listing
}

func (f *fakeListings) CreateListing(ctx context.Context, l domain.Listing) error {
	if f.byID == nil {
		f.byID = map[string]domain.Listing{}
	}
	f.byID[l.ID] = l
	return nil
}

func (f *fakeListings) GetListing(ctx context.Context, id string) (domain.Listing, error) {
	l, ok := f.byID[id]
	if !ok {
		return domain.Listing{}, domain.ErrNotFound
	}
	return l, nil
}

func (f *fakeListings) ListListings(ctx context.Context) ([]domain.Listing, error) {
	out := make([]domain.Listing, 0, len(f.byID))
	for _, l := range f.byID {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeListings) ListByHost(ctx context.Context, hostID string) ([]domain.Listing, error) {
	var out []domain.Listing
	for _, l := range f.byID {
		if l.HostID == hostID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeListings) UpdateListing(ctx context.Context, l domain.Listing) error {
	if _, ok := f.byID[l.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[l.ID] = l
	return nil
}

func (f *fakeListings) DeleteListing(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeListings) SearchListings(ctx context.Context, q domain.SearchQuery) ([]domain.Listing, error) {
	var out []domain.Listing
	for _, l := range f.byID {
		if !strings.EqualFold(l.Location.Country, q.Country) {
			continue
		}
		if q.City != "" && !strings.EqualFold(l.Location.City, q.City) {
			continue
		}
		if q.MinStars > 0 && l.Stars < q.MinStars {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

type fakeCache struct {
	store map[string]any
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.Listing:
		*d = v.(domain.Listing)
	case *[]domain.Listing:
		*d = v.([]domain.Listing)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func hostClaims(id string) domain.Claims { return domain.Claims{AccountID: id, Role: domain.RoleHost} }

func seedListing(f *fakeListings, id, hostID, country, city string, stars int, price float64) {
	_ = f.CreateListing(context.Background(), domain.Listing{
		ID:     id,
		HostID: hostID,
		Name:   "Hotel " + id,
		Location: domain.Location{
			Country: country,
			City:    city,
		},
		Stars:         stars,
		PricePerNight: price,
		IsAvailable:   true,
	})
}

// ---- tests ----

func TestCreate_GuestsCannotCreate(t *testing.T) {
	svc := app.NewHotelService(&fakeListings{}, &fakeCache{}, time.Minute)

	_, err := svc.Create(context.Background(), domain.Listing{Name: "X"}, domain.Claims{
		AccountID: "g1", Role: domain.RoleGuest,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreate_AppliesDefaultsAndOwner(t *testing.T) {
	repo := &fakeListings{}
	svc := app.NewHotelService(repo, &fakeCache{}, time.Minute)

	created, err := svc.Create(context.Background(), domain.Listing{
		Name:          "Sea View",
		Location:      domain.Location{Country: "Portugal", City: "Lisbon"},
		PricePerNight: 120,
	}, hostClaims("h1"))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if created.ID == "" || created.HostID != "h1" {
		t.Fatalf("unexpected identity: %+v", created)
	}
	if created.CheckInTime != "14:00" || created.CheckOutTime != "11:00" {
		t.Fatalf("defaults not applied: %+v", created)
	}
	if !created.IsAvailable {
		t.Fatal("new listing should be available")
	}
	if created.Images == nil || created.Amenities == nil {
		t.Fatal("expected non-nil images/amenities")
	}
}

func TestCreate_NegativePriceRejected(t *testing.T) {
	svc := app.NewHotelService(&fakeListings{}, &fakeCache{}, time.Minute)

	_, err := svc.Create(context.Background(), domain.Listing{
		Name:          "Bad",
		Location:      domain.Location{Country: "PT", City: "Porto"},
		PricePerNight: -5,
	}, hostClaims("h1"))
	if !errors.Is(err, domain.ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestUpdate_OnlyOwnerMayMutate(t *testing.T) {
	repo := &fakeListings{}
	seedListing(repo, "l1", "h1", "India", "Jaipur", 4, 90)
	svc := app.NewHotelService(repo, &fakeCache{}, time.Minute)

	name := "Renamed"
	patch := domain.ListingPatch{Name: &name}

	if _, err := svc.Update(context.Background(), "l1", patch, hostClaims("h2")); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("other host: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Update(context.Background(), "l1", patch, domain.Claims{AccountID: "h1", Role: domain.RoleGuest}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("guest owner id: expected ErrForbidden, got %v", err)
	}

	updated, err := svc.Update(context.Background(), "l1", patch, hostClaims("h1"))
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.Stars != 4 {
		t.Fatalf("unset fields must survive: %+v", updated)
	}
}

func TestDelete_OnlyOwnerMayDelete(t *testing.T) {
	repo := &fakeListings{}
	seedListing(repo, "l1", "h1", "India", "Jaipur", 4, 90)
	svc := app.NewHotelService(repo, &fakeCache{}, time.Minute)

	if err := svc.Delete(context.Background(), "l1", hostClaims("h2")); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), "l1", hostClaims("h1")); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if err := svc.Delete(context.Background(), "l1", hostClaims("h1")); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestGetByID_CacheMissThenHit(t *testing.T) {
	repo := &fakeListings{}
	seedListing(repo, "l1", "h1", "Japan", "Kyoto", 5, 300)
	cache := &fakeCache{}
	svc := app.NewHotelService(repo, cache, time.Minute)

	// Miss (first time, populates cache)
	l, err := svc.GetByID(context.Background(), "l1")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if l.Location.City != "Kyoto" {
		t.Fatalf("unexpected listing: %+v", l)
	}

	// Mutate repo to ensure second read indeed comes from cache
	stored := repo.byID["l1"]
	stored.Location.City = "SHOULD NOT SEE THIS"
	repo.byID["l1"] = stored

	// Hit (served from cache)
	l2, err := svc.GetByID(context.Background(), "l1")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if l2.Location.City != "Kyoto" {
		t.Fatalf("expected cached city, got %s", l2.Location.City)
	}
}

func TestSearch_AverageIsMeanAndNullWhenEmpty(t *testing.T) {
	repo := &fakeListings{}
	seedListing(repo, "l1", "h1", "India", "Jaipur", 3, 50)
	seedListing(repo, "l2", "h1", "India", "Delhi", 5, 150)
	seedListing(repo, "l3", "h1", "France", "Paris", 4, 400)
	svc := app.NewHotelService(repo, &fakeCache{}, time.Minute)

	res, err := svc.Search(context.Background(), domain.SearchQuery{Country: "India"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if res.Count != 2 || len(res.Hotels) != 2 {
		t.Fatalf("unexpected count: %+v", res)
	}
	if res.AveragePrice == nil || *res.AveragePrice != 100 {
		t.Fatalf("expected average 100, got %v", res.AveragePrice)
	}

	empty, err := svc.Search(context.Background(), domain.SearchQuery{Country: "Iceland"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if empty.AveragePrice != nil {
		t.Fatalf("expected null average on empty set, got %v", *empty.AveragePrice)
	}
	if empty.Hotels == nil || empty.Count != 0 {
		t.Fatalf("expected empty non-nil slice: %+v", empty)
	}
}

func TestSearch_MinStarsIsLowerBound(t *testing.T) {
	repo := &fakeListings{}
	seedListing(repo, "l1", "h1", "India", "Jaipur", 3, 50)
	seedListing(repo, "l2", "h1", "India", "Delhi", 4, 100)
	seedListing(repo, "l3", "h1", "India", "Mumbai", 5, 200)
	svc := app.NewHotelService(repo, &fakeCache{}, time.Minute)

	res, err := svc.Search(context.Background(), domain.SearchQuery{Country: "India", MinStars: 4})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if res.Count != 2 {
		t.Fatalf("expected stars>=4 to match 2 listings, got %d", res.Count)
	}
	for _, h := range res.Hotels {
		if h.Stars < 4 {
			t.Fatalf("listing below bound leaked: %+v", h)
		}
	}
}
