package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Akarsh-2004/Bagragi/internal/domain"
)

const (
	defaultCheckIn            = "14:00"
	defaultCheckOut           = "11:00"
	defaultCancellationPolicy = "Free cancellation within 24 hours before check-in"
)

type HotelService struct {
	listings domain.ListingRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewHotelService(listings domain.ListingRepository, cache domain.Cache, ttl time.Duration) *HotelService {
	return &HotelService{listings: listings, cache: cache, cacheTTL: ttl}
}

// canMutate is the single ownership gate: only the owning host may touch a
// listing.
func canMutate(c domain.Claims, l domain.Listing) bool {
	return c.Role == domain.RoleHost && c.AccountID == l.HostID
}

func (s *HotelService) Create(ctx context.Context, l domain.Listing, requester domain.Claims) (domain.Listing, error) {
	if requester.Role != domain.RoleHost {
		return domain.Listing{}, domain.ErrForbidden
	}
	if l.PricePerNight < 0 {
		return domain.Listing{}, domain.ErrInvalidPrice
	}

	now := time.Now().UTC().Truncate(time.Second)
	l.ID = uuid.NewString()
	l.HostID = requester.AccountID
	l.IsAvailable = true
	l.CreatedAt = now
	l.UpdatedAt = now
	if l.CheckInTime == "" {
		l.CheckInTime = defaultCheckIn
	}
	if l.CheckOutTime == "" {
		l.CheckOutTime = defaultCheckOut
	}
	if l.CancellationPolicy == "" {
		l.CancellationPolicy = defaultCancellationPolicy
	}
	if l.Images == nil {
		l.Images = []string{}
	}
	if l.Amenities == nil {
		l.Amenities = []string{}
	}

	if err := s.listings.CreateListing(ctx, l); err != nil {
		return domain.Listing{}, err
	}
	s.invalidate(ctx, l.ID)
	return s.listings.GetListing(ctx, l.ID)
}

func (s *HotelService) ListAll(ctx context.Context) ([]domain.Listing, error) {
	var out []domain.Listing
	if ok, _ := s.cache.Get(ctx, "hotels:all", &out); ok {
		return out, nil
	}
	out, err := s.listings.ListListings(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, "hotels:all", out, int(s.cacheTTL.Seconds()))
	return out, nil
}

func (s *HotelService) GetByID(ctx context.Context, id string) (domain.Listing, error) {
	key := "hotel:" + id
	var l domain.Listing
	if ok, _ := s.cache.Get(ctx, key, &l); ok {
		return l, nil
	}
	l, err := s.listings.GetListing(ctx, id)
	if err != nil {
		return domain.Listing{}, err
	}
	_ = s.cache.Set(ctx, key, l, int(s.cacheTTL.Seconds()))
	return l, nil
}

func (s *HotelService) ListByHost(ctx context.Context, requester domain.Claims) ([]domain.Listing, error) {
	if requester.Role != domain.RoleHost {
		return nil, domain.ErrForbidden
	}
	return s.listings.ListByHost(ctx, requester.AccountID)
}

// Update merges set patch fields onto the stored record (shallow overwrite)
// and persists the result.
func (s *HotelService) Update(ctx context.Context, id string, patch domain.ListingPatch, requester domain.Claims) (domain.Listing, error) {
	l, err := s.listings.GetListing(ctx, id)
	if err != nil {
		return domain.Listing{}, err
	}
	if !canMutate(requester, l) {
		return domain.Listing{}, domain.ErrForbidden
	}

	applyPatch(&l, patch)
	if l.PricePerNight < 0 {
		return domain.Listing{}, domain.ErrInvalidPrice
	}

	if err := s.listings.UpdateListing(ctx, l); err != nil {
		return domain.Listing{}, err
	}
	s.invalidate(ctx, id)
	return s.listings.GetListing(ctx, id)
}

func (s *HotelService) Delete(ctx context.Context, id string, requester domain.Claims) error {
	l, err := s.listings.GetListing(ctx, id)
	if err != nil {
		return err
	}
	if !canMutate(requester, l) {
		return domain.ErrForbidden
	}
	if err := s.listings.DeleteListing(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// Search is the filtered contract consumed by the browsing page. The
// average price is the arithmetic mean over the returned set and null when
// the set is empty.
func (s *HotelService) Search(ctx context.Context, q domain.SearchQuery) (domain.SearchResult, error) {
	hotels, err := s.listings.SearchListings(ctx, q)
	if err != nil {
		return domain.SearchResult{}, err
	}
	res := domain.SearchResult{Hotels: hotels, Count: len(hotels)}
	if res.Hotels == nil {
		res.Hotels = []domain.Listing{}
	}
	if len(hotels) > 0 {
		var sum float64
		for _, h := range hotels {
			sum += h.PricePerNight
		}
		avg := sum / float64(len(hotels))
		res.AveragePrice = &avg
	}
	return res, nil
}

func (s *HotelService) invalidate(ctx context.Context, id string) {
	_ = s.cache.Del(ctx, "hotel:"+id)
	_ = s.cache.Del(ctx, "hotels:all")
}

func applyPatch(l *domain.Listing, p domain.ListingPatch) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.Location != nil {
		l.Location = *p.Location
	}
	if p.Images != nil {
		l.Images = *p.Images
	}
	if p.PricePerNight != nil {
		l.PricePerNight = *p.PricePerNight
	}
	if p.Amenities != nil {
		l.Amenities = *p.Amenities
	}
	if p.IsAvailable != nil {
		l.IsAvailable = *p.IsAvailable
	}
	if p.RoomTypes != nil {
		l.RoomTypes = *p.RoomTypes
	}
	if p.MaxGuests != nil {
		l.MaxGuests = *p.MaxGuests
	}
	if p.CheckInTime != nil {
		l.CheckInTime = *p.CheckInTime
	}
	if p.CheckOutTime != nil {
		l.CheckOutTime = *p.CheckOutTime
	}
	if p.CancellationPolicy != nil {
		l.CancellationPolicy = *p.CancellationPolicy
	}
	if p.Stars != nil {
		l.Stars = *p.Stars
	}
	if p.Tags != nil {
		l.Tags = *p.Tags
	}
}
