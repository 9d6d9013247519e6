package domain

import "context"

type AccountRepository interface {
	CreateAccount(ctx context.Context, a Account) error
	GetAccountByEmail(ctx context.Context, email string) (Account, error)
	GetAccountByID(ctx context.Context, id string) (Account, error)
	DeleteAccount(ctx context.Context, id string) error
}

type ListingRepository interface {
	CreateListing(ctx context.Context, l Listing) error
	GetListing(ctx context.Context, id string) (Listing, error)
	ListListings(ctx context.Context) ([]Listing, error)
	ListByHost(ctx context.Context, hostID string) ([]Listing, error)
	UpdateListing(ctx context.Context, l Listing) error
	DeleteListing(ctx context.Context, id string) error
	SearchListings(ctx context.Context, q SearchQuery) ([]Listing, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Claims is the payload carried by a session token.
type Claims struct {
	AccountID string
	Role      Role
}

type TokenSigner interface {
	Issue(accountID string, role Role) (string, error)
	Verify(token string) (Claims, error)
}

// ---- enrichment gateway ports (one external call each) ----

type ImageSearcher interface {
	Search(ctx context.Context, query string) ([]Image, error)
}

type CountryDirectory interface {
	All(ctx context.Context) ([]Country, error)
}

// SummarySource returns the free-text summary for an encyclopedia title,
// or ErrNotFound when the page is missing or its summary is empty.
type SummarySource interface {
	Summary(ctx context.Context, title string) (string, error)
}

// InflationSource returns the most recent non-null data point for an ISO2
// country code, or ErrNoData when every entry is null.
type InflationSource interface {
	Latest(ctx context.Context, iso string) (Inflation, error)
}

type CostSource interface {
	Lookup(ctx context.Context, place, kind string) (CostOfLiving, error)
}

type ChatCompleter interface {
	Configured() bool
	Complete(ctx context.Context, system, user string) (string, error)
}
