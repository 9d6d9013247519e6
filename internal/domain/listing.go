package domain

import "time"

type Coordinates struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

type Location struct {
	Country     string      `json:"country"`
	City        string      `json:"city"`
	Address     string      `json:"address,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
}

type RoomType struct {
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	PriceModifier float64 `json:"priceModifier"`
	MaxGuests     int     `json:"maxGuests"`
}

// Listing is a hotel/property record owned by exactly one host account.
// HostName/HostEmail are the owner projection filled in by read paths.
type Listing struct {
	ID          string   `json:"id"`
	HostID      string   `json:"hostId"`
	HostName    string   `json:"hostName,omitempty"`
	HostEmail   string   `json:"hostEmail,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Location    Location `json:"location"`
	Images      []string `json:"images"`

	PricePerNight float64    `json:"pricePerNight"`
	Amenities     []string   `json:"amenities"`
	IsAvailable   bool       `json:"isAvailable"`
	RoomTypes     []RoomType `json:"roomTypes,omitempty"`
	MaxGuests     int        `json:"maxGuests,omitempty"`

	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`

	CheckInTime        string `json:"checkInTime"`
	CheckOutTime       string `json:"checkOutTime"`
	CancellationPolicy string `json:"cancellationPolicy"`

	Stars int      `json:"stars,omitempty"`
	Tags  []string `json:"tags,omitempty"`

	ViewsCount    int64 `json:"viewsCount"`
	BookingsCount int64 `json:"bookingsCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListingPatch is a shallow field overwrite: a set pointer replaces the
// stored field wholesale, nil leaves it untouched.
type ListingPatch struct {
	Name               *string     `json:"name"`
	Description        *string     `json:"description"`
	Location           *Location   `json:"location"`
	Images             *[]string   `json:"images"`
	PricePerNight      *float64    `json:"pricePerNight"`
	Amenities          *[]string   `json:"amenities"`
	IsAvailable        *bool       `json:"isAvailable"`
	RoomTypes          *[]RoomType `json:"roomTypes"`
	MaxGuests          *int        `json:"maxGuests"`
	CheckInTime        *string     `json:"checkInTime"`
	CheckOutTime       *string     `json:"checkOutTime"`
	CancellationPolicy *string     `json:"cancellationPolicy"`
	Stars              *int        `json:"stars"`
	Tags               *[]string   `json:"tags"`
}

type SearchQuery struct {
	Country  string `json:"country"`
	City     string `json:"city"`
	MinStars int    `json:"minStars"`
}

// AveragePrice is nil (JSON null) when Hotels is empty; never zero.
type SearchResult struct {
	Hotels       []Listing `json:"hotels"`
	AveragePrice *float64  `json:"average_price"`
	Count        int       `json:"count"`
}
