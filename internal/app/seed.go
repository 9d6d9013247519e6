package app

import (
	"github.com/google/uuid"

	"github.com/Akarsh-2004/Bagragi/internal/domain"
)

// SeedRow is one record of the catalog dataset file consumed by the seeder.
type SeedRow struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Country       string   `json:"country"`
	City          string   `json:"city"`
	Address       string   `json:"address"`
	Lat           float64  `json:"lat"`
	Long          float64  `json:"long"`
	Stars         int      `json:"stars"`
	PricePerNight float64  `json:"pricePerNight"`
	Images        []string `json:"images"`
	Amenities     []string `json:"amenities"`
	Tags          []string `json:"tags"`
}

// ListingFromSeed maps a dataset row onto a catalog listing owned by the
// given host account.
func ListingFromSeed(row SeedRow, hostID string) domain.Listing {
	images := row.Images
	if images == nil {
		images = []string{}
	}
	amenities := row.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return domain.Listing{
		ID:     uuid.NewString(),
		HostID: hostID,
		Name:   row.Name,
		Description: row.Description,
		Location: domain.Location{
			Country: row.Country,
			City:    row.City,
			Address: row.Address,
			Coordinates: domain.Coordinates{
				Lat:  row.Lat,
				Long: row.Long,
			},
		},
		Images:             images,
		PricePerNight:      row.PricePerNight,
		Amenities:          amenities,
		IsAvailable:        true,
		CheckInTime:        defaultCheckIn,
		CheckOutTime:       defaultCheckOut,
		CancellationPolicy: defaultCancellationPolicy,
		Stars:              row.Stars,
		Tags:               row.Tags,
	}
}
