package domain

import "time"

type Role string

const (
	RoleGuest Role = "guest"
	RoleHost  Role = "host"
)

func (r Role) Valid() bool { return r == RoleGuest || r == RoleHost }

// Preferences drive the canned trip-plan content and the profile page.
type Preferences struct {
	TravelStyle        string   `json:"travelStyle"`
	Budget             string   `json:"budget"`
	PreferredCountries []string `json:"preferredCountries"`
}

type Account struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         Role        `json:"role"`
	Country      string      `json:"country"`
	City         string      `json:"city,omitempty"`
	Phone        string      `json:"phone,omitempty"`
	Bio          string      `json:"bio,omitempty"`
	ProfileImage string      `json:"profileImage,omitempty"`
	Preferences  Preferences `json:"preferences"`
	CreatedAt    time.Time   `json:"createdAt"`
}
