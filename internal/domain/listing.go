package domain

import (
	"errors"
	"time"
)

type ListingStatus string

const (
	ListingAvailable   ListingStatus = "available"
	ListingUnavailable ListingStatus = "unavailable"
	ListingOffered     ListingStatus = "offered"
	ListingRented      ListingStatus = "rented"
)

type ListingType string

const (
	TypeHouse     ListingType = "house"
	TypeApartment ListingType = "apartment"
	TypeStudio    ListingType = "studio"
)

func ParseListingType(s string) (ListingType, error) {
	switch ListingType(s) {
	case TypeHouse, TypeApartment, TypeStudio:
		return ListingType(s), nil
	}
	return "", errors.New("unknown listing type")
}

// MaxListingImages caps the number of image references per listing.
const MaxListingImages = 8

type Listing struct {
	ID          int64       `json:"id"`
	OwnerID     int64       `json:"owner_id" gorm:"index"`
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description"`
	Type        ListingType `json:"type"`
	Price       float64     `json:"price" validate:"required,gt=0"`
	Area        float64     `json:"area" validate:"required,gt=0"`
	Bedrooms    int         `json:"bedrooms" validate:"required,gte=1"`
	Bathrooms   int         `json:"bathrooms" validate:"required,gte=1"`
	Furnished   bool        `json:"furnished"`
	PetsAllowed bool        `json:"pets_allowed"`
	Garage      bool        `json:"garage"`
	Address     string      `json:"address"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`

	// Walking distance in meters to the two campuses.
	DistanceCampusMain  float64 `json:"distance_campus_main"`
	DistanceCampusNorth float64 `json:"distance_campus_north"`

	Images []string `json:"images" gorm:"serializer:json"`

	// Status is the single source of truth for whether the listing may
	// receive a new rental offer. It is only mutated through the rental
	// lifecycle or the owner's available/unavailable toggle.
	Status ListingStatus `json:"status" gorm:"index;default:available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

// Editable reports whether descriptive fields and the status toggle may
// change. Edits are frozen for the whole time a rental negotiation or an
// active rental holds the listing.
func (l *Listing) Editable() bool {
	return l.Status == ListingAvailable || l.Status == ListingUnavailable
}
