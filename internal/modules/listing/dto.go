package listing

import "campusrent/internal/domain"

// View selects the audience a search serves. Public and favorites views
// are pinned to available listings; the owner panel sees its own listings
// in any status.
type View string

const (
	ViewPublic    View = "public"
	ViewFavorites View = "favorites"
	ViewOwner     View = "owner"
)

// SearchQuery mirrors the browse filters: every dimension optional and
// AND-combined.
type SearchQuery struct {
	View         View     `form:"view"`
	Search       string   `form:"search"`
	Type         string   `form:"type"`
	PriceMin     *float64 `form:"price_min"`
	PriceMax     *float64 `form:"price_max"`
	AreaMin      *float64 `form:"area_min"`
	AreaMax      *float64 `form:"area_max"`
	MinBedrooms  int      `form:"bedrooms"`
	MinBathrooms int      `form:"bathrooms"`
	Furnished    *bool    `form:"furnished"`
	PetsAllowed  *bool    `form:"pets_allowed"`
	Garage       *bool    `form:"garage"`
	Status       string   `form:"status"`
	SortBy       string   `form:"sort_by"`
	Order        string   `form:"order"`
	Page         int      `form:"page"`
}

type SearchResult struct {
	Items      []domain.Listing `json:"items"`
	TotalPages int              `json:"total_pages"`
}

type CreateListingRequest struct {
	Title               string   `json:"title" binding:"required"`
	Description         string   `json:"description"`
	Type                string   `json:"type" binding:"required"`
	Price               float64  `json:"price" binding:"required,gt=0"`
	Area                float64  `json:"area" binding:"required,gt=0"`
	Bedrooms            int      `json:"bedrooms" binding:"required,gte=1"`
	Bathrooms           int      `json:"bathrooms" binding:"required,gte=1"`
	Furnished           bool     `json:"furnished"`
	PetsAllowed         bool     `json:"pets_allowed"`
	Garage              bool     `json:"garage"`
	Address             string   `json:"address" binding:"required"`
	Latitude            float64  `json:"latitude" binding:"required"`
	Longitude           float64  `json:"longitude" binding:"required"`
	DistanceCampusMain  float64  `json:"distance_campus_main"`
	DistanceCampusNorth float64  `json:"distance_campus_north"`
	Images              []string `json:"images"`
}

// UpdateListingRequest uses pointers so absent fields stay untouched.
// KeptImages preserves existing references; NewImages are fresh uploads
// that get new storage references.
type UpdateListingRequest struct {
	Title               *string  `json:"title"`
	Description         *string  `json:"description"`
	Type                *string  `json:"type"`
	Price               *float64 `json:"price"`
	Area                *float64 `json:"area"`
	Bedrooms            *int     `json:"bedrooms"`
	Bathrooms           *int     `json:"bathrooms"`
	Furnished           *bool    `json:"furnished"`
	PetsAllowed         *bool    `json:"pets_allowed"`
	Garage              *bool    `json:"garage"`
	Address             *string  `json:"address"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	DistanceCampusMain  *float64 `json:"distance_campus_main"`
	DistanceCampusNorth *float64 `json:"distance_campus_north"`
	KeptImages          []string `json:"kept_images"`
	NewImages           []string `json:"new_images"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
