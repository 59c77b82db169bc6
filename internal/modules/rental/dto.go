package rental

import "campusrent/internal/domain"

type CreateOfferRequest struct {
	ListingID int64 `json:"listing_id" binding:"required"`
	TenantID  int64 `json:"tenant_id" binding:"required"`
}

// RentalOverview groups a party's rentals the way the client renders them:
// offers awaiting confirmation, the running rental, and closed history.
type RentalOverview struct {
	Pending []domain.Rental `json:"pending"`
	Active  []domain.Rental `json:"active"`
	Past    []domain.Rental `json:"past"`
}
