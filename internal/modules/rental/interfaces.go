package rental

import (
	"context"
	"time"

	"campusrent/internal/domain"
)

// RentalRepository defines the ledger operations the coordinator needs.
// Every transition method is transactional and conditional on the current
// status; a stale precondition surfaces as repository.ErrStaleStatus.
type RentalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	CreateOffer(ctx context.Context, r *domain.Rental) error
	Activate(ctx context.Context, rentalID, listingID int64, start time.Time) error
	Cancel(ctx context.Context, rentalID, listingID int64) error
	Finish(ctx context.Context, rentalID, listingID int64, end time.Time) error
	ListByTenant(ctx context.Context, tenantID int64) ([]domain.Rental, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Rental, error)
}

// ListingReader is the read-only slice of the listing store the
// coordinator needs for authority checks.
type ListingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}

// UserReader resolves the tenant named in an offer.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
