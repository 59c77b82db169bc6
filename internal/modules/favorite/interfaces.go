package favorite

import (
	"context"

	"campusrent/internal/domain"
)

type FavoriteRepository interface {
	Exists(ctx context.Context, userID, listingID int64) (bool, error)
	Add(ctx context.Context, userID, listingID int64) error
	Remove(ctx context.Context, userID, listingID int64) (bool, error)
	Count(ctx context.Context, userID int64) (int64, error)
}

// ListingReader verifies the target listing exists; favoriting is
// otherwise independent of listing state.
type ListingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}
