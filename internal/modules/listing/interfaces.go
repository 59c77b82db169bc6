package listing

import (
	"context"

	"campusrent/internal/domain"
	"campusrent/internal/repository"
)

// ListingRepository defines the store operations the listing service uses.
// Conditional writes return repository.ErrStaleStatus when the listing
// left its editable state between read and write.
type ListingRepository interface {
	Search(ctx context.Context, f repository.ListingFilters) ([]domain.Listing, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	Create(ctx context.Context, l *domain.Listing) error
	UpdateEditable(ctx context.Context, l *domain.Listing) error
	UpdateStatusIf(ctx context.Context, id int64, from []domain.ListingStatus, to domain.ListingStatus) error
	DeleteIf(ctx context.Context, id int64) error
}
