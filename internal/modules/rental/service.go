package rental

import (
	"context"
	"errors"
	"time"

	"campusrent/internal/domain"
	"campusrent/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Service is the lifecycle coordinator: the sole writer of status
// transitions on listings and rentals. Each action validates the actor's
// authority and the current state, then applies the transition as one
// short transaction.
type Service struct {
	rentals  RentalRepository
	listings ListingReader
	users    UserReader
}

func NewService(rentals RentalRepository, listings ListingReader, users UserReader) *Service {
	return &Service{
		rentals:  rentals,
		listings: listings,
		users:    users,
	}
}

// CreateOffer proposes a tenant for an available listing. Exactly one of
// two concurrent offers on the same listing succeeds; the loser gets
// ErrConflict and must refresh before retrying.
func (s *Service) CreateOffer(ctx context.Context, ownerID int64, req CreateOfferRequest) (*domain.Rental, error) {
	listing, err := s.listings.GetByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if listing.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	tenant, err := s.users.GetByID(ctx, req.TenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if tenant.Role != domain.RoleStudent || tenant.ID == ownerID {
		return nil, ErrValidation
	}

	// Fast precondition check; the CAS inside CreateOffer is authoritative.
	if listing.Status != domain.ListingAvailable {
		return nil, ErrConflict
	}

	r := &domain.Rental{
		ListingID: listing.ID,
		OwnerID:   listing.OwnerID,
		TenantID:  tenant.ID,
	}

	if err := s.rentals.CreateOffer(ctx, r); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, ErrConflict
		}
		var pgErr *pgconn.PgError
		if (errors.As(err, &pgErr) && pgErr.Code == "23505") ||
			errors.Is(err, gorm.ErrDuplicatedKey) {
			// idx_one_open_rental_per_listing: another offer won the race
			return nil, ErrConflict
		}
		return nil, err
	}

	return r, nil
}

// Confirm activates a pending rental. Only the named tenant may confirm,
// and confirming twice is an error, not a no-op.
func (s *Service) Confirm(ctx context.Context, rentalID, actorID int64) (*domain.Rental, error) {
	r, err := s.getRental(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	if r.TenantID != actorID {
		return nil, ErrForbidden
	}
	if r.Status != domain.RentalPending {
		return nil, ErrConflict
	}

	now := time.Now()
	if err := s.rentals.Activate(ctx, r.ID, r.ListingID, now); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, ErrConflict
		}
		return nil, err
	}

	r.Status = domain.RentalActive
	r.StartDate = &now
	return r, nil
}

// Cancel voids a pending offer; either party may do it.
func (s *Service) Cancel(ctx context.Context, rentalID, actorID int64) error {
	r, err := s.getRental(ctx, rentalID)
	if err != nil {
		return err
	}

	if actorID != r.OwnerID && actorID != r.TenantID {
		return ErrForbidden
	}
	if r.Status != domain.RentalPending {
		return ErrConflict
	}

	if err := s.rentals.Cancel(ctx, r.ID, r.ListingID); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// Finalize ends an active rental; owner only. The listing returns to
// available and may immediately receive a new offer.
func (s *Service) Finalize(ctx context.Context, rentalID, actorID int64) error {
	r, err := s.getRental(ctx, rentalID)
	if err != nil {
		return err
	}

	if actorID != r.OwnerID {
		return ErrForbidden
	}
	if r.Status != domain.RentalActive {
		return ErrConflict
	}

	if err := s.rentals.Finish(ctx, r.ID, r.ListingID, time.Now()); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// Overview returns the caller's rentals grouped for display.
func (s *Service) Overview(ctx context.Context, userID int64, role domain.UserRole) (*RentalOverview, error) {
	var (
		rentals []domain.Rental
		err     error
	)
	if role == domain.RoleOwner {
		rentals, err = s.rentals.ListByOwner(ctx, userID)
	} else {
		rentals, err = s.rentals.ListByTenant(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	ov := &RentalOverview{
		Pending: []domain.Rental{},
		Active:  []domain.Rental{},
		Past:    []domain.Rental{},
	}
	for _, r := range rentals {
		switch r.Status {
		case domain.RentalPending:
			ov.Pending = append(ov.Pending, r)
		case domain.RentalActive:
			ov.Active = append(ov.Active, r)
		default:
			ov.Past = append(ov.Past, r)
		}
	}
	return ov, nil
}

func (s *Service) getRental(ctx context.Context, id int64) (*domain.Rental, error) {
	r, err := s.rentals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}
