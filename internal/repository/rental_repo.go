package repository

import (
	"context"
	"time"

	"campusrent/internal/domain"

	"gorm.io/gorm"
)

type RentalRepository struct {
	db *gorm.DB
}

func NewRentalRepository(db *gorm.DB) *RentalRepository {
	return &RentalRepository{db: db}
}

func (r *RentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	var rental domain.Rental
	err := r.db.WithContext(ctx).
		Preload("Listing").
		First(&rental, id).Error
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

// CreateOffer atomically claims the listing and records the pending
// rental. The CAS on the listing row serializes racing offers; the partial
// unique index on open rentals backstops anything the CAS cannot see.
func (r *RentalRepository) CreateOffer(ctx context.Context, rental *domain.Rental) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateStatusIf(tx, rental.ListingID,
			[]domain.ListingStatus{domain.ListingAvailable},
			domain.ListingOffered,
		); err != nil {
			return err
		}

		rental.Status = domain.RentalPending
		return tx.Create(rental).Error
	})
}

// Activate moves a pending rental to active and the listing to rented.
func (r *RentalRepository) Activate(ctx context.Context, rentalID, listingID int64, start time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Rental{}).
			Where("id = ? AND status = ?", rentalID, domain.RentalPending).
			Updates(map[string]any{
				"status":     domain.RentalActive,
				"start_date": start,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStaleStatus
		}

		return updateStatusIf(tx, listingID,
			[]domain.ListingStatus{domain.ListingOffered},
			domain.ListingRented,
		)
	})
}

// Cancel voids a pending rental and releases the listing.
func (r *RentalRepository) Cancel(ctx context.Context, rentalID, listingID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Rental{}).
			Where("id = ? AND status = ?", rentalID, domain.RentalPending).
			Update("status", domain.RentalCancelled)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStaleStatus
		}

		return updateStatusIf(tx, listingID,
			[]domain.ListingStatus{domain.ListingOffered},
			domain.ListingAvailable,
		)
	})
}

// Finish closes an active rental and releases the listing.
func (r *RentalRepository) Finish(ctx context.Context, rentalID, listingID int64, end time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Rental{}).
			Where("id = ? AND status = ?", rentalID, domain.RentalActive).
			Updates(map[string]any{
				"status":   domain.RentalFinished,
				"end_date": end,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStaleStatus
		}

		return updateStatusIf(tx, listingID,
			[]domain.ListingStatus{domain.ListingRented},
			domain.ListingAvailable,
		)
	})
}

func (r *RentalRepository) ListByTenant(ctx context.Context, tenantID int64) ([]domain.Rental, error) {
	var rentals []domain.Rental
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Preload("Listing").
		Order("created_at DESC").
		Find(&rentals).Error
	return rentals, err
}

func (r *RentalRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Rental, error) {
	var rentals []domain.Rental
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Preload("Listing").
		Preload("Tenant").
		Order("created_at DESC").
		Find(&rentals).Error
	return rentals, err
}
