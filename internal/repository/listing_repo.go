package repository

import (
	"context"
	"strings"

	"campusrent/internal/domain"

	"gorm.io/gorm"
)

// ListingFilters carries the fully resolved query: the listing service has
// already validated ranges, whitelisted the sort column, and pinned the
// view scope before this reaches SQL.
type ListingFilters struct {
	Search       string
	Type         string
	PriceMin     *float64
	PriceMax     *float64
	AreaMin      *float64
	AreaMax      *float64
	MinBedrooms  int
	MinBathrooms int
	Furnished    *bool
	PetsAllowed  *bool
	Garage       *bool
	Status       string
	OwnerID      int64
	FavoritesOf  int64

	SortColumn string
	SortDesc   bool
	Limit      int
	Offset     int
}

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// Search returns the matching page of listings plus the total match count.
func (r *ListingRepository) Search(ctx context.Context, f ListingFilters) ([]domain.Listing, int64, error) {
	var listings []domain.Listing
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Listing{})

	if f.FavoritesOf > 0 {
		q = q.Joins("JOIN favorites ON favorites.listing_id = listings.id AND favorites.user_id = ?", f.FavoritesOf)
	}

	if f.OwnerID > 0 {
		q = q.Where("listings.owner_id = ?", f.OwnerID)
	}

	if f.Status != "" {
		q = q.Where("listings.status = ?", f.Status)
	}

	if f.Search != "" {
		// LOWER + LIKE instead of ILIKE so SQLite behaves like PostgreSQL
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where(
			"LOWER(listings.title) LIKE ? OR LOWER(listings.description) LIKE ? OR LOWER(listings.address) LIKE ?",
			like, like, like,
		)
	}

	if f.Type != "" {
		q = q.Where("listings.type = ?", f.Type)
	}

	if f.PriceMin != nil {
		q = q.Where("listings.price >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		q = q.Where("listings.price <= ?", *f.PriceMax)
	}

	if f.AreaMin != nil {
		q = q.Where("listings.area >= ?", *f.AreaMin)
	}
	if f.AreaMax != nil {
		q = q.Where("listings.area <= ?", *f.AreaMax)
	}

	if f.MinBedrooms > 0 {
		q = q.Where("listings.bedrooms >= ?", f.MinBedrooms)
	}
	if f.MinBathrooms > 0 {
		q = q.Where("listings.bathrooms >= ?", f.MinBathrooms)
	}

	if f.Furnished != nil {
		q = q.Where("listings.furnished = ?", *f.Furnished)
	}
	if f.PetsAllowed != nil {
		q = q.Where("listings.pets_allowed = ?", *f.PetsAllowed)
	}
	if f.Garage != nil {
		q = q.Where("listings.garage = ?", *f.Garage)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	dir := "ASC"
	if f.SortDesc {
		dir = "DESC"
	}

	err := q.
		Order("listings." + f.SortColumn + " " + dir).
		Order("listings.id ASC"). // deterministic pagination on ties
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&listings).Error

	return listings, total, err
}

func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	var l domain.Listing
	err := r.db.WithContext(ctx).
		Preload("Owner").
		First(&l, id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// editableStatuses are the only states in which descriptive fields or the
// status toggle may change.
var editableStatuses = []domain.ListingStatus{
	domain.ListingAvailable,
	domain.ListingUnavailable,
}

// UpdateEditable persists descriptive fields, guarded so the write is lost
// if an offer grabbed the listing between the service's read and this
// statement.
func (r *ListingRepository) UpdateEditable(ctx context.Context, l *domain.Listing) error {
	res := r.db.WithContext(ctx).Model(&domain.Listing{}).
		Where("id = ? AND status IN ?", l.ID, editableStatuses).
		Select(
			"title", "description", "type", "price", "area",
			"bedrooms", "bathrooms", "furnished", "pets_allowed", "garage",
			"address", "latitude", "longitude",
			"distance_campus_main", "distance_campus_north", "images",
		).
		Updates(l)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleStatus
	}
	return nil
}

// UpdateStatusIf is the compare-and-swap every lifecycle transition goes
// through: the status column only moves when it still holds one of the
// expected values.
func (r *ListingRepository) UpdateStatusIf(ctx context.Context, id int64, from []domain.ListingStatus, to domain.ListingStatus) error {
	return updateStatusIf(r.db.WithContext(ctx), id, from, to)
}

func updateStatusIf(tx *gorm.DB, id int64, from []domain.ListingStatus, to domain.ListingStatus) error {
	res := tx.Model(&domain.Listing{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleStatus
	}
	return nil
}

// DeleteIf removes the listing only while no rental holds it.
func (r *ListingRepository) DeleteIf(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND status IN ?", id, editableStatuses).
		Delete(&domain.Listing{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleStatus
	}
	return nil
}
