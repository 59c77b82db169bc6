package repository

import (
	"context"

	"campusrent/internal/domain"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, listingID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Add inserts the membership row. A unique-index violation means another
// request won the race; the caller treats that as membership established.
func (r *FavoriteRepository) Add(ctx context.Context, userID, listingID int64) error {
	return r.db.WithContext(ctx).Create(&domain.Favorite{
		UserID:    userID,
		ListingID: listingID,
	}).Error
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, listingID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Delete(&domain.Favorite{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *FavoriteRepository) Count(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
