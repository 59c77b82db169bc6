package favorite

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	favorites FavoriteRepository
	listings  ListingReader
}

func NewService(favorites FavoriteRepository, listings ListingReader) *Service {
	return &Service{
		favorites: favorites,
		listings:  listings,
	}
}

// Toggle flips the membership of (user, listing) and returns the new
// state. Concurrent toggles collapse to a single consistent membership:
// duplicate inserts and already-gone deletes both resolve quietly.
func (s *Service) Toggle(ctx context.Context, userID, listingID int64) (bool, error) {
	if _, err := s.listings.GetByID(ctx, listingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	exists, err := s.favorites.Exists(ctx, userID, listingID)
	if err != nil {
		return false, err
	}

	if exists {
		// A concurrent toggle may have removed it first; either way the
		// final membership is false.
		if _, err := s.favorites.Remove(ctx, userID, listingID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.favorites.Add(ctx, userID, listingID); err != nil {
		if isUniqueViolation(err) {
			// lost an add/add race; membership stands
			return true, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Service) IsFavorite(ctx context.Context, userID, listingID int64) (bool, error) {
	return s.favorites.Exists(ctx, userID, listingID)
}

func (s *Service) Count(ctx context.Context, userID int64) (int64, error) {
	return s.favorites.Count(ctx, userID)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// SQLite reports constraint violations through gorm's translator
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
