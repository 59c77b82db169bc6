package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"

	"campusrent/internal/database"
	"campusrent/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var emailSeq atomic.Int64

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_pragma=busy_timeout(10000)"
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedOwner(t *testing.T, db *gorm.DB) *domain.User {
	t.Helper()

	u := &domain.User{
		Email: fmt.Sprintf("owner-%d@campusrent.dev", emailSeq.Add(1)),
		Role:  domain.RoleOwner,
		Name:  "Owner",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedStudent(t *testing.T, db *gorm.DB) *domain.User {
	t.Helper()

	u := &domain.User{
		Email: fmt.Sprintf("student-%d@campusrent.dev", emailSeq.Add(1)),
		Role:  domain.RoleStudent,
		Name:  "Student",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedListing(t *testing.T, db *gorm.DB, ownerID int64, mut func(*domain.Listing)) *domain.Listing {
	t.Helper()

	l := &domain.Listing{
		OwnerID:   ownerID,
		Title:     "Apartment near campus",
		Type:      domain.TypeApartment,
		Price:     800,
		Area:      40,
		Bedrooms:  1,
		Bathrooms: 1,
		Address:   "Rua Universitária 100",
		Status:    domain.ListingAvailable,
	}
	if mut != nil {
		mut(l)
	}
	require.NoError(t, db.Create(l).Error)
	return l
}

func TestSearch_FiltersCombine(t *testing.T) {
	db := openTestDB(t)
	owner := seedOwner(t, db)
	ctx := context.Background()

	match := seedListing(t, db, owner.ID, func(l *domain.Listing) {
		l.Title = "Furnished studio"
		l.Type = domain.TypeStudio
		l.Price = 700
		l.Furnished = true
	})
	seedListing(t, db, owner.ID, func(l *domain.Listing) {
		l.Type = domain.TypeStudio
		l.Price = 1500 // outside price range
		l.Furnished = true
	})
	seedListing(t, db, owner.ID, func(l *domain.Listing) {
		l.Type = domain.TypeHouse // wrong type
		l.Price = 700
		l.Furnished = true
	})
	seedListing(t, db, owner.ID, func(l *domain.Listing) {
		l.Type = domain.TypeStudio
		l.Price = 700
		l.Furnished = false // not furnished
	})

	repo := NewListingRepository(db)
	furnished := true
	min, max := 500.0, 1000.0

	items, total, err := repo.Search(ctx, ListingFilters{
		Type:       string(domain.TypeStudio),
		PriceMin:   &min,
		PriceMax:   &max,
		Furnished:  &furnished,
		Status:     string(domain.ListingAvailable),
		SortColumn: "created_at",
		SortDesc:   true,
		Limit:      12,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, match.ID, items[0].ID)
}

func TestSearch_TextMatchIsCaseInsensitive(t *testing.T) {
	db := openTestDB(t)
	owner := seedOwner(t, db)
	ctx := context.Background()

	seedListing(t, db, owner.ID, func(l *domain.Listing) {
		l.Title = "Cozy KITNET near the main gate"
	})
	seedListing(t, db, owner.ID, func(l *domain.Listing) {
		l.Title = "Two-bedroom apartment"
		l.Description = "quiet street, kitnet-sized kitchen"
	})
	seedListing(t, db, owner.ID, func(l *domain.Listing) {
		l.Title = "House with garden"
	})

	repo := NewListingRepository(db)

	_, total, err := repo.Search(ctx, ListingFilters{
		Search:     "Kitnet",
		SortColumn: "created_at",
		Limit:      12,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

// Equal sort keys page deterministically because id breaks the tie.
func TestSearch_TieBreakByID(t *testing.T) {
	db := openTestDB(t)
	owner := seedOwner(t, db)
	ctx := context.Background()

	var ids []int64
	for i := 0; i < 3; i++ {
		l := seedListing(t, db, owner.ID, func(l *domain.Listing) {
			l.Price = 800
		})
		ids = append(ids, l.ID)
	}

	repo := NewListingRepository(db)

	items, _, err := repo.Search(ctx, ListingFilters{
		SortColumn: "price",
		SortDesc:   false,
		Limit:      12,
	})

	require.NoError(t, err)
	require.Len(t, items, 3)
	for i := range items {
		assert.Equal(t, ids[i], items[i].ID)
	}
}

func TestSearch_PaginationWindow(t *testing.T) {
	db := openTestDB(t)
	owner := seedOwner(t, db)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		price := float64(600 + i)
		seedListing(t, db, owner.ID, func(l *domain.Listing) {
			l.Price = price
		})
	}

	repo := NewListingRepository(db)
	base := ListingFilters{SortColumn: "price", SortDesc: false, Limit: 12}

	page3 := base
	page3.Offset = 24
	items, total, err := repo.Search(ctx, page3)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	require.Len(t, items, 1)
	assert.Equal(t, 624.0, items[0].Price)

	past := base
	past.Offset = 48
	items, total, err = repo.Search(ctx, past)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, items, 0)
}

func TestSearch_FavoritesScope(t *testing.T) {
	db := openTestDB(t)
	owner := seedOwner(t, db)
	student := seedStudent(t, db)
	other := seedStudent(t, db)
	ctx := context.Background()

	liked := seedListing(t, db, owner.ID, nil)
	seedListing(t, db, owner.ID, nil)
	otherLiked := seedListing(t, db, owner.ID, nil)

	require.NoError(t, db.Create(&domain.Favorite{UserID: student.ID, ListingID: liked.ID}).Error)
	require.NoError(t, db.Create(&domain.Favorite{UserID: other.ID, ListingID: otherLiked.ID}).Error)

	repo := NewListingRepository(db)

	items, total, err := repo.Search(ctx, ListingFilters{
		FavoritesOf: student.ID,
		Status:      string(domain.ListingAvailable),
		SortColumn:  "created_at",
		Limit:       12,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, liked.ID, items[0].ID)
}

func TestUpdateStatusIf_Stale(t *testing.T) {
	db := openTestDB(t)
	owner := seedOwner(t, db)
	ctx := context.Background()

	l := seedListing(t, db, owner.ID, func(l *domain.Listing) {
		l.Status = domain.ListingOffered
	})

	repo := NewListingRepository(db)

	err := repo.UpdateStatusIf(ctx, l.ID,
		[]domain.ListingStatus{domain.ListingAvailable},
		domain.ListingUnavailable,
	)
	assert.ErrorIs(t, err, ErrStaleStatus)

	var reread domain.Listing
	require.NoError(t, db.First(&reread, l.ID).Error)
	assert.Equal(t, domain.ListingOffered, reread.Status)
}

func TestUpdateEditable_StaleWhenOffered(t *testing.T) {
	db := openTestDB(t)
	owner := seedOwner(t, db)
	ctx := context.Background()

	l := seedListing(t, db, owner.ID, func(l *domain.Listing) {
		l.Status = domain.ListingOffered
	})
	l.Title = "should not land"

	repo := NewListingRepository(db)

	assert.ErrorIs(t, repo.UpdateEditable(ctx, l), ErrStaleStatus)

	var reread domain.Listing
	require.NoError(t, db.First(&reread, l.ID).Error)
	assert.Equal(t, "Apartment near campus", reread.Title)
}

func TestDeleteIf_BlockedWhileHeld(t *testing.T) {
	db := openTestDB(t)
	owner := seedOwner(t, db)
	ctx := context.Background()

	held := seedListing(t, db, owner.ID, func(l *domain.Listing) {
		l.Status = domain.ListingRented
	})
	free := seedListing(t, db, owner.ID, nil)

	repo := NewListingRepository(db)

	assert.ErrorIs(t, repo.DeleteIf(ctx, held.ID), ErrStaleStatus)
	assert.NoError(t, repo.DeleteIf(ctx, free.ID))

	var count int64
	require.NoError(t, db.Model(&domain.Listing{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
