package favorite

import (
	"context"
	"testing"

	"campusrent/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Exists(ctx context.Context, userID, listingID int64) (bool, error) {
	args := m.Called(ctx, userID, listingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) Add(ctx context.Context, userID, listingID int64) error {
	args := m.Called(ctx, userID, listingID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, userID, listingID int64) (bool, error) {
	args := m.Called(ctx, userID, listingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) Count(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockListingReader struct {
	mock.Mock
}

func (m *MockListingReader) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func newTestService() (*Service, *MockFavoriteRepository, *MockListingReader) {
	favorites := new(MockFavoriteRepository)
	listings := new(MockListingReader)
	return NewService(favorites, listings), favorites, listings
}

func TestToggle_AddsWhenAbsent(t *testing.T) {
	svc, favorites, listings := newTestService()

	listings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Listing{ID: 10}, nil)
	favorites.On("Exists", mock.Anything, int64(2), int64(10)).Return(false, nil)
	favorites.On("Add", mock.Anything, int64(2), int64(10)).Return(nil)

	on, err := svc.Toggle(context.Background(), 2, 10)

	assert.NoError(t, err)
	assert.True(t, on)
}

func TestToggle_RemovesWhenPresent(t *testing.T) {
	svc, favorites, listings := newTestService()

	listings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Listing{ID: 10}, nil)
	favorites.On("Exists", mock.Anything, int64(2), int64(10)).Return(true, nil)
	favorites.On("Remove", mock.Anything, int64(2), int64(10)).Return(true, nil)

	on, err := svc.Toggle(context.Background(), 2, 10)

	assert.NoError(t, err)
	assert.False(t, on)
}

func TestToggle_ListingGone(t *testing.T) {
	svc, favorites, listings := newTestService()

	listings.On("GetByID", mock.Anything, int64(10)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Toggle(context.Background(), 2, 10)

	assert.ErrorIs(t, err, ErrNotFound)
	favorites.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
}

// Two adds racing: the loser hits the unique index but the membership is
// still on, so the toggle reports true instead of an error.
func TestToggle_DuplicateInsertRace(t *testing.T) {
	svc, favorites, listings := newTestService()

	listings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Listing{ID: 10}, nil)
	favorites.On("Exists", mock.Anything, int64(2), int64(10)).Return(false, nil)
	favorites.On("Add", mock.Anything, int64(2), int64(10)).Return(&pgconn.PgError{Code: "23505"})

	on, err := svc.Toggle(context.Background(), 2, 10)

	assert.NoError(t, err)
	assert.True(t, on)
}

func TestToggle_DuplicateInsertRaceSQLite(t *testing.T) {
	svc, favorites, listings := newTestService()

	listings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Listing{ID: 10}, nil)
	favorites.On("Exists", mock.Anything, int64(2), int64(10)).Return(false, nil)
	favorites.On("Add", mock.Anything, int64(2), int64(10)).Return(gorm.ErrDuplicatedKey)

	on, err := svc.Toggle(context.Background(), 2, 10)

	assert.NoError(t, err)
	assert.True(t, on)
}

// A remove/remove race: the row was already gone, membership is off.
func TestToggle_RemoveAlreadyGone(t *testing.T) {
	svc, favorites, listings := newTestService()

	listings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Listing{ID: 10}, nil)
	favorites.On("Exists", mock.Anything, int64(2), int64(10)).Return(true, nil)
	favorites.On("Remove", mock.Anything, int64(2), int64(10)).Return(false, nil)

	on, err := svc.Toggle(context.Background(), 2, 10)

	assert.NoError(t, err)
	assert.False(t, on)
}
