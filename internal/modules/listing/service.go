package listing

import (
	"context"
	"errors"
	"math"

	"campusrent/internal/domain"
	"campusrent/internal/pkg/images"
	"campusrent/internal/pkg/validator"
	"campusrent/internal/repository"

	"gorm.io/gorm"
)

// PageSize is fixed: the clients always request pages of 12.
const PageSize = 12

// sortColumns whitelists the sortable keys and maps them to columns.
var sortColumns = map[string]string{
	"createdAt":           "created_at",
	"price":               "price",
	"area":                "area",
	"bedrooms":            "bedrooms",
	"bathrooms":           "bathrooms",
	"distanceCampusMain":  "distance_campus_main",
	"distanceCampusNorth": "distance_campus_north",
}

type Service struct {
	listings ListingRepository
}

func NewService(listings ListingRepository) *Service {
	return &Service{listings: listings}
}

/* ---------- QUERY ENGINE ---------- */

// Search builds the filtered, sorted, paginated view for one of the three
// audiences. Range validation happens before any read; a page past the end
// returns an empty item list with the real page count.
func (s *Service) Search(ctx context.Context, q SearchQuery, callerID int64, callerRole domain.UserRole) (*SearchResult, error) {
	if err := validateRange(q.PriceMin, q.PriceMax); err != nil {
		return nil, err
	}
	if err := validateRange(q.AreaMin, q.AreaMax); err != nil {
		return nil, err
	}

	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	column, ok := sortColumns[sortBy]
	if !ok {
		return nil, ErrValidation
	}

	desc := true
	switch q.Order {
	case "", "desc":
	case "asc":
		desc = false
	default:
		return nil, ErrValidation
	}

	page := q.Page
	if page < 1 {
		page = 1
	}

	f := repository.ListingFilters{
		Search:       q.Search,
		MinBedrooms:  q.MinBedrooms,
		MinBathrooms: q.MinBathrooms,
		Furnished:    q.Furnished,
		PetsAllowed:  q.PetsAllowed,
		Garage:       q.Garage,
		PriceMin:     q.PriceMin,
		PriceMax:     q.PriceMax,
		AreaMin:      q.AreaMin,
		AreaMax:      q.AreaMax,
		SortColumn:   column,
		SortDesc:     desc,
		Limit:        PageSize,
		Offset:       (page - 1) * PageSize,
	}

	if q.Type != "" {
		t, err := domain.ParseListingType(q.Type)
		if err != nil {
			return nil, ErrValidation
		}
		f.Type = string(t)
	}

	view := q.View
	if view == "" {
		view = ViewPublic
	}
	switch view {
	case ViewPublic:
		f.Status = string(domain.ListingAvailable)
	case ViewFavorites:
		f.FavoritesOf = callerID
		f.Status = string(domain.ListingAvailable)
	case ViewOwner:
		if callerRole != domain.RoleOwner {
			return nil, ErrForbidden
		}
		f.OwnerID = callerID
		if q.Status != "" {
			switch domain.ListingStatus(q.Status) {
			case domain.ListingAvailable, domain.ListingUnavailable,
				domain.ListingOffered, domain.ListingRented:
				f.Status = q.Status
			default:
				return nil, ErrValidation
			}
		}
	default:
		return nil, ErrValidation
	}

	items, total, err := s.listings.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Listing{}
	}

	return &SearchResult{
		Items:      items,
		TotalPages: int(math.Ceil(float64(total) / float64(PageSize))),
	}, nil
}

func validateRange(min, max *float64) error {
	if (min != nil && *min < 0) || (max != nil && *max < 0) {
		return ErrInvalidRange
	}
	if min != nil && max != nil && *min > *max {
		return ErrInvalidRange
	}
	return nil
}

/* ---------- LISTING CRUD ---------- */

func (s *Service) Create(ctx context.Context, ownerID int64, req CreateListingRequest) (*domain.Listing, error) {
	t, err := domain.ParseListingType(req.Type)
	if err != nil {
		return nil, ErrValidation
	}

	refs, err := images.References(req.Images)
	if err != nil {
		return nil, ErrValidation
	}

	l := &domain.Listing{
		OwnerID:             ownerID,
		Title:               req.Title,
		Description:         req.Description,
		Type:                t,
		Price:               req.Price,
		Area:                req.Area,
		Bedrooms:            req.Bedrooms,
		Bathrooms:           req.Bathrooms,
		Furnished:           req.Furnished,
		PetsAllowed:         req.PetsAllowed,
		Garage:              req.Garage,
		Address:             req.Address,
		Latitude:            req.Latitude,
		Longitude:           req.Longitude,
		DistanceCampusMain:  req.DistanceCampusMain,
		DistanceCampusNorth: req.DistanceCampusNorth,
		Images:              refs,
		Status:              domain.ListingAvailable,
	}

	if validator.Validate(l) != nil {
		return nil, ErrValidation
	}

	if err := s.listings.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

// Update edits descriptive fields. All edits are frozen while a rental
// negotiation or an active rental holds the listing.
func (s *Service) Update(ctx context.Context, listingID, ownerID int64, req UpdateListingRequest) (*domain.Listing, error) {
	l, err := s.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if l.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	if !l.Editable() {
		return nil, ErrConflict
	}

	if req.Title != nil {
		l.Title = *req.Title
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	if req.Type != nil {
		t, err := domain.ParseListingType(*req.Type)
		if err != nil {
			return nil, ErrValidation
		}
		l.Type = t
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, ErrValidation
		}
		l.Price = *req.Price
	}
	if req.Area != nil {
		if *req.Area <= 0 {
			return nil, ErrValidation
		}
		l.Area = *req.Area
	}
	if req.Bedrooms != nil {
		if *req.Bedrooms < 1 {
			return nil, ErrValidation
		}
		l.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		if *req.Bathrooms < 1 {
			return nil, ErrValidation
		}
		l.Bathrooms = *req.Bathrooms
	}
	if req.Furnished != nil {
		l.Furnished = *req.Furnished
	}
	if req.PetsAllowed != nil {
		l.PetsAllowed = *req.PetsAllowed
	}
	if req.Garage != nil {
		l.Garage = *req.Garage
	}
	if req.Address != nil {
		l.Address = *req.Address
	}
	if req.Latitude != nil {
		l.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		l.Longitude = *req.Longitude
	}
	if req.DistanceCampusMain != nil {
		l.DistanceCampusMain = *req.DistanceCampusMain
	}
	if req.DistanceCampusNorth != nil {
		l.DistanceCampusNorth = *req.DistanceCampusNorth
	}

	if req.KeptImages != nil || req.NewImages != nil {
		newRefs, err := images.References(req.NewImages)
		if err != nil {
			return nil, ErrValidation
		}
		merged, err := images.Merge(req.KeptImages, newRefs)
		if err != nil {
			return nil, ErrValidation
		}
		l.Images = merged
	}

	if validator.Validate(l) != nil {
		return nil, ErrValidation
	}

	if err := s.listings.UpdateEditable(ctx, l); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return l, nil
}

// SetStatus toggles available/unavailable. Offered and rented listings are
// owned by the lifecycle coordinator and cannot be toggled.
func (s *Service) SetStatus(ctx context.Context, listingID, ownerID int64, status string) (*domain.Listing, error) {
	target := domain.ListingStatus(status)
	if target != domain.ListingAvailable && target != domain.ListingUnavailable {
		return nil, ErrValidation
	}

	l, err := s.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if l.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	if !l.Editable() {
		return nil, ErrConflict
	}

	err = s.listings.UpdateStatusIf(ctx, l.ID,
		[]domain.ListingStatus{domain.ListingAvailable, domain.ListingUnavailable},
		target,
	)
	if err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, ErrConflict
		}
		return nil, err
	}

	l.Status = target
	return l, nil
}

// Delete removes a listing; blocked whenever a rental holds it.
func (s *Service) Delete(ctx context.Context, listingID, ownerID int64) error {
	l, err := s.GetByID(ctx, listingID)
	if err != nil {
		return err
	}
	if l.OwnerID != ownerID {
		return ErrForbidden
	}
	if !l.Editable() {
		return ErrConflict
	}

	if err := s.listings.DeleteIf(ctx, l.ID); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return ErrConflict
		}
		return err
	}
	return nil
}
