package favorite

import (
	"net/http"
	"strconv"

	"campusrent/internal/domain"
	"campusrent/internal/modules/listing"
	"campusrent/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  *Service
	listings *listing.Service
}

func NewHandler(service *Service, listings *listing.Service) *Handler {
	return &Handler{
		service:  service,
		listings: listings,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	{
		favorites.GET("", h.List)
		favorites.POST("/:listingId", h.Toggle)
		favorites.GET("/:listingId/check", h.Check)
	}
}

func (h *Handler) Toggle(c *gin.Context) {
	listingID, ok := h.listingID(c)
	if !ok {
		return
	}

	member, err := h.service.Toggle(c.Request.Context(), c.GetInt64("user_id"), listingID)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to toggle favorite")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"favorited": member})
}

// List serves the favorites view of the query engine: the caller's
// bookmarked listings with the full browse filters available.
func (h *Handler) List(c *gin.Context) {
	var q listing.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}
	q.View = listing.ViewFavorites

	res, err := h.listings.Search(
		c.Request.Context(),
		q,
		c.GetInt64("user_id"),
		domain.UserRole(c.GetString("role")),
	)
	if err != nil {
		switch err {
		case listing.ErrInvalidRange:
			response.Error(c, http.StatusBadRequest, "INVALID_RANGE", "Range minimum cannot exceed maximum")
		case listing.ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load favorites")
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Check(c *gin.Context) {
	listingID, ok := h.listingID(c)
	if !ok {
		return
	}

	member, err := h.service.IsFavorite(c.Request.Context(), c.GetInt64("user_id"), listingID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check favorite")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"favorited": member})
}

func (h *Handler) listingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("listingId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid listing ID")
		return 0, false
	}
	return id, true
}
