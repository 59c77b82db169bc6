package listing

import (
	"net/http"
	"strconv"

	"campusrent/internal/domain"
	"campusrent/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, ownerOnly gin.HandlerFunc) {
	listings := rg.Group("/listings")
	{
		listings.GET("", h.Search)
		listings.GET("/:id", h.GetByID)
		listings.POST("", ownerOnly, h.Create)
		listings.PUT("/:id", ownerOnly, h.Update)
		listings.PATCH("/:id/status", ownerOnly, h.SetStatus)
		listings.DELETE("/:id", ownerOnly, h.Delete)
	}
}

func (h *Handler) Search(c *gin.Context) {
	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	res, err := h.service.Search(
		c.Request.Context(),
		q,
		c.GetInt64("user_id"),
		domain.UserRole(c.GetString("role")),
	)
	if err != nil {
		h.writeError(c, err, "Failed to search listings")
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := h.listingID(c)
	if !ok {
		return
	}

	l, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to load listing")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listing": l})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to create listing")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"listing": l})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.listingID(c)
	if !ok {
		return
	}

	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.service.Update(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to update listing")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listing": l})
}

func (h *Handler) SetStatus(c *gin.Context) {
	id, ok := h.listingID(c)
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.service.SetStatus(c.Request.Context(), id, c.GetInt64("user_id"), req.Status)
	if err != nil {
		h.writeError(c, err, "Failed to change listing status")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listing": l})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.listingID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, c.GetInt64("user_id")); err != nil {
		h.writeError(c, err, "Failed to delete listing")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) listingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid listing ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrInvalidRange:
		response.Error(c, http.StatusBadRequest, "INVALID_RANGE", "Range minimum cannot exceed maximum")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid listing parameters")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this listing")
	case ErrConflict:
		response.Error(c, http.StatusConflict, "CONFLICT", "Listing has an open rental")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
