package rental

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
	rentals := rg.Group("/rentals")
	{
		rentals.GET("", h.Overview)
		rentals.POST("/offer", ownerOnly, h.CreateOffer)
		rentals.POST("/:id/confirm", h.Confirm)
		rentals.POST("/:id/cancel", h.Cancel)
		rentals.POST("/:id/finalize", ownerOnly, h.Finalize)
	}
}

func (h *Handler) CreateOffer(c *gin.Context) {
	var req CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.CreateOffer(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to create offer")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"rental": r})
}

func (h *Handler) Confirm(c *gin.Context) {
	id, ok := h.rentalID(c)
	if !ok {
		return
	}

	r, err := h.service.Confirm(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err, "Failed to confirm rental")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rental": r})
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := h.rentalID(c)
	if !ok {
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id, c.GetInt64("user_id")); err != nil {
		h.writeError(c, err, "Failed to cancel rental")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cancelled": true})
}

func (h *Handler) Finalize(c *gin.Context) {
	id, ok := h.rentalID(c)
	if !ok {
		return
	}

	if err := h.service.Finalize(c.Request.Context(), id, c.GetInt64("user_id")); err != nil {
		h.writeError(c, err, "Failed to finalize rental")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"finalized": true})
}

func (h *Handler) Overview(c *gin.Context) {
	role := domain.UserRole(c.GetString("role"))

	ov, err := h.service.Overview(c.Request.Context(), c.GetInt64("user_id"), role)
	if err != nil {
		h.writeError(c, err, "Failed to load rentals")
		return
	}

	response.Success(c, http.StatusOK, ov)
}

func (h *Handler) rentalID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid rental ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid offer parameters")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Rental or listing not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not allowed to perform this action")
	case ErrConflict:
		response.Error(c, http.StatusConflict, "CONFLICT", "The rental or listing is not in a compatible state")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
