package membership

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/logger"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err, "Failed to create membership")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) Deactivate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("membershipID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid membership ID"})
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Failed to deactivate membership")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Membership deactivated"})
}

func (h *Handler) ListByMember(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	memberships, err := h.service.GetByMember(c.Request.Context(), memberID)
	if err != nil {
		h.writeError(c, err, "Failed to fetch memberships")
		return
	}

	c.JSON(http.StatusOK, memberships)
}

func (h *Handler) ListActive(c *gin.Context) {
	memberships, err := h.service.GetAllActive(c.Request.Context())
	if err != nil {
		logger.Errorf("failed to fetch active memberships: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch memberships"})
		return
	}

	c.JSON(http.StatusOK, memberships)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrMemberNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
	case errors.Is(err, ErrPlanNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
	case errors.Is(err, ErrMembershipNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Membership not found"})
	case errors.Is(err, ErrPlanInactive), errors.Is(err, ErrInvalidStartDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrAlreadyEnrolled), errors.Is(err, ErrAlreadyInactive):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Errorf("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
