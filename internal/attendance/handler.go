package attendance

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

func (h *Handler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	visit, err := h.service.CheckIn(c.Request.Context(), req.MemberID)
	if err != nil {
		h.writeError(c, err, "Failed to check in")
		return
	}

	c.JSON(http.StatusCreated, visit)
}

func (h *Handler) CheckOut(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	visit, err := h.service.CheckOut(c.Request.Context(), req.MemberID)
	if err != nil {
		h.writeError(c, err, "Failed to check out")
		return
	}

	c.JSON(http.StatusOK, visit)
}

func (h *Handler) ListByMember(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	visits, err := h.service.GetByMember(c.Request.Context(), memberID)
	if err != nil {
		h.writeError(c, err, "Failed to fetch attendance")
		return
	}

	c.JSON(http.StatusOK, visits)
}

func (h *Handler) ListOpen(c *gin.Context) {
	visits, err := h.service.GetOpen(c.Request.Context())
	if err != nil {
		logger.Errorf("failed to fetch open check-ins: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attendance"})
		return
	}

	c.JSON(http.StatusOK, visits)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrMemberNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
	case errors.Is(err, ErrNoActiveMembership):
		c.JSON(http.StatusForbidden, gin.H{"error": "Member has no active membership"})
	case errors.Is(err, ErrAlreadyCheckedIn), errors.Is(err, ErrNotCheckedIn):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Errorf("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
