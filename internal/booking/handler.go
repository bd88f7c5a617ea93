package booking

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
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Failed to cancel booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

func (h *Handler) MarkAttended(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	if err := h.service.MarkAttended(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Failed to mark attendance")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking marked as attended"})
}

func (h *Handler) ListBySession(c *gin.Context) {
	sessionID, err := strconv.Atoi(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	bookings, err := h.service.GetBySession(c.Request.Context(), sessionID)
	if err != nil {
		h.writeError(c, err, "Failed to fetch bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) ListByMember(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	bookings, err := h.service.GetByMember(c.Request.Context(), memberID)
	if err != nil {
		h.writeError(c, err, "Failed to fetch bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) ListEligibleMembers(c *gin.Context) {
	sessionID, err := strconv.Atoi(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	members, err := h.service.EligibleMembers(c.Request.Context(), sessionID)
	if err != nil {
		h.writeError(c, err, "Failed to fetch eligible members")
		return
	}

	c.JSON(http.StatusOK, members)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrMemberNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
	case errors.Is(err, ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, ErrNoActiveMembership):
		c.JSON(http.StatusForbidden, gin.H{"error": "Member has no active membership"})
	case errors.Is(err, ErrSessionFull),
		errors.Is(err, ErrAlreadyBooked),
		errors.Is(err, ErrSessionStarted),
		errors.Is(err, ErrAlreadyCancelled),
		errors.Is(err, ErrBookingCancelled):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Errorf("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
