package member

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/storage"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	photo, _ := c.FormFile("photo")

	m, err := h.service.Create(c.Request.Context(), req, photo)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrPhoneTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, ErrInvalidBirthDate),
			errors.Is(err, storage.ErrEmptyFile),
			errors.Is(err, storage.ErrUnsupportedType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create member"})
		}
		return
	}

	c.JSON(http.StatusCreated, m)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	photo, _ := c.FormFile("photo")

	m, err := h.service.Update(c.Request.Context(), id, req, photo)
	if err != nil {
		switch {
		case errors.Is(err, ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		case errors.Is(err, ErrPhoneTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
		}
		return
	}

	c.JSON(http.StatusOK, m)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		case errors.Is(err, ErrHasFutureBookings):
			c.JSON(http.StatusConflict, gin.H{"error": "Member has bookings for upcoming sessions"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete member"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member deleted"})
}

func (h *Handler) List(c *gin.Context) {
	members, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch members"})
		return
	}

	c.JSON(http.StatusOK, members)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	m, err := h.service.GetDetails(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	c.JSON(http.StatusOK, m)
}
