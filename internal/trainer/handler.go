package trainer

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
	var req CreateTrainerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	photo, _ := c.FormFile("photo")

	t, err := h.service.Create(c.Request.Context(), req, photo)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrPhoneTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, ErrInvalidDate),
			errors.Is(err, storage.ErrEmptyFile),
			errors.Is(err, storage.ErrUnsupportedType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trainer"})
		}
		return
	}

	c.JSON(http.StatusCreated, t)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trainer ID"})
		return
	}

	var req UpdateTrainerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	photo, _ := c.FormFile("photo")

	t, err := h.service.Update(c.Request.Context(), id, req, photo)
	if err != nil {
		switch {
		case errors.Is(err, ErrTrainerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Trainer not found"})
		case errors.Is(err, ErrPhoneTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update trainer"})
		}
		return
	}

	c.JSON(http.StatusOK, t)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trainer ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrTrainerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Trainer not found"})
		case errors.Is(err, ErrHasFutureSessions):
			c.JSON(http.StatusConflict, gin.H{"error": "Trainer has upcoming sessions"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trainer"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trainer deleted"})
}

func (h *Handler) List(c *gin.Context) {
	trainers, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trainers"})
		return
	}

	c.JSON(http.StatusOK, trainers)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trainer ID"})
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trainer not found"})
		return
	}

	c.JSON(http.StatusOK, t)
}
