package plan

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
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		logger.Errorf("failed to create plan: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plan"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("planID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID"})
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err, "Failed to update plan")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) ToggleActive(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("planID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID"})
		return
	}

	updated, err := h.service.ToggleActive(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to toggle plan")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) List(c *gin.Context) {
	var (
		plans []Plan
		err   error
	)
	if c.Query("active") == "true" {
		plans, err = h.service.GetActive(c.Request.Context())
	} else {
		plans, err = h.service.GetAll(c.Request.Context())
	}
	if err != nil {
		logger.Errorf("failed to fetch plans: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plans"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("planID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID"})
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to fetch plan")
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrPlanNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
	case errors.Is(err, ErrPlanHasMemberships):
		c.JSON(http.StatusConflict, gin.H{"error": "Plan has active memberships"})
	default:
		logger.Errorf("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
