package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"gymdesk/internal/logger"
)

type Handler struct {
	repo *Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{repo: NewRepository(db)}
}

func (h *Handler) Dashboard(c *gin.Context) {
	dashboard, err := h.repo.GetDashboard(c.Request.Context())
	if err != nil {
		logger.Errorf("failed to build dashboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
