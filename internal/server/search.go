package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"gymdesk/internal/logger"
)

type SearchHit struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// SearchResults groups hits by entity so the front desk can jump
// straight to the right record.
type SearchResults struct {
	Members  []SearchHit `json:"members"`
	Trainers []SearchHit `json:"trainers"`
	Sessions []SearchHit `json:"sessions"`
	Plans    []SearchHit `json:"plans"`
}

type SearchHandler struct {
	db *sqlx.DB
}

func NewSearchHandler(db *sqlx.DB) *SearchHandler {
	return &SearchHandler{db: db}
}

func (h *SearchHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q parameter required"})
		return
	}

	ctx := c.Request.Context()
	pattern := "%" + q + "%"

	results := SearchResults{
		Members:  []SearchHit{},
		Trainers: []SearchHit{},
		Sessions: []SearchHit{},
		Plans:    []SearchHit{},
	}

	if err := h.collect(ctx, &results.Members,
		`SELECT id, name FROM members WHERE name ILIKE $1 OR email ILIKE $1 ORDER BY name LIMIT 20`, pattern); err != nil {
		h.fail(c, err)
		return
	}
	if err := h.collect(ctx, &results.Trainers,
		`SELECT id, name FROM trainers WHERE name ILIKE $1 OR email ILIKE $1 ORDER BY name LIMIT 20`, pattern); err != nil {
		h.fail(c, err)
		return
	}
	if err := h.collect(ctx, &results.Sessions,
		`SELECT id, title AS name FROM sessions WHERE title ILIKE $1 ORDER BY start_date DESC LIMIT 20`, pattern); err != nil {
		h.fail(c, err)
		return
	}
	if err := h.collect(ctx, &results.Plans,
		`SELECT id, name FROM plans WHERE name ILIKE $1 ORDER BY name LIMIT 20`, pattern); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

func (h *SearchHandler) collect(ctx context.Context, dest *[]SearchHit, query, pattern string) error {
	return h.db.SelectContext(ctx, dest, query, pattern)
}

func (h *SearchHandler) fail(c *gin.Context, err error) {
	logger.Errorf("search failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
}
