package plan

import "time"

type Plan struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Description  string    `db:"description" json:"description"`
	PriceCents   int64     `db:"price_cents" json:"price_cents"`
	DurationDays int       `db:"duration_days" json:"duration_days"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type CreatePlanRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	PriceCents   int64  `json:"price_cents" binding:"required,gt=0"`
	DurationDays int    `json:"duration_days" binding:"required,gt=0"`
}

type UpdatePlanRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	PriceCents   int64  `json:"price_cents" binding:"required,gt=0"`
	DurationDays int    `json:"duration_days" binding:"required,gt=0"`
}
