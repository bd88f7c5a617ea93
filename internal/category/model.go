package category

import "time"

type Category struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	IconURL   *string   `db:"icon_url" json:"icon_url,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateCategoryRequest struct {
	Name    string  `json:"name" binding:"required"`
	IconURL *string `json:"icon_url"`
}
