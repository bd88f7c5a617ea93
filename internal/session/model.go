package session

import "time"

type Session struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	TrainerID   int       `db:"trainer_id" json:"trainer_id"`
	CategoryID  int       `db:"category_id" json:"category_id"`
	StartDate   time.Time `db:"start_date" json:"start_date"`
	EndDate     time.Time `db:"end_date" json:"end_date"`
	Capacity    int       `db:"capacity" json:"capacity"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// SessionWithDetails is the listing shape, joined with trainer and
// category names and the live booking count.
type SessionWithDetails struct {
	Session
	TrainerName    string `db:"trainer_name" json:"trainer_name"`
	CategoryName   string `db:"category_name" json:"category_name"`
	BookedCount    int    `db:"booked_count" json:"booked_count"`
	AvailableSlots int    `db:"-" json:"available_slots"`
}

type CreateSessionRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	TrainerID   int       `json:"trainer_id" binding:"required"`
	CategoryID  int       `json:"category_id" binding:"required"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	Capacity    int       `json:"capacity" binding:"required,gt=0"`
}

type UpdateSessionRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	TrainerID   int       `json:"trainer_id" binding:"required"`
	CategoryID  int       `json:"category_id" binding:"required"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	Capacity    int       `json:"capacity" binding:"required,gt=0"`
}
