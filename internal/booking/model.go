package booking

import "time"

const (
	StatusBooked    = "booked"
	StatusCancelled = "cancelled"
	StatusAttended  = "attended"
)

type Booking struct {
	ID        int       `db:"id" json:"id"`
	MemberID  int       `db:"member_id" json:"member_id"`
	SessionID int       `db:"session_id" json:"session_id"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// BookingWithMember is the session roster row.
type BookingWithMember struct {
	Booking
	MemberName  string `db:"member_name" json:"member_name"`
	MemberEmail string `db:"member_email" json:"member_email"`
}

// BookingWithSession is the member schedule row.
type BookingWithSession struct {
	Booking
	SessionTitle string    `db:"session_title" json:"session_title"`
	StartDate    time.Time `db:"start_date" json:"start_date"`
	EndDate      time.Time `db:"end_date" json:"end_date"`
	TrainerName  string    `db:"trainer_name" json:"trainer_name"`
}

// SessionInfo carries the fields the booking flow reads off the
// locked session row.
type SessionInfo struct {
	ID        int       `db:"id"`
	Title     string    `db:"title"`
	Capacity  int       `db:"capacity"`
	StartDate time.Time `db:"start_date"`
}

// MemberOption feeds the booking form dropdown: members with a live
// membership who are not already booked into the session.
type MemberOption struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type CreateBookingRequest struct {
	MemberID  int `json:"member_id" binding:"required"`
	SessionID int `json:"session_id" binding:"required"`
}
