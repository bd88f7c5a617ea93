package membership

import "time"

type Membership struct {
	ID        int       `db:"id" json:"id"`
	MemberID  int       `db:"member_id" json:"member_id"`
	PlanID    int       `db:"plan_id" json:"plan_id"`
	StartDate time.Time `db:"start_date" json:"start_date"`
	EndDate   time.Time `db:"end_date" json:"end_date"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type MembershipWithDetails struct {
	Membership
	MemberName string `db:"member_name" json:"member_name"`
	PlanName   string `db:"plan_name" json:"plan_name"`
}

// PlanInfo is the slice of the plan row the membership flow needs to
// price out an enrollment.
type PlanInfo struct {
	ID           int    `db:"id"`
	Name         string `db:"name"`
	DurationDays int    `db:"duration_days"`
	IsActive     bool   `db:"is_active"`
}

type CreateMembershipRequest struct {
	MemberID  int    `json:"member_id" binding:"required"`
	PlanID    int    `json:"plan_id" binding:"required"`
	StartDate string `json:"start_date"`
}
