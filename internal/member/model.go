package member

import "time"

type Member struct {
	ID             int       `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Email          string    `db:"email" json:"email"`
	Phone          string    `db:"phone" json:"phone"`
	DateOfBirth    time.Time `db:"date_of_birth" json:"date_of_birth"`
	Gender         string    `db:"gender" json:"gender"`
	Street         string    `db:"street" json:"street"`
	City           string    `db:"city" json:"city"`
	BuildingNumber string    `db:"building_number" json:"building_number"`
	Photo          string    `db:"photo" json:"photo"`
	HeightCm       *float64  `db:"height_cm" json:"height_cm,omitempty"`
	WeightKg       *float64  `db:"weight_kg" json:"weight_kg,omitempty"`
	BloodType      *string   `db:"blood_type" json:"blood_type,omitempty"`
	HealthNote     *string   `db:"health_note" json:"health_note,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// MemberWithMembership decorates a member with their current membership, if any.
type MemberWithMembership struct {
	Member
	PlanName          *string    `db:"plan_name" json:"plan_name,omitempty"`
	MembershipEndDate *time.Time `db:"membership_end_date" json:"membership_end_date,omitempty"`
}

type CreateMemberRequest struct {
	Name           string   `form:"name" json:"name" binding:"required"`
	Email          string   `form:"email" json:"email" binding:"required,email"`
	Phone          string   `form:"phone" json:"phone" binding:"required"`
	DateOfBirth    string   `form:"date_of_birth" json:"date_of_birth" binding:"required"`
	Gender         string   `form:"gender" json:"gender" binding:"required,oneof=male female"`
	Street         string   `form:"street" json:"street"`
	City           string   `form:"city" json:"city"`
	BuildingNumber string   `form:"building_number" json:"building_number"`
	HeightCm       *float64 `form:"height_cm" json:"height_cm"`
	WeightKg       *float64 `form:"weight_kg" json:"weight_kg"`
	BloodType      *string  `form:"blood_type" json:"blood_type"`
	HealthNote     *string  `form:"health_note" json:"health_note"`
}

type UpdateMemberRequest struct {
	Name           string   `form:"name" json:"name" binding:"required"`
	Phone          string   `form:"phone" json:"phone" binding:"required"`
	Street         string   `form:"street" json:"street"`
	City           string   `form:"city" json:"city"`
	BuildingNumber string   `form:"building_number" json:"building_number"`
	HeightCm       *float64 `form:"height_cm" json:"height_cm"`
	WeightKg       *float64 `form:"weight_kg" json:"weight_kg"`
	BloodType      *string  `form:"blood_type" json:"blood_type"`
	HealthNote     *string  `form:"health_note" json:"health_note"`
}
