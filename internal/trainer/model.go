package trainer

import "time"

type Trainer struct {
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
	Speciality     string    `db:"speciality" json:"speciality"`
	BasicSalary    int64     `db:"basic_salary_cents" json:"basic_salary_cents"`
	HireDate       time.Time `db:"hire_date" json:"hire_date"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

type CreateTrainerRequest struct {
	Name           string `form:"name" json:"name" binding:"required"`
	Email          string `form:"email" json:"email" binding:"required,email"`
	Phone          string `form:"phone" json:"phone" binding:"required"`
	DateOfBirth    string `form:"date_of_birth" json:"date_of_birth" binding:"required"`
	Gender         string `form:"gender" json:"gender" binding:"required,oneof=male female"`
	Street         string `form:"street" json:"street"`
	City           string `form:"city" json:"city"`
	BuildingNumber string `form:"building_number" json:"building_number"`
	Speciality     string `form:"speciality" json:"speciality" binding:"required"`
	BasicSalary    int64  `form:"basic_salary_cents" json:"basic_salary_cents" binding:"required,gt=0"`
	HireDate       string `form:"hire_date" json:"hire_date" binding:"required"`
}

type UpdateTrainerRequest struct {
	Name           string `form:"name" json:"name" binding:"required"`
	Phone          string `form:"phone" json:"phone" binding:"required"`
	Street         string `form:"street" json:"street"`
	City           string `form:"city" json:"city"`
	BuildingNumber string `form:"building_number" json:"building_number"`
	Speciality     string `form:"speciality" json:"speciality" binding:"required"`
	BasicSalary    int64  `form:"basic_salary_cents" json:"basic_salary_cents" binding:"required,gt=0"`
}
