package attendance

import "time"

type Attendance struct {
	ID           int        `db:"id" json:"id"`
	MemberID     int        `db:"member_id" json:"member_id"`
	CheckInTime  time.Time  `db:"check_in_time" json:"check_in_time"`
	CheckOutTime *time.Time `db:"check_out_time" json:"check_out_time,omitempty"`
}

type AttendanceWithMember struct {
	Attendance
	MemberName string `db:"member_name" json:"member_name"`
}

type CheckInRequest struct {
	MemberID int `json:"member_id" binding:"required"`
}
