package attendance

import "context"

type Repository interface {
	CheckIn(ctx context.Context, memberID int) (*Attendance, error)
	CheckOut(ctx context.Context, id int) (*Attendance, error)
	GetOpenByMember(ctx context.Context, memberID int) (*Attendance, error)
	GetByMember(ctx context.Context, memberID int) ([]Attendance, error)
	GetOpen(ctx context.Context) ([]AttendanceWithMember, error)
	MemberExists(ctx context.Context, memberID int) (bool, error)
	MemberHasActiveMembership(ctx context.Context, memberID int) (bool, error)
}
