package booking

import "context"

type Repository interface {
	CreateExclusive(ctx context.Context, memberID, sessionID int) (*Booking, error)
	GetByID(ctx context.Context, id int) (*Booking, error)
	GetBySession(ctx context.Context, sessionID int) ([]BookingWithMember, error)
	GetByMember(ctx context.Context, memberID int) ([]BookingWithSession, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	GetSessionInfo(ctx context.Context, sessionID int) (*SessionInfo, error)
	MemberExists(ctx context.Context, memberID int) (bool, error)
	MemberHasActiveMembership(ctx context.Context, memberID int) (bool, error)
	MemberContact(ctx context.Context, memberID int) (string, string, error)
	EligibleMembers(ctx context.Context, sessionID int) ([]MemberOption, error)
}
