package membership

import "context"

type Repository interface {
	CreateExclusive(ctx context.Context, m *Membership) (*Membership, error)
	GetByID(ctx context.Context, id int) (*Membership, error)
	GetByMember(ctx context.Context, memberID int) ([]MembershipWithDetails, error)
	GetAllActive(ctx context.Context) ([]MembershipWithDetails, error)
	Deactivate(ctx context.Context, id int) error
	GetPlanInfo(ctx context.Context, planID int) (*PlanInfo, error)
	MemberExists(ctx context.Context, memberID int) (bool, error)
	MemberEmail(ctx context.Context, memberID int) (string, string, error)
}
