package team

import "context"

// TeamRepository defines data access methods for teams.
type TeamRepository interface {
	Create(ctx context.Context, t Team) (Team, error)
	GetByID(ctx context.Context, id string, companyID string) (Team, error)
	ListByCompany(ctx context.Context, companyID string) ([]Team, error)
	NameExists(ctx context.Context, name string, companyID string) (bool, error)
}
