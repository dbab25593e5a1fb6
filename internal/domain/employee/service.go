package employee

import (
	"context"

	"github.com/beteamly/beteamly-backend-go/internal/domain/team"
)

// EmployeeService covers the employee roster and, because teams only exist
// as an attribute of that roster, team management as well.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)

	CreateTeam(ctx context.Context, req team.CreateTeamRequest) (team.TeamResponse, error)
	ListTeams(ctx context.Context) ([]team.TeamResponse, error)
}
