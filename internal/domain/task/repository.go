package task

import "context"

// TaskRepository defines data access methods for tasks.
// All methods include companyID to prevent cross-company data access.
type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	Update(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id string, companyID string) (Task, error)
	ListByCompany(ctx context.Context, companyID string) ([]Task, error)
}
