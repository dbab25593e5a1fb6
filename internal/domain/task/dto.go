package task

import (
	"github.com/beteamly/beteamly-backend-go/internal/pkg/validator"
)

type CreateTaskRequest struct {
	Title      string  `json:"title"`
	AssignedTo *string `json:"assigned_to,omitempty"`
	DueDate    *string `json:"due_date,omitempty"` // YYYY-MM-DD
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTaskRequest struct {
	ID         string
	Title      *string `json:"title,omitempty"`
	AssignedTo *string `json:"assigned_to,omitempty"`
	Status     *string `json:"status,omitempty"`
	DueDate    *string `json:"due_date,omitempty"`
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusPending), string(StatusInProgress), string(StatusCompleted),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be pending, in_progress or completed"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TaskResponse struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	AssignedTo *string `json:"assigned_to,omitempty"`
	Status     Status  `json:"status"`
	DueDate    *string `json:"due_date,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

func ToResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:         t.ID,
		Title:      t.Title,
		AssignedTo: t.AssignedTo,
		Status:     t.Status,
		CreatedAt:  t.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  t.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if t.DueDate != nil {
		due := t.DueDate.Format("2006-01-02")
		resp.DueDate = &due
	}
	return resp
}
