package employee

import (
	"github.com/beteamly/beteamly-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Position *string `json:"position,omitempty"`
	TeamID   *string `json:"team_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID       string
	Name     *string `json:"name,omitempty"`
	Position *string `json:"position,omitempty"`
	TeamID   *string `json:"team_id,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type EmployeeResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Position  *string `json:"position,omitempty"`
	TeamID    *string `json:"team_id,omitempty"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Position:  e.Position,
		TeamID:    e.TeamID,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
