package employee

import "time"

type Employee struct {
	ID        string
	CompanyID string
	Name      string
	Email     string
	Position  *string
	TeamID    *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
