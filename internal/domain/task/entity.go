package task

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

type Task struct {
	ID         string
	CompanyID  string
	Title      string
	AssignedTo *string
	Status     Status
	DueDate    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CompletedLate reports whether the task finished after its deadline. A task
// with no due date is never late.
func (t Task) CompletedLate() bool {
	if t.Status != StatusCompleted || t.DueDate == nil {
		return false
	}
	return t.UpdatedAt.After(*t.DueDate)
}
