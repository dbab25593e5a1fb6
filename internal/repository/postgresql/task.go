package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/beteamly/beteamly-backend-go/internal/domain/task"
	"github.com/beteamly/beteamly-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type taskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepository{db: db}
}

// Create implements task.TaskRepository.
func (r *taskRepository) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (
			id, company_id, title, assigned_to, status, due_date
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.ID,
		t.CompanyID,
		t.Title,
		t.AssignedTo,
		t.Status,
		t.DueDate,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

// Update implements task.TaskRepository.
func (r *taskRepository) Update(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET title = $1, assigned_to = $2, status = $3, due_date = $4, updated_at = NOW()
		WHERE id = $5 AND company_id = $6
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		t.Title,
		t.AssignedTo,
		t.Status,
		t.DueDate,
		t.ID,
		t.CompanyID,
	).Scan(&t.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	return t, nil
}

// GetByID implements task.TaskRepository.
func (r *taskRepository) GetByID(ctx context.Context, id string, companyID string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, title, assigned_to, status, due_date,
			   created_at, updated_at
		FROM tasks
		WHERE id = $1 AND company_id = $2
	`

	var t task.Task
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&t.ID, &t.CompanyID, &t.Title, &t.AssignedTo, &t.Status, &t.DueDate,
		&t.CreatedAt, &t.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

// ListByCompany implements task.TaskRepository.
func (r *taskRepository) ListByCompany(ctx context.Context, companyID string) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, title, assigned_to, status, due_date,
			   created_at, updated_at
		FROM tasks
		WHERE company_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		err := rows.Scan(
			&t.ID, &t.CompanyID, &t.Title, &t.AssignedTo, &t.Status, &t.DueDate,
			&t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}
