package task

import (
	"context"
	"fmt"
	"time"

	"github.com/beteamly/beteamly-backend-go/internal/domain/employee"
	"github.com/beteamly/beteamly-backend-go/internal/domain/task"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type TaskServiceImpl struct {
	taskRepo     task.TaskRepository
	employeeRepo employee.EmployeeRepository
}

func NewTaskService(
	taskRepo task.TaskRepository,
	employeeRepo employee.EmployeeRepository,
) task.TaskService {
	return &TaskServiceImpl{
		taskRepo:     taskRepo,
		employeeRepo: employeeRepo,
	}
}

// getCompanyIDFromContext extracts company_id from JWT claims
func getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

func (s *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if req.AssignedTo != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.AssignedTo, companyID); err != nil {
			return task.TaskResponse{}, err
		}
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, _ := time.Parse("2006-01-02", *req.DueDate)
		dueDate = &parsed
	}

	id, err := uuid.NewV7()
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to generate task id: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.taskRepo.Create(ctx, task.Task{
		ID:         id.String(),
		CompanyID:  companyID,
		Title:      req.Title,
		AssignedTo: req.AssignedTo,
		Status:     task.StatusPending,
		DueDate:    dueDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}

	return task.ToResponse(created), nil
}

func (s *TaskServiceImpl) Update(ctx context.Context, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	existing, err := s.taskRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.AssignedTo != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.AssignedTo, companyID); err != nil {
			return task.TaskResponse{}, err
		}
		existing.AssignedTo = req.AssignedTo
	}
	if req.Status != nil {
		existing.Status = task.Status(*req.Status)
	}
	if req.DueDate != nil {
		parsed, _ := time.Parse("2006-01-02", *req.DueDate)
		existing.DueDate = &parsed
	}
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.taskRepo.Update(ctx, existing)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to update task: %w", err)
	}

	return task.ToResponse(updated), nil
}

func (s *TaskServiceImpl) List(ctx context.Context) ([]task.TaskResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, task.ToResponse(t))
	}
	return responses, nil
}
