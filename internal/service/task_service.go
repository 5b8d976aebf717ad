package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskdeck/internal/errors"
	"taskdeck/internal/model"
	"taskdeck/internal/repository"
)

// TaskCreate carries the fields of a task creation request. The owner is
// never taken from here; it is forced to the authenticated caller.
type TaskCreate struct {
	Title       string
	Description string
	Status      model.TaskStatus
	Priority    model.TaskPriority
	DueDate     *time.Time
}

// TaskUpdate carries the fields of a partial task update. Nil pointers mean
// "leave unchanged", so an explicit value is never confused with an absent
// field.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *model.TaskStatus
	Priority    *model.TaskPriority
	DueDate     *time.Time
}

// TaskService handles task lifecycle operations and enforces ownership.
type TaskService interface {
	ListTasks(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
	CreateTask(ctx context.Context, userID uuid.UUID, create TaskCreate) (*model.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, update TaskUpdate) (*model.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
}

type taskService struct {
	repo repository.TaskRepository
}

// NewTaskService creates a new task service.
func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

// ListTasks returns all tasks owned by userID.
func (s *taskService) ListTasks(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	tasks, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask creates a task owned by userID. Status and priority default to
// todo/medium when absent and are checked against the enums when supplied.
func (s *taskService) CreateTask(ctx context.Context, userID uuid.UUID, create TaskCreate) (*model.Task, error) {
	if create.Title == "" {
		return nil, errors.ErrEmptyTitle
	}
	if create.Description == "" {
		return nil, errors.ErrEmptyDescription
	}
	if create.Status == "" {
		create.Status = model.TaskStatusTodo
	}
	if create.Priority == "" {
		create.Priority = model.TaskPriorityMedium
	}
	if !create.Status.Valid() {
		return nil, errors.ErrInvalidStatus
	}
	if !create.Priority.Valid() {
		return nil, errors.ErrInvalidPriority
	}

	task := &model.Task{
		UserID:      userID,
		Title:       create.Title,
		Description: create.Description,
		Status:      create.Status,
		Priority:    create.Priority,
		DueDate:     create.DueDate,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// UpdateTask applies a partial update to a task owned by userID. Fields not
// supplied retain their prior values.
func (s *taskService) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, update TaskUpdate) (*model.Task, error) {
	task, err := s.findOwnedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	// A supplied-but-empty title or description would break the non-empty
	// invariant; absent fields stay nil and are fine.
	if update.Title != nil && *update.Title == "" {
		return nil, errors.ErrEmptyTitle
	}
	if update.Description != nil && *update.Description == "" {
		return nil, errors.ErrEmptyDescription
	}
	if update.Status != nil && !update.Status.Valid() {
		return nil, errors.ErrInvalidStatus
	}
	if update.Priority != nil && !update.Priority.Valid() {
		return nil, errors.ErrInvalidPriority
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Status != nil {
		task.Status = *update.Status
	}
	if update.Priority != nil {
		task.Priority = *update.Priority
	}
	if update.DueDate != nil {
		task.DueDate = update.DueDate
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// DeleteTask permanently removes a task owned by userID.
func (s *taskService) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	task, err := s.findOwnedTask(ctx, userID, taskID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, task.ID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// findOwnedTask loads a task and runs the ownership predicate. Existence is
// checked before ownership so a missing task is 404, not 401.
func (s *taskService) findOwnedTask(ctx context.Context, userID, taskID uuid.UUID) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}

	if !task.OwnedBy(userID) {
		return nil, errors.ErrNotTaskOwner
	}
	return task, nil
}
