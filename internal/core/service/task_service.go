package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sun-min-kim/TaskManagementAPI/internal/core/domain"
	"github.com/sun-min-kim/TaskManagementAPI/internal/core/ports"
)

const (
	maxTitleLen       = 100
	maxDescriptionLen = 255
)

// TaskService implements ownership-scoped task CRUD. Validation happens
// entirely before the repository is touched, and each persisted mutation is
// a single atomic write.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	if err := validateTaskFields(input.Title, input.Description, input.DueDate); err != nil {
		return nil, err
	}

	status := domain.StatusPending
	if input.Status != "" {
		status = domain.TaskStatus(input.Status)
		if !status.IsValid() {
			return nil, domain.ErrInvalidStatus
		}
	}

	now := time.Now().UTC()
	task := &domain.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      status,
		OwnerID:     input.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		s.logger.Error().Err(err).Str("owner_id", input.OwnerID).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Str("task_id", task.ID).Str("owner_id", task.OwnerID).Msg("task created")
	return task, nil
}

func (s *TaskService) List(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	tasks, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		// An owner with no tasks gets an empty list, never an error.
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

// Get returns the task only when it exists and belongs to ownerID. A task
// owned by someone else yields the same ErrTaskNotFound as a missing one.
func (s *TaskService) Get(ctx context.Context, ownerID, taskID string) (*domain.Task, error) {
	return s.repo.FindByID(ctx, taskID, ownerID)
}

func (s *TaskService) Update(ctx context.Context, input ports.UpdateTaskInput) (*domain.Task, error) {
	if err := validateTaskFields(input.Title, input.Description, input.DueDate); err != nil {
		return nil, err
	}

	current, err := s.repo.FindByID(ctx, input.TaskID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	status := current.Status
	if input.Status != "" {
		status = domain.TaskStatus(input.Status)
		if !status.IsValid() {
			return nil, domain.ErrInvalidStatus
		}
	}

	updated := &domain.Task{
		ID:          current.ID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      status,
		OwnerID:     current.OwnerID,
		CreatedAt:   current.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		if err != domain.ErrTaskNotFound {
			s.logger.Error().Err(err).Str("task_id", input.TaskID).Msg("failed to update task")
		}
		return nil, err
	}

	s.logger.Info().Str("task_id", updated.ID).Str("owner_id", updated.OwnerID).Msg("task updated")
	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	if err := s.repo.Delete(ctx, taskID, ownerID); err != nil {
		if err != domain.ErrTaskNotFound {
			s.logger.Error().Err(err).Str("task_id", taskID).Msg("failed to delete task")
		}
		return err
	}

	s.logger.Info().Str("task_id", taskID).Str("owner_id", ownerID).Msg("task deleted")
	return nil
}

func validateTaskFields(title, description string, dueDate time.Time) error {
	if strings.TrimSpace(title) == "" || len(title) > maxTitleLen {
		return domain.ErrInvalidTask
	}
	if len(description) > maxDescriptionLen {
		return domain.ErrInvalidTask
	}
	if dueDate.IsZero() {
		return domain.ErrInvalidTask
	}
	return nil
}
