package ports

import (
	"context"
	"time"

	"github.com/sun-min-kim/TaskManagementAPI/internal/core/domain"
)

// CreateTaskInput carries all data needed to create a new task. OwnerID is
// the resolved identity of the requesting user, never client-supplied.
type CreateTaskInput struct {
	OwnerID     string
	Title       string
	Description string
	DueDate     time.Time
	// Status is optional; empty means domain.StatusPending.
	Status string
}

// UpdateTaskInput carries a full replacement of a task's mutable fields.
type UpdateTaskInput struct {
	OwnerID     string
	TaskID      string
	Title       string
	Description string
	DueDate     time.Time
	// Status is optional; empty retains the task's current status.
	Status string
}

// TaskService defines use-case operations for tasks. Every operation requires
// the owner id resolved by the session gate and never exposes another user's
// tasks, not even as a distinct "forbidden" outcome.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, ownerID string) ([]*domain.Task, error)
	Get(ctx context.Context, ownerID, taskID string) (*domain.Task, error)
	Update(ctx context.Context, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
}
