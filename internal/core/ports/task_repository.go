package ports

import (
	"context"

	"github.com/sun-min-kim/TaskManagementAPI/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks. Every lookup and
// mutation is filtered by ownerID at the query level, so a task belonging to
// another user is simply absent as far as the caller is concerned.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	// FindByID retrieves a task by id, scoped to ownerID.
	FindByID(ctx context.Context, id, ownerID string) (*domain.Task, error)
	// ListByOwner returns all tasks for ownerID in creation order.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error)
	// Update replaces the mutable fields of the task matching task.ID and
	// task.OwnerID. Returns domain.ErrTaskNotFound when no row matched.
	Update(ctx context.Context, task *domain.Task) error
	// Delete removes the task matching id and ownerID permanently.
	// Returns domain.ErrTaskNotFound when no row matched.
	Delete(ctx context.Context, id, ownerID string) error
}
