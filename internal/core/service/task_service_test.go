package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sun-min-kim/TaskManagementAPI/internal/core/domain"
	"github.com/sun-min-kim/TaskManagementAPI/internal/core/ports"
)

type stubTaskRepo struct {
	tasks map[string]*domain.Task
	order []string
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*domain.Task)}
}

func cloneTask(t *domain.Task) *domain.Task {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

func (r *stubTaskRepo) Create(_ context.Context, task *domain.Task) error {
	r.tasks[task.ID] = cloneTask(task)
	r.order = append(r.order, task.ID)
	return nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id, ownerID string) (*domain.Task, error) {
	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, domain.ErrTaskNotFound
	}
	return cloneTask(task), nil
}

func (r *stubTaskRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, id := range r.order {
		if t, ok := r.tasks[id]; ok && t.OwnerID == ownerID {
			out = append(out, cloneTask(t))
		}
	}
	return out, nil
}

func (r *stubTaskRepo) Update(_ context.Context, task *domain.Task) error {
	existing, ok := r.tasks[task.ID]
	if !ok || existing.OwnerID != task.OwnerID {
		return domain.ErrTaskNotFound
	}
	r.tasks[task.ID] = cloneTask(task)
	return nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id, ownerID string) error {
	existing, ok := r.tasks[id]
	if !ok || existing.OwnerID != ownerID {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func newTestTaskService(repo *stubTaskRepo) *TaskService {
	return NewTaskService(repo, zerolog.Nop())
}

func dueDate(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		t.Fatalf("bad due date %q: %v", s, err)
	}
	return parsed
}

func TestTaskService_Create_DefaultsStatus(t *testing.T) {
	svc := newTestTaskService(newStubTaskRepo())

	task, err := svc.Create(context.Background(), ports.CreateTaskInput{
		OwnerID: "u1",
		Title:   "Buy milk",
		DueDate: dueDate(t, "2025-01-01T12:00:00"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if task.ID == "" {
		t.Fatalf("expected generated id")
	}
	if task.Status != domain.StatusPending {
		t.Fatalf("expected status pending, got %q", task.Status)
	}
	if task.OwnerID != "u1" {
		t.Fatalf("expected owner u1, got %q", task.OwnerID)
	}
}

func TestTaskService_Create_InvalidStatus(t *testing.T) {
	svc := newTestTaskService(newStubTaskRepo())

	_, err := svc.Create(context.Background(), ports.CreateTaskInput{
		OwnerID: "u1",
		Title:   "Buy milk",
		DueDate: dueDate(t, "2025-01-01T12:00:00"),
		Status:  "done",
	})
	if err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestTaskService_Create_Validation(t *testing.T) {
	svc := newTestTaskService(newStubTaskRepo())
	due := dueDate(t, "2025-01-01T12:00:00")

	cases := []struct {
		name  string
		input ports.CreateTaskInput
	}{
		{"empty title", ports.CreateTaskInput{OwnerID: "u1", DueDate: due}},
		{"blank title", ports.CreateTaskInput{OwnerID: "u1", Title: "   ", DueDate: due}},
		{"title too long", ports.CreateTaskInput{OwnerID: "u1", Title: strings.Repeat("x", 101), DueDate: due}},
		{"description too long", ports.CreateTaskInput{OwnerID: "u1", Title: "ok", Description: strings.Repeat("x", 256), DueDate: due}},
		{"missing due date", ports.CreateTaskInput{OwnerID: "u1", Title: "ok"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tc.input); err != domain.ErrInvalidTask {
				t.Fatalf("expected ErrInvalidTask, got %v", err)
			}
		})
	}
}

func TestTaskService_CreateThenGet_RoundTrip(t *testing.T) {
	svc := newTestTaskService(newStubTaskRepo())
	due := dueDate(t, "2025-01-01T12:00:00")

	created, err := svc.Create(context.Background(), ports.CreateTaskInput{
		OwnerID:     "u1",
		Title:       "Buy milk",
		Description: "2 litres",
		DueDate:     due,
		Status:      "in-progress",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.Get(context.Background(), "u1", created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Title != "Buy milk" || got.Description != "2 litres" {
		t.Fatalf("unexpected fields: %+v", got)
	}
	if !got.DueDate.Equal(due) {
		t.Fatalf("due date changed: got %v, want %v", got.DueDate, due)
	}
	if got.Status != domain.StatusInProgress {
		t.Fatalf("unexpected status: %q", got.Status)
	}
}

func TestTaskService_OwnershipIsolation(t *testing.T) {
	svc := newTestTaskService(newStubTaskRepo())
	due := dueDate(t, "2025-01-01T12:00:00")

	taskA, err := svc.Create(context.Background(), ports.CreateTaskInput{OwnerID: "userA", Title: "A's task", DueDate: due})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// B never sees A's task through any operation.
	if _, err := svc.Get(context.Background(), "userB", taskA.ID); err != domain.ErrTaskNotFound {
		t.Fatalf("get: expected ErrTaskNotFound, got %v", err)
	}

	listB, err := svc.List(context.Background(), "userB")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listB) != 0 {
		t.Fatalf("expected empty list for B, got %d tasks", len(listB))
	}

	_, err = svc.Update(context.Background(), ports.UpdateTaskInput{
		OwnerID: "userB",
		TaskID:  taskA.ID,
		Title:   "hijacked",
		DueDate: due,
	})
	if err != domain.ErrTaskNotFound {
		t.Fatalf("update: expected ErrTaskNotFound, got %v", err)
	}

	if err := svc.Delete(context.Background(), "userB", taskA.ID); err != domain.ErrTaskNotFound {
		t.Fatalf("delete: expected ErrTaskNotFound, got %v", err)
	}

	// A's task survived all of B's attempts.
	got, err := svc.Get(context.Background(), "userA", taskA.ID)
	if err != nil {
		t.Fatalf("owner get failed: %v", err)
	}
	if got.Title != "A's task" {
		t.Fatalf("task mutated by non-owner: %+v", got)
	}
}

func TestTaskService_List_EmptyIsNotError(t *testing.T) {
	svc := newTestTaskService(newStubTaskRepo())

	tasks, err := svc.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if tasks == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks, got %d", len(tasks))
	}
}

func TestTaskService_List_InsertionOrder(t *testing.T) {
	svc := newTestTaskService(newStubTaskRepo())
	due := dueDate(t, "2025-01-01T12:00:00")

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		if _, err := svc.Create(context.Background(), ports.CreateTaskInput{OwnerID: "u1", Title: title, DueDate: due}); err != nil {
			t.Fatalf("create %q failed: %v", title, err)
		}
	}

	tasks, err := svc.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != len(titles) {
		t.Fatalf("expected %d tasks, got %d", len(titles), len(tasks))
	}
	for i, title := range titles {
		if tasks[i].Title != title {
			t.Fatalf("position %d: got %q, want %q", i, tasks[i].Title, title)
		}
	}
}

func TestTaskService_Update_ReplacesFields(t *testing.T) {
	svc := newTestTaskService(newStubTaskRepo())

	created, err := svc.Create(context.Background(), ports.CreateTaskInput{
		OwnerID:     "u1",
		Title:       "old title",
		Description: "old description",
		DueDate:     dueDate(t, "2025-01-01T12:00:00"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newDue := dueDate(t, "2025-06-30T09:00:00")
	updated, err := svc.Update(context.Background(), ports.UpdateTaskInput{
		OwnerID: "u1",
		TaskID:  created.ID,
		Title:   "new title",
		DueDate: newDue,
		Status:  "completed",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := svc.Get(context.Background(), "u1", created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Title != "new title" {
		t.Fatalf("title not replaced: %q", got.Title)
	}
	// Full replace: omitted description is cleared.
	if got.Description != "" {
		t.Fatalf("description not replaced: %q", got.Description)
	}
	if !got.DueDate.Equal(newDue) {
		t.Fatalf("due date not replaced: %v", got.DueDate)
	}
	if got.Status != domain.StatusCompleted {
		t.Fatalf("status not replaced: %q", got.Status)
	}
	if got.ID != updated.ID || got.OwnerID != "u1" {
		t.Fatalf("id or owner changed: %+v", got)
	}
}

func TestTaskService_Update_RetainsStatusWhenOmitted(t *testing.T) {
	svc := newTestTaskService(newStubTaskRepo())
	due := dueDate(t, "2025-01-01T12:00:00")

	created, err := svc.Create(context.Background(), ports.CreateTaskInput{
		OwnerID: "u1",
		Title:   "task",
		DueDate: due,
		Status:  "in-progress",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Update(context.Background(), ports.UpdateTaskInput{
		OwnerID: "u1",
		TaskID:  created.ID,
		Title:   "renamed",
		DueDate: due,
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := svc.Get(context.Background(), "u1", created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Status != domain.StatusInProgress {
		t.Fatalf("status not retained: %q", got.Status)
	}
}

func TestTaskService_Update_InvalidStatus(t *testing.T) {
	svc := newTestTaskService(newStubTaskRepo())
	due := dueDate(t, "2025-01-01T12:00:00")

	created, err := svc.Create(context.Background(), ports.CreateTaskInput{OwnerID: "u1", Title: "task", DueDate: due})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.Update(context.Background(), ports.UpdateTaskInput{
		OwnerID: "u1",
		TaskID:  created.ID,
		Title:   "task",
		DueDate: due,
		Status:  "archived",
	})
	if err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestTaskService_Delete_Idempotence(t *testing.T) {
	svc := newTestTaskService(newStubTaskRepo())

	created, err := svc.Create(context.Background(), ports.CreateTaskInput{
		OwnerID: "u1",
		Title:   "disposable",
		DueDate: dueDate(t, "2025-01-01T12:00:00"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), "u1", created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), "u1", created.ID); err != domain.ErrTaskNotFound {
		t.Fatalf("expected ErrTaskNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), "u1", created.ID); err != domain.ErrTaskNotFound {
		t.Fatalf("second delete: expected ErrTaskNotFound, got %v", err)
	}
}
