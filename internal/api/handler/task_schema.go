package handler

import (
	"errors"
	"time"

	"github.com/sun-min-kim/TaskManagementAPI/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse wraps human-readable confirmations (register, login, logout).
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request / Response types ---

// taskRequest is shared by create and update; both require title and dueDate
// and replace all mutable fields. Status is optional: empty defaults to
// "pending" on create and retains the stored value on update.
type taskRequest struct {
	Title       string `json:"title"       validate:"required,max=100"`
	Description string `json:"description" validate:"max=255"`
	DueDate     string `json:"dueDate"     validate:"required"`
	Status      string `json:"status"      validate:"omitempty,oneof=pending in-progress completed"`
}

type createTaskResponse struct {
	ID string `json:"id"`
}

type updateTaskResponse struct {
	ID string `json:"id"`
}

type deleteTaskResponse struct {
	Result  bool   `json:"result"`
	Message string `json:"message"`
}

// taskResponse is the transport representation of a task. It is intentionally
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type taskResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     string  `json:"dueDate"`
	Status      string  `json:"status"`
}

// dueDateLayout is the zone-less ISO 8601 form the API emits. Input also
// accepts full RFC 3339 timestamps.
const dueDateLayout = "2006-01-02T15:04:05"

func parseDueDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dueDateLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("dueDate must be an ISO 8601 timestamp")
}

func formatDueDate(t time.Time) string {
	return t.UTC().Format(dueDateLayout)
}

func toTaskResponse(t *domain.Task) taskResponse {
	var desc *string
	if t.Description != "" {
		d := t.Description
		desc = &d
	}
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: desc,
		DueDate:     formatDueDate(t.DueDate),
		Status:      string(t.Status),
	}
}

func toTaskListResponse(tasks []*domain.Task) []taskResponse {
	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out
}
