package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sun-min-kim/TaskManagementAPI/internal/api/metrics"
	"github.com/sun-min-kim/TaskManagementAPI/internal/core/domain"
	"github.com/sun-min-kim/TaskManagementAPI/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations. Every route assumes
// the Session middleware already resolved the acting user.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Create handles POST /tasks.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      taskRequest  true  "Task payload"
// @Success      201   {object}  createTaskResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	uid, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.TaskOperationsTotal.WithLabelValues("create", "invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		metrics.TaskOperationsTotal.WithLabelValues("create", "invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	task, err := h.service.Create(c.Request().Context(), ports.CreateTaskInput{
		OwnerID:     uid,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Status:      req.Status,
	})
	if err != nil {
		metrics.TaskOperationsTotal.WithLabelValues("create", taskErrorLabel(err)).Inc()
		return err
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(task.Status)).Inc()
	metrics.TaskOperationsTotal.WithLabelValues("create", "ok").Inc()
	return c.JSON(http.StatusCreated, createTaskResponse{ID: task.ID})
}

// List handles GET /tasks.
//
// @Summary      List the current user's tasks
// @Tags         tasks
// @Produce      json
// @Success      200  {array}   taskResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	uid, err := ctxUserID(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.List(c.Request().Context(), uid)
	if err != nil {
		metrics.TaskOperationsTotal.WithLabelValues("list", "error").Inc()
		return err
	}

	metrics.TaskOperationsTotal.WithLabelValues("list", "ok").Inc()
	return c.JSON(http.StatusOK, toTaskListResponse(tasks))
}

// Get handles GET /tasks/:id.
//
// @Summary      Get a task by id
// @Tags         tasks
// @Produce      json
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  taskResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	uid, err := ctxUserID(c)
	if err != nil {
		return err
	}

	task, err := h.service.Get(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		metrics.TaskOperationsTotal.WithLabelValues("get", taskErrorLabel(err)).Inc()
		return err
	}

	metrics.TaskOperationsTotal.WithLabelValues("get", "ok").Inc()
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Update handles PUT /tasks/:id.
//
// @Summary      Replace a task's mutable fields
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Task id"
// @Param        body  body      taskRequest  true  "Replacement payload"
// @Success      200   {object}  updateTaskResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	uid, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.TaskOperationsTotal.WithLabelValues("update", "invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		metrics.TaskOperationsTotal.WithLabelValues("update", "invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	task, err := h.service.Update(c.Request().Context(), ports.UpdateTaskInput{
		OwnerID:     uid,
		TaskID:      c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Status:      req.Status,
	})
	if err != nil {
		metrics.TaskOperationsTotal.WithLabelValues("update", taskErrorLabel(err)).Inc()
		return err
	}

	metrics.TaskOperationsTotal.WithLabelValues("update", "ok").Inc()
	return c.JSON(http.StatusOK, updateTaskResponse{ID: task.ID})
}

// Delete handles DELETE /tasks/:id.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  deleteTaskResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	uid, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), uid, id); err != nil {
		metrics.TaskOperationsTotal.WithLabelValues("delete", taskErrorLabel(err)).Inc()
		return err
	}

	metrics.TaskOperationsTotal.WithLabelValues("delete", "ok").Inc()
	return c.JSON(http.StatusOK, deleteTaskResponse{
		Result:  true,
		Message: "Task " + id + " deleted successfully.",
	})
}

// taskErrorLabel classifies a service error for the operations counter.
func taskErrorLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidTask), errors.Is(err, domain.ErrInvalidStatus):
		return "invalid"
	}
	return "error"
}
