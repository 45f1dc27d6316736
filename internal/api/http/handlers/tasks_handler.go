package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/lucifer9973/task-manager-api/internal/api/dto"
	"github.com/lucifer9973/task-manager-api/internal/auth"
	"github.com/lucifer9973/task-manager-api/internal/service"
	apperrors "github.com/lucifer9973/task-manager-api/pkg/util"
)

// TasksHandler exposes the self-service task CRUD endpoints. All routes
// run behind the auth middleware; operations are scoped to the caller.
type TasksHandler struct {
	tasks *service.TaskService
}

// NewTasksHandler constructs handler.
func NewTasksHandler(taskService *service.TaskService) *TasksHandler {
	return &TasksHandler{tasks: taskService}
}

// List handles GET /tasks.
func (h *TasksHandler) List(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Please login first.")
	}

	tasks, err := h.tasks.List(c.Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTaskResponses(tasks))
}

// Create handles POST /tasks.
func (h *TasksHandler) Create(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Please login first.")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	task, err := h.tasks.Create(c.Context(), user.ID, req.Title, req.Description)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewTaskResponse(task))
}

// Update handles PUT /tasks/:id.
func (h *TasksHandler) Update(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Please login first.")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	task, err := h.tasks.Update(c.Context(), user.ID, c.Params("id"), req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTaskResponse(task))
}

// Delete handles DELETE /tasks/:id.
func (h *TasksHandler) Delete(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Please login first.")
	}

	if err := h.tasks.Delete(c.Context(), user.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Task deleted"})
}
