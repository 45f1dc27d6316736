package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucifer9973/task-manager-api/internal/api/dto"
	"github.com/lucifer9973/task-manager-api/internal/service"
	apperrors "github.com/lucifer9973/task-manager-api/pkg/util"
)

// AdminHandler exposes the cross-user management endpoints. All routes run
// behind the auth middleware plus the admin role gate.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: adminService}
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.admin.ListUsers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponses(users))
}

// ListTasks handles GET /admin/tasks.
func (h *AdminHandler) ListTasks(c *fiber.Ctx) error {
	tasks, err := h.admin.ListTasks(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTaskWithOwnerResponses(tasks))
}

// GetUser handles GET /admin/users/:id.
func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	detail, err := h.admin.GetUserDetail(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.UserDetailResponse{
		User:  dto.NewUserResponse(detail.User),
		Tasks: dto.NewTaskResponses(detail.Tasks),
	})
}

// UpdateTask handles PUT /admin/tasks/:id.
func (h *AdminHandler) UpdateTask(c *fiber.Ctx) error {
	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	task, err := h.admin.UpdateTask(c.Context(), c.Params("id"), req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTaskResponse(task))
}

// DeleteTask handles DELETE /admin/tasks/:id.
func (h *AdminHandler) DeleteTask(c *fiber.Ctx) error {
	if err := h.admin.DeleteTask(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Task deleted successfully"})
}

// DeleteUser handles DELETE /admin/users/:id.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.admin.DeleteUser(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "User and all their tasks deleted successfully"})
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.admin.GetStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewStatsResponse(stats))
}
