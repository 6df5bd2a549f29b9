package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecomarket/catalog-api/internal/core/ports"
)

// PermissionHandler exposes the admin-only account state machines.
type PermissionHandler struct {
	service ports.PermissionService
}

func NewPermissionHandler(service ports.PermissionService) *PermissionHandler {
	return &PermissionHandler{service: service}
}

// ToggleSupplier handles PATCH /admin/permissions/:user_id. It flips the
// target between supplier and customer.
//
// @Summary      Toggle a user's supplier/customer permission
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path  int  true  "Target user id"
// @Success      200  {object}  toggleResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/permissions/{user_id} [patch]
func (h *PermissionHandler) ToggleSupplier(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	targetID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	target, err := h.service.ToggleSupplier(c.Request().Context(), claims, targetID)
	if err != nil {
		return err
	}

	detail := "user is no longer supplier"
	if target.IsSupplier {
		detail = "user is now supplier"
	}
	return c.JSON(http.StatusOK, toggleResponse{Detail: detail})
}

// ToggleActive handles PATCH /admin/users/:user_id/active. Deactivation is
// the soft-delete path; admins can never be deactivated.
//
// @Summary      Toggle a user's activation flag
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path  int  true  "Target user id"
// @Success      200  {object}  toggleResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{user_id}/active [patch]
func (h *PermissionHandler) ToggleActive(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	targetID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	target, err := h.service.ToggleActive(c.Request().Context(), claims, targetID)
	if err != nil {
		return err
	}

	detail := "user is deactivated"
	if target.IsActive {
		detail = "user is activated"
	}
	return c.JSON(http.StatusOK, toggleResponse{Detail: detail})
}
