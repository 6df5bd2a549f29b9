package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ecomarket/catalog-api/internal/core/domain"
	"github.com/ecomarket/catalog-api/internal/core/ports"
)

// AuditHandler serves the admin audit view.
type AuditHandler struct {
	service ports.AuditService
}

func NewAuditHandler(service ports.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// ListByActor handles GET /admin/audit/:username. Newest entries first;
// the optional limit query parameter caps the result.
//
// @Summary      List audit entries for a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        username  path   string  true   "Actor username"
// @Param        limit     query  int     false  "Maximum entries to return"
// @Success      200  {array}   domain.AuditEntry
// @Failure      403  {object}  errorResponse
// @Router       /admin/audit/{username} [get]
func (h *AuditHandler) ListByActor(c echo.Context) error {
	var limit int64
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	entries, err := h.service.ListByActor(c.Request().Context(), c.Param("username"), limit)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []domain.AuditEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}
