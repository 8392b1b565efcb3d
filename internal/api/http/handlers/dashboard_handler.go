package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/digibuster/helpdesk-api/internal/api/dto"
	"github.com/digibuster/helpdesk-api/internal/auth"
	"github.com/digibuster/helpdesk-api/internal/service"
	apperrors "github.com/digibuster/helpdesk-api/pkg/util"
)

// DashboardHandler exposes the role-scoped aggregate endpoint.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: dashboardService}
}

// Stats handles GET /api/dashboard/stats.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	stats, err := h.service.Stats(c.Context(), principal.User)
	if err != nil {
		return err
	}
	return c.JSON(dto.DashboardStatsResponse{
		TotalTickets:      stats.TotalTickets,
		OpenTickets:       stats.OpenTickets,
		InProgressTickets: stats.InProgressTickets,
		ResolvedTickets:   stats.ResolvedTickets,
		Role:              stats.Role,
	})
}
