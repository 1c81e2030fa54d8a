package http

import (
	"log/slog"
	"net/http"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/dashboard"
	"github.com/attendly-hq/attendly-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Stats implements DashboardHandler.
func (h *dashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		slog.Error("Dashboard stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
