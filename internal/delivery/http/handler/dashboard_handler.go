package handler

import (
	"net/http"

	"student-recommendation-platform/internal/usecase"
	"student-recommendation-platform/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

// Get handles the dashboard aggregates
// @Summary Get dashboard aggregates
// @Description Aggregate counts, means and the marks distribution over the whole collection
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	aggregates, err := h.dashboardUsecase.GetAggregates(r.Context())
	if err != nil {
		response.BadGateway(w, "Student store is unavailable, please try again")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard aggregates retrieved successfully", aggregates)
}
