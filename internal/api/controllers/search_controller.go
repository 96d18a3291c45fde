package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yatra/internal/models/request_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type SearchController struct {
	plannerService services.PlannerServiceInterface
}

func NewSearchController(plannerService services.PlannerServiceInterface) *SearchController {
	return &SearchController{
		plannerService: plannerService,
	}
}

// PostSearch handles POST /api/search: one trip request in, per-category
// results plus the derived allocation and candidate list out. A budget that
// can afford nothing still returns 200 with empty candidates.
func (s *SearchController) PostSearch(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := s.plannerService.PlanTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Trip search completed")
}
