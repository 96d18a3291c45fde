package plannerfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"yatra/internal/config"
	"yatra/internal/services"
)

var Module = fx.Provide(
	providePlannerService)

func providePlannerService(searchService services.SearchServiceInterface,
	budgetService services.BudgetServiceInterface,
	cfg *config.Config, logger *zap.Logger) services.PlannerServiceInterface {
	return services.NewPlannerService(searchService, budgetService, logger, cfg.TopK)
}
