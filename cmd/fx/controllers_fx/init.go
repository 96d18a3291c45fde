package controllersfx

import (
	"go.uber.org/fx"

	"yatra/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewSearchController),
	fx.Provide(controllers.NewBudgetController),
	fx.Provide(controllers.NewInventoryController))
