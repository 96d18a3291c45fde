package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	budgetfx "yatra/cmd/fx/budget_fx"
	controllersfx "yatra/cmd/fx/controllers_fx"
	dbfx "yatra/cmd/fx/db_fx"
	inventoryfx "yatra/cmd/fx/inventory_fx"
	plannerfx "yatra/cmd/fx/planner_fx"
	redisfx "yatra/cmd/fx/redis_fx"
	"yatra/internal/api/controllers"
	"yatra/internal/config"
	"yatra/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		fx.Provide(zap.NewProduction),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),

		dbfx.Module,
		redisfx.Module,
		inventoryfx.Module,
		budgetfx.Module,
		plannerfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("port", cfg.Port))
				if err := engine.Run(":" + cfg.Port); err != nil {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	searchController *controllers.SearchController,
	budgetController *controllers.BudgetController,
	inventoryController *controllers.InventoryController,
	redisClient *redis.Client,
	cfg *config.Config) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, searchController, budgetController, inventoryController, redisClient, cfg)

	return r
}

func RegisterRoutes(r *gin.Engine,
	searchController *controllers.SearchController,
	budgetController *controllers.BudgetController,
	inventoryController *controllers.InventoryController,
	redisClient *redis.Client,
	cfg *config.Config) {

	api := r.Group("/api")
	api.POST("/search", searchController.PostSearch)

	budgetGroup := api.Group("/budget")
	budgetGroup.POST("/allocate", budgetController.PostAllocate)
	budgetGroup.POST("/expense", budgetController.PostExpense)
	budgetGroup.GET("/:id", budgetController.GetLedger)

	inventoryGroup := api.Group("/inventory")
	inventoryGroup.Use(middleware.CacheMiddleware(redisClient, cfg.CacheTTL))
	inventoryGroup.GET("/:category", inventoryController.GetByCategory)
}
