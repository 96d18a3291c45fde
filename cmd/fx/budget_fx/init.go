package budgetfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"yatra/internal/repositories"
	"yatra/internal/services"
)

var Module = fx.Provide(
	provideLedgerRepo, provideBudgetService)

func provideLedgerRepo(db *gorm.DB) repositories.LedgerRepository {
	return repositories.NewLedgerRepository(db)
}

func provideBudgetService(ledgerRepo repositories.LedgerRepository, logger *zap.Logger) services.BudgetServiceInterface {
	return services.NewBudgetService(ledgerRepo, logger)
}
