package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yatra/internal/models/db_models"
)

// LedgerRepository persists budget plans and their append-only expense
// records. Expenses are only ever inserted, never updated or deleted.
type LedgerRepository interface {
	CreatePlan(ctx context.Context, plan *db_models.BudgetPlan) error
	GetPlan(ctx context.Context, id uuid.UUID) (*db_models.BudgetPlan, error)
	AppendExpense(ctx context.Context, expense *db_models.ExpenseRecord) error
}

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) CreatePlan(ctx context.Context, plan *db_models.BudgetPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

// GetPlan returns nil, nil when the plan does not exist.
func (r *ledgerRepository) GetPlan(ctx context.Context, id uuid.UUID) (*db_models.BudgetPlan, error) {
	var plan db_models.BudgetPlan
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Expenses").
		First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *ledgerRepository) AppendExpense(ctx context.Context, expense *db_models.ExpenseRecord) error {
	return r.db.WithContext(ctx).Create(expense).Error
}
