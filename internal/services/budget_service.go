package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"yatra/internal/models/db_models"
	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

type BudgetServiceInterface interface {
	Allocate(ctx context.Context, totalBudget int64, categories []repositories.Category,
		policy db_models.AllocationPolicy, weights map[repositories.Category]int64) (*response_models.BudgetPlanResponse, error)
	RecordExpense(ctx context.Context, planID string, category string, amount int64) (*response_models.ExpenseSummary, error)
	GetSummary(ctx context.Context, planID string) (*response_models.BudgetSummary, error)
}

type BudgetService struct {
	ledgerRepo repositories.LedgerRepository
	logger     *zap.Logger

	// One writer at a time per plan keeps the running remainder consistent;
	// expenses against different plans never contend.
	mu        sync.Mutex
	planLocks map[uuid.UUID]*sync.Mutex
}

func NewBudgetService(ledgerRepo repositories.LedgerRepository, logger *zap.Logger) BudgetServiceInterface {
	return &BudgetService{
		ledgerRepo: ledgerRepo,
		logger:     logger,
		planLocks:  make(map[uuid.UUID]*sync.Mutex),
	}
}

func (b *BudgetService) lockFor(planID uuid.UUID) *sync.Mutex {
	b.mu.Lock()
	defer b.mu.Unlock()
	lock, ok := b.planLocks[planID]
	if !ok {
		lock = &sync.Mutex{}
		b.planLocks[planID] = lock
	}
	return lock
}

// Allocate splits totalBudget across the categories under the requested
// policy and persists the resulting plan as the trip's budget ledger.
func (b *BudgetService) Allocate(ctx context.Context, totalBudget int64, categories []repositories.Category,
	policy db_models.AllocationPolicy, weights map[repositories.Category]int64) (*response_models.BudgetPlanResponse, error) {

	if policy == "" {
		policy = db_models.PolicyEven
	}

	var (
		allocation map[repositories.Category]int64
		err        error
	)
	switch policy {
	case db_models.PolicyWeighted:
		allocation, err = WeightedSplit(totalBudget, categories, weights)
	default:
		allocation, err = EvenSplit(totalBudget, categories)
	}
	if err != nil {
		return nil, err
	}

	weightsJSON := []byte("{}")
	if len(weights) > 0 {
		weightsJSON, _ = json.Marshal(weights)
	}
	plan := &db_models.BudgetPlan{
		TotalBudgetINR: totalBudget,
		Policy:         policy,
		Weights:        datatypes.JSON(weightsJSON),
	}
	for _, c := range repositories.CanonicalOrder {
		amount, ok := allocation[c]
		if !ok {
			continue
		}
		plan.Items = append(plan.Items, db_models.BudgetItem{
			Category:  string(c),
			AmountINR: amount,
		})
	}

	if err := b.ledgerRepo.CreatePlan(ctx, plan); err != nil {
		b.logger.Error("failed to persist budget plan", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return &response_models.BudgetPlanResponse{
		ID:          plan.ID.String(),
		TotalBudget: totalBudget,
		Policy:      string(policy),
		Allocation:  allocationResponse(allocation),
	}, nil
}

// RecordExpense appends one spend to the plan's ledger and reports the
// remainders. Overspend is permitted: a negative remainder comes back with
// the Overspent flag set, never as an error.
func (b *BudgetService) RecordExpense(ctx context.Context, planID string, category string, amount int64) (*response_models.ExpenseSummary, error) {
	if amount <= 0 {
		return nil, utils.ErrInvalidExpense
	}
	id, err := uuid.Parse(planID)
	if err != nil {
		return nil, utils.ErrPlanNotFound
	}

	lock := b.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	plan, err := b.loadPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if !planHasCategory(plan, category) {
		return nil, utils.ErrCategoryNotFound
	}

	expense := &db_models.ExpenseRecord{
		PlanID:    id,
		Category:  category,
		AmountINR: amount,
		SpentAt:   time.Now().Unix(),
	}
	if err := b.ledgerRepo.AppendExpense(ctx, expense); err != nil {
		b.logger.Error("failed to append expense", zap.String("plan_id", planID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	plan.Expenses = append(plan.Expenses, *expense)

	remaining, total, overspent := remainders(plan)
	return &response_models.ExpenseSummary{
		AllocationID:   planID,
		Category:       category,
		Remaining:      remaining,
		TotalRemaining: total,
		Overspent:      overspent,
	}, nil
}

func (b *BudgetService) GetSummary(ctx context.Context, planID string) (*response_models.BudgetSummary, error) {
	id, err := uuid.Parse(planID)
	if err != nil {
		return nil, utils.ErrPlanNotFound
	}
	plan, err := b.loadPlan(ctx, id)
	if err != nil {
		return nil, err
	}

	allocation := make(map[string]int64, len(plan.Items))
	for _, item := range plan.Items {
		allocation[item.Category] = item.AmountINR
	}
	expenses := make([]response_models.ExpenseResponse, 0, len(plan.Expenses))
	for _, e := range plan.Expenses {
		expenses = append(expenses, response_models.ExpenseResponse{
			Category: e.Category,
			Amount:   e.AmountINR,
			SpentAt:  e.SpentAt,
		})
	}

	remaining, total, overspent := remainders(plan)
	return &response_models.BudgetSummary{
		Plan: response_models.BudgetPlanResponse{
			ID:          plan.ID.String(),
			TotalBudget: plan.TotalBudgetINR,
			Policy:      string(plan.Policy),
			Allocation:  allocation,
		},
		Remaining:      remaining,
		TotalRemaining: total,
		Overspent:      overspent,
		Expenses:       expenses,
	}, nil
}

func (b *BudgetService) loadPlan(ctx context.Context, id uuid.UUID) (*db_models.BudgetPlan, error) {
	plan, err := b.ledgerRepo.GetPlan(ctx, id)
	if err != nil {
		b.logger.Error("failed to load budget plan", zap.String("plan_id", id.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	return plan, nil
}

func planHasCategory(plan *db_models.BudgetPlan, category string) bool {
	for _, item := range plan.Items {
		if item.Category == category {
			return true
		}
	}
	return false
}

// remainders computes allocation minus cumulative spend per category, the
// total across categories, and whether any category is overspent.
func remainders(plan *db_models.BudgetPlan) (map[string]int64, int64, bool) {
	remaining := make(map[string]int64, len(plan.Items))
	for _, item := range plan.Items {
		remaining[item.Category] = item.AmountINR
	}
	for _, e := range plan.Expenses {
		remaining[e.Category] -= e.AmountINR
	}

	var total int64
	overspent := false
	for _, amount := range remaining {
		total += amount
		if amount < 0 {
			overspent = true
		}
	}
	return remaining, total, overspent
}

func allocationResponse(allocation map[repositories.Category]int64) map[string]int64 {
	out := make(map[string]int64, len(allocation))
	for c, amount := range allocation {
		out[string(c)] = amount
	}
	return out
}
