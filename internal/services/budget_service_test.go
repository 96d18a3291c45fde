package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"yatra/internal/models/db_models"
	"yatra/internal/repositories"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type mockLedgerRepo struct {
	createPlan    func(ctx context.Context, plan *db_models.BudgetPlan) error
	getPlan       func(ctx context.Context, id uuid.UUID) (*db_models.BudgetPlan, error)
	appendExpense func(ctx context.Context, expense *db_models.ExpenseRecord) error
}

func (m *mockLedgerRepo) CreatePlan(ctx context.Context, plan *db_models.BudgetPlan) error {
	return m.createPlan(ctx, plan)
}
func (m *mockLedgerRepo) GetPlan(ctx context.Context, id uuid.UUID) (*db_models.BudgetPlan, error) {
	return m.getPlan(ctx, id)
}
func (m *mockLedgerRepo) AppendExpense(ctx context.Context, expense *db_models.ExpenseRecord) error {
	return m.appendExpense(ctx, expense)
}

var _ repositories.LedgerRepository = (*mockLedgerRepo)(nil)

// memoryLedger behaves like the real repository over an in-memory plan:
// GetPlan returns a fresh copy (as a DB read would) and AppendExpense inserts.
func memoryLedger() *mockLedgerRepo {
	plans := make(map[uuid.UUID]*db_models.BudgetPlan)
	return &mockLedgerRepo{
		createPlan: func(_ context.Context, plan *db_models.BudgetPlan) error {
			plan.ID = uuid.New()
			for i := range plan.Items {
				plan.Items[i].PlanID = plan.ID
			}
			stored := *plan
			stored.Items = append([]db_models.BudgetItem(nil), plan.Items...)
			plans[plan.ID] = &stored
			return nil
		},
		getPlan: func(_ context.Context, id uuid.UUID) (*db_models.BudgetPlan, error) {
			stored, ok := plans[id]
			if !ok {
				return nil, nil
			}
			out := *stored
			out.Items = append([]db_models.BudgetItem(nil), stored.Items...)
			out.Expenses = append([]db_models.ExpenseRecord(nil), stored.Expenses...)
			return &out, nil
		},
		appendExpense: func(_ context.Context, expense *db_models.ExpenseRecord) error {
			plans[expense.PlanID].Expenses = append(plans[expense.PlanID].Expenses, *expense)
			return nil
		},
	}
}

func newBudgetService(repo repositories.LedgerRepository) services.BudgetServiceInterface {
	return services.NewBudgetService(repo, zap.NewNop())
}

func TestAllocate_PersistsExactEvenSplit(t *testing.T) {
	svc := newBudgetService(memoryLedger())

	plan, err := svc.Allocate(context.Background(), 10000,
		[]repositories.Category{repositories.CategoryFlights, repositories.CategoryHotels},
		db_models.PolicyEven, nil)

	require.NoError(t, err)
	assert.NotEmpty(t, plan.ID)
	assert.Equal(t, int64(10000), plan.TotalBudget)
	assert.Equal(t, map[string]int64{"flights": 5000, "hotels": 5000}, plan.Allocation)
}

func TestAllocate_WeightedPolicy(t *testing.T) {
	svc := newBudgetService(memoryLedger())

	plan, err := svc.Allocate(context.Background(), 100,
		[]repositories.Category{repositories.CategoryFlights, repositories.CategoryHotels},
		db_models.PolicyWeighted,
		map[repositories.Category]int64{
			repositories.CategoryFlights: 3,
			repositories.CategoryHotels:  1,
		})

	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"flights": 75, "hotels": 25}, plan.Allocation)
}

func TestAllocate_InvalidWeights(t *testing.T) {
	svc := newBudgetService(memoryLedger())

	_, err := svc.Allocate(context.Background(), 100,
		[]repositories.Category{repositories.CategoryFlights},
		db_models.PolicyWeighted,
		map[repositories.Category]int64{repositories.CategoryFlights: 0})

	assert.ErrorIs(t, err, utils.ErrInvalidWeights)
}

func TestRecordExpense_OverspendReportedNotRejected(t *testing.T) {
	svc := newBudgetService(memoryLedger())
	plan, err := svc.Allocate(context.Background(), 5000,
		[]repositories.Category{repositories.CategoryFlights}, db_models.PolicyEven, nil)
	require.NoError(t, err)

	summary, err := svc.RecordExpense(context.Background(), plan.ID, "flights", 6000)

	require.NoError(t, err)
	assert.Equal(t, int64(-1000), summary.Remaining["flights"])
	assert.Equal(t, int64(-1000), summary.TotalRemaining)
	assert.True(t, summary.Overspent)
}

func TestRecordExpense_OrderDoesNotMatter(t *testing.T) {
	run := func(amounts []int64) map[string]int64 {
		svc := newBudgetService(memoryLedger())
		plan, err := svc.Allocate(context.Background(), 10000,
			[]repositories.Category{repositories.CategoryFlights, repositories.CategoryHotels},
			db_models.PolicyEven, nil)
		require.NoError(t, err)

		var summary map[string]int64
		for _, amount := range amounts {
			result, err := svc.RecordExpense(context.Background(), plan.ID, "flights", amount)
			require.NoError(t, err)
			summary = result.Remaining
		}
		return summary
	}

	assert.Equal(t, run([]int64{1200, 800}), run([]int64{800, 1200}))
}

func TestRecordExpense_UnknownPlan(t *testing.T) {
	svc := newBudgetService(memoryLedger())

	_, err := svc.RecordExpense(context.Background(), uuid.New().String(), "flights", 100)
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)

	_, err = svc.RecordExpense(context.Background(), "not-a-uuid", "flights", 100)
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestRecordExpense_CategoryOutsidePlan(t *testing.T) {
	svc := newBudgetService(memoryLedger())
	plan, err := svc.Allocate(context.Background(), 5000,
		[]repositories.Category{repositories.CategoryFlights}, db_models.PolicyEven, nil)
	require.NoError(t, err)

	_, err = svc.RecordExpense(context.Background(), plan.ID, "hotels", 100)
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)
}

func TestRecordExpense_NonPositiveAmount(t *testing.T) {
	svc := newBudgetService(memoryLedger())

	_, err := svc.RecordExpense(context.Background(), uuid.New().String(), "flights", 0)
	assert.ErrorIs(t, err, utils.ErrInvalidExpense)
}

func TestGetSummary_IncludesLedger(t *testing.T) {
	svc := newBudgetService(memoryLedger())
	plan, err := svc.Allocate(context.Background(), 6000,
		[]repositories.Category{repositories.CategoryFlights, repositories.CategoryHotels},
		db_models.PolicyEven, nil)
	require.NoError(t, err)

	_, err = svc.RecordExpense(context.Background(), plan.ID, "hotels", 1000)
	require.NoError(t, err)

	summary, err := svc.GetSummary(context.Background(), plan.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), summary.Remaining["flights"])
	assert.Equal(t, int64(2000), summary.Remaining["hotels"])
	assert.Equal(t, int64(5000), summary.TotalRemaining)
	assert.False(t, summary.Overspent)
	require.Len(t, summary.Expenses, 1)
	assert.Equal(t, int64(1000), summary.Expenses[0].Amount)
}
