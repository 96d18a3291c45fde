package response_models

type BudgetPlanResponse struct {
	ID          string           `json:"id"`
	TotalBudget int64            `json:"totalBudget"`
	Policy      string           `json:"policy"`
	Allocation  map[string]int64 `json:"allocation"`
}

// ExpenseSummary reports remainders after a recorded spend. Overspent is a
// data point, not an error: a negative remainder still returns 200.
type ExpenseSummary struct {
	AllocationID   string           `json:"allocationId"`
	Category       string           `json:"category"`
	Remaining      map[string]int64 `json:"remaining"`
	TotalRemaining int64            `json:"totalRemaining"`
	Overspent      bool             `json:"overspent"`
}

type ExpenseResponse struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
	SpentAt  int64  `json:"spentAt"`
}

type BudgetSummary struct {
	Plan           BudgetPlanResponse `json:"plan"`
	Remaining      map[string]int64   `json:"remaining"`
	TotalRemaining int64              `json:"totalRemaining"`
	Overspent      bool               `json:"overspent"`
	Expenses       []ExpenseResponse  `json:"expenses"`
}
