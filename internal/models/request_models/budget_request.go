package request_models

type AllocateBudgetRequest struct {
	TotalBudget int64            `json:"totalBudget" binding:"required,gt=0"`
	Categories  []string         `json:"categories"`
	Policy      string           `json:"policy" binding:"omitempty,oneof=even weighted"`
	Weights     map[string]int64 `json:"weights"`
}

type RecordExpenseRequest struct {
	AllocationID string `json:"allocationId" binding:"required"`
	Category     string `json:"category" binding:"required"`
	Amount       int64  `json:"amount" binding:"required,gt=0"`
}
