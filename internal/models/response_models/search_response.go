package response_models

import "yatra/internal/repositories"

// CategoryResult carries one category's slice of a trip search. Failed marks
// a category whose store access failed after retry; its items are empty while
// the other categories still return normally.
type CategoryResult struct {
	Items  []repositories.InventoryItem `json:"items"`
	Total  int64                        `json:"total"`
	Failed bool                         `json:"failed,omitempty"`
}

// TripPlanResponse is the /api/search body. An empty Candidates list with no
// failed categories means the current allocation cannot afford any item —
// budget infeasible, not an error.
type TripPlanResponse struct {
	Results      map[string]CategoryResult    `json:"results"`
	TotalBudget  int64                        `json:"totalBudget"`
	Allocation   map[string]int64             `json:"allocation"`
	AllocationID string                       `json:"allocationId"`
	Candidates   []repositories.InventoryItem `json:"candidates"`
}

// SearchPageResponse is one page of a single-category browse.
type SearchPageResponse struct {
	Items    []repositories.InventoryItem `json:"items"`
	Total    int64                        `json:"total"`
	Page     int                          `json:"page"`
	PageSize int                          `json:"pageSize"`
}
