package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yatra/internal/models/db_models"
	"yatra/internal/models/request_models"
	"yatra/internal/repositories"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type BudgetController struct {
	budgetService services.BudgetServiceInterface
}

func NewBudgetController(budgetService services.BudgetServiceInterface) *BudgetController {
	return &BudgetController{
		budgetService: budgetService,
	}
}

// PostAllocate handles POST /api/budget/allocate.
func (b *BudgetController) PostAllocate(c *gin.Context) {
	var req request_models.AllocateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	categories := make([]repositories.Category, 0, len(req.Categories))
	for _, name := range req.Categories {
		category, err := repositories.ParseCategory(name)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		categories = append(categories, category)
	}

	weights := make(map[repositories.Category]int64, len(req.Weights))
	for name, w := range req.Weights {
		category, err := repositories.ParseCategory(name)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		weights[category] = w
	}

	plan, err := b.budgetService.Allocate(c.Request.Context(), req.TotalBudget,
		categories, db_models.AllocationPolicy(req.Policy), weights)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Budget allocated")
}

// PostExpense handles POST /api/budget/expense. Overspending is reported in
// the summary, not rejected.
func (b *BudgetController) PostExpense(c *gin.Context) {
	var req request_models.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := b.budgetService.RecordExpense(c.Request.Context(), req.AllocationID, req.Category, req.Amount)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Expense recorded")
}

// GetLedger handles GET /api/budget/:id.
func (b *BudgetController) GetLedger(c *gin.Context) {
	planID := c.Param("id")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Budget plan ID is required")
		return
	}

	summary, err := b.budgetService.GetSummary(c.Request.Context(), planID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Budget ledger fetched")
}
