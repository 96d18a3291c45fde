package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type InventoryController struct {
	searchService services.SearchServiceInterface
}

func NewInventoryController(searchService services.SearchServiceInterface) *InventoryController {
	return &InventoryController{
		searchService: searchService,
	}
}

// GetByCategory handles GET /api/inventory/:category — a paginated, sortable
// browse over one inventory table with optional field filters.
func (i *InventoryController) GetByCategory(c *gin.Context) {
	category, err := repositories.ParseCategory(c.Param("category"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > services.MaxPageSize {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	predicate := repositories.Predicate{
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
		City:        c.Query("city"),
	}
	if raw := c.Query("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || maxPrice < 0 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid maxPrice")
			return
		}
		predicate.MaxPriceINR = &maxPrice
	}
	if raw := c.Query("minCapacity"); raw != "" {
		minCapacity, err := strconv.Atoi(raw)
		if err != nil || minCapacity < 0 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid minCapacity")
			return
		}
		predicate.MinCapacity = minCapacity
	}
	includeSoldOut := c.Query("includeSoldOut") == "true"

	items, total, err := i.searchService.Search(c.Request.Context(), category, predicate,
		c.DefaultQuery("sort", services.SortByPrice), page, pageSize, includeSoldOut)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.SearchPageResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, "Inventory fetched")
}
