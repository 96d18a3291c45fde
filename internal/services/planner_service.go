package services

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"yatra/internal/models/db_models"
	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

// searchPageSize bounds the per-category fetch for a trip search; the
// aggregator keeps at most topK of these, so one page is always enough.
const searchPageSize = 50

type PlannerServiceInterface interface {
	PlanTrip(ctx context.Context, req request_models.TripRequest) (*response_models.TripPlanResponse, error)
}

type PlannerService struct {
	searchService SearchServiceInterface
	budgetService BudgetServiceInterface
	logger        *zap.Logger
	topK          int
}

func NewPlannerService(searchService SearchServiceInterface, budgetService BudgetServiceInterface,
	logger *zap.Logger, topK int) PlannerServiceInterface {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &PlannerService{
		searchService: searchService,
		budgetService: budgetService,
		logger:        logger,
		topK:          topK,
	}
}

// PlanTrip runs the full pipeline: normalize the request, split the budget,
// search every requested category in parallel, then aggregate the survivors
// into one candidate list.
//
// The category searches are independent, so they fan out concurrently and
// join before aggregation. A category whose store access fails after retry
// comes back empty with its Failed flag set while the others still return —
// one slow table never takes down the whole request.
func (p *PlannerService) PlanTrip(ctx context.Context, req request_models.TripRequest) (*response_models.TripPlanResponse, error) {
	sortKey := req.SortKey
	if sortKey == "" {
		sortKey = SortByPrice
	}
	if err := ValidateSortKey(sortKey); err != nil {
		return nil, err
	}

	predicates, err := NormalizeTripRequest(req)
	if err != nil {
		return nil, err
	}

	categories := make([]repositories.Category, 0, len(predicates))
	for _, c := range repositories.CanonicalOrder {
		if _, ok := predicates[c]; ok {
			categories = append(categories, c)
		}
	}

	policy := db_models.PolicyEven
	var weights map[repositories.Category]int64
	if len(req.Weights) > 0 {
		policy = db_models.PolicyWeighted
		weights = make(map[repositories.Category]int64, len(req.Weights))
		for name, w := range req.Weights {
			c, err := repositories.ParseCategory(name)
			if err != nil {
				return nil, err
			}
			weights[c] = w
		}
	}

	plan, err := p.budgetService.Allocate(ctx, req.TotalBudget, categories, policy, weights)
	if err != nil {
		return nil, err
	}

	results := make(map[repositories.Category]response_models.CategoryResult, len(categories))
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, c := range categories {
		c := c
		g.Go(func() error {
			items, total, searchErr := p.searchService.Search(
				gctx, c, predicates[c], sortKey, 1, searchPageSize, req.IncludeSoldOut)

			mu.Lock()
			defer mu.Unlock()
			if searchErr != nil {
				if !errors.Is(searchErr, utils.ErrStoreTimeout) {
					p.logger.Error("category search failed",
						zap.String("category", string(c)), zap.Error(searchErr))
				}
				results[c] = response_models.CategoryResult{
					Items:  []repositories.InventoryItem{},
					Failed: true,
				}
				return nil
			}
			results[c] = response_models.CategoryResult{Items: items, Total: total}
			return nil
		})
	}
	// Goroutines report per-category failures through the results map, so
	// Wait cannot return an error here.
	_ = g.Wait()

	remaining := make(map[repositories.Category]int64, len(plan.Allocation))
	for name, amount := range plan.Allocation {
		remaining[repositories.Category(name)] = amount
	}
	candidates := Aggregate(results, remaining, p.topK)

	named := make(map[string]response_models.CategoryResult, len(results))
	for c, result := range results {
		named[string(c)] = result
	}
	return &response_models.TripPlanResponse{
		Results:      named,
		TotalBudget:  req.TotalBudget,
		Allocation:   plan.Allocation,
		AllocationID: plan.ID,
		Candidates:   candidates,
	}, nil
}
