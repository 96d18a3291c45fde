package services

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

const (
	SortByPrice    = "price"
	SortByDuration = "duration"
	SortByRating   = "rating"

	MaxPageSize = 100
)

// ValidateSortKey accepts the recognized sort keys; an empty key defaults to
// price at the call sites.
func ValidateSortKey(sortKey string) error {
	switch sortKey {
	case SortByPrice, SortByDuration, SortByRating:
		return nil
	}
	return utils.ErrInvalidSort
}

type SearchServiceInterface interface {
	Search(ctx context.Context, category repositories.Category, predicate repositories.Predicate,
		sortKey string, page, pageSize int, includeSoldOut bool) ([]repositories.InventoryItem, int64, error)
}

type SearchService struct {
	inventoryRepo repositories.InventoryRepository
	logger        *zap.Logger
}

func NewSearchService(inventoryRepo repositories.InventoryRepository, logger *zap.Logger) SearchServiceInterface {
	return &SearchService{
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

// Search runs a predicate-filtered, ranked, paginated retrieval for one
// category. Sold-out rows (capacity zero) are hidden unless the caller opts
// in. A store timeout is retried once with the same predicate before being
// surfaced. The returned total counts all filtered results, not just the
// requested page; a page past the end yields an empty slice, not an error.
func (s *SearchService) Search(ctx context.Context, category repositories.Category, predicate repositories.Predicate,
	sortKey string, page, pageSize int, includeSoldOut bool) ([]repositories.InventoryItem, int64, error) {

	if sortKey == "" {
		sortKey = SortByPrice
	}
	if err := ValidateSortKey(sortKey); err != nil {
		return nil, 0, err
	}
	if page < 1 || pageSize < 1 || pageSize > MaxPageSize {
		return nil, 0, utils.ErrInvalidPage
	}

	items, _, err := s.inventoryRepo.Fetch(ctx, category, predicate)
	if errors.Is(err, utils.ErrStoreTimeout) {
		s.logger.Warn("inventory fetch timed out, retrying once",
			zap.String("category", string(category)))
		items, _, err = s.inventoryRepo.Fetch(ctx, category, predicate)
	}
	if err != nil {
		if errors.Is(err, utils.ErrStoreTimeout) || errors.Is(err, utils.ErrCategoryNotFound) {
			return nil, 0, err
		}
		s.logger.Error("inventory fetch failed",
			zap.String("category", string(category)), zap.Error(err))
		return nil, 0, utils.ErrDatabaseError
	}

	if !includeSoldOut {
		available := items[:0]
		for _, it := range items {
			if it.Capacity > 0 {
				available = append(available, it)
			}
		}
		items = available
	}

	rankItems(items, sortKey)

	total := int64(len(items))
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []repositories.InventoryItem{}, total, nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total, nil
}

// rankItems sorts by the requested key — price ascending, duration ascending
// or rating descending — breaking ties by identifier ascending so repeated
// calls paginate identically.
func rankItems(items []repositories.InventoryItem, sortKey string) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch sortKey {
		case SortByDuration:
			if a.DurationMinutes != b.DurationMinutes {
				return a.DurationMinutes < b.DurationMinutes
			}
		case SortByRating:
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
		default:
			if a.PriceINR != b.PriceINR {
				return a.PriceINR < b.PriceINR
			}
		}
		return a.ID < b.ID
	})
}
