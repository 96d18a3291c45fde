package services

import (
	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
)

const DefaultTopK = 5

// Aggregate merges per-category search results into one candidate list
// within the remaining budget envelope. Per category it drops items priced
// above that category's remaining allocation and keeps at most topK
// survivors in their search rank; the merged list is ordered by canonical
// category order first, search rank second. Categories are not compared by
// price against each other — a flight and a hotel room are not substitutes,
// so no global score exists.
//
// An empty result is a valid "budget infeasible with current allocation"
// answer, not an error.
func Aggregate(results map[repositories.Category]response_models.CategoryResult,
	remaining map[repositories.Category]int64, topK int) []repositories.InventoryItem {

	if topK <= 0 {
		topK = DefaultTopK
	}

	candidates := make([]repositories.InventoryItem, 0)
	for _, c := range repositories.CanonicalOrder {
		result, ok := results[c]
		if !ok || result.Failed {
			continue
		}
		envelope := remaining[c]

		kept := 0
		for _, it := range result.Items {
			if it.PriceINR > envelope {
				continue
			}
			candidates = append(candidates, it)
			kept++
			if kept == topK {
				break
			}
		}
	}
	return candidates
}
