package services

import (
	"sort"

	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

// EvenSplit divides totalBudget equally across the requested categories.
// Integer division leaves a remainder of at most len(categories)-1 units; it
// goes in full to the first requested category in canonical order so the
// allocation always sums to totalBudget exactly.
func EvenSplit(totalBudget int64, categories []repositories.Category) (map[repositories.Category]int64, error) {
	subset := canonicalSubset(categories)
	if len(subset) == 0 {
		return nil, utils.ErrEmptyCategorySet
	}

	n := int64(len(subset))
	share := totalBudget / n
	allocation := make(map[repositories.Category]int64, len(subset))
	for _, c := range subset {
		allocation[c] = share
	}
	allocation[subset[0]] += totalBudget - share*n
	return allocation, nil
}

// WeightedSplit allocates floor(totalBudget*w/sum(w)) per category, then
// hands out the remainder one unit at a time in descending weight order
// (ties in canonical order) until the sum is exact. Integer arithmetic
// throughout: floating-point proportional rounding would drift off the
// exact-sum invariant.
func WeightedSplit(totalBudget int64, categories []repositories.Category, weights map[repositories.Category]int64) (map[repositories.Category]int64, error) {
	subset := canonicalSubset(categories)
	if len(subset) == 0 {
		return nil, utils.ErrEmptyCategorySet
	}

	var sum int64
	for _, c := range subset {
		w := weights[c]
		if w < 0 {
			return nil, utils.ErrInvalidWeights
		}
		sum += w
	}
	if sum == 0 {
		return nil, utils.ErrInvalidWeights
	}

	allocation := make(map[repositories.Category]int64, len(subset))
	var allocated int64
	for _, c := range subset {
		share := totalBudget * weights[c] / sum
		allocation[c] = share
		allocated += share
	}

	order := make([]repositories.Category, len(subset))
	copy(order, subset)
	sort.SliceStable(order, func(i, j int) bool {
		return weights[order[i]] > weights[order[j]]
	})

	for remainder := totalBudget - allocated; remainder > 0; {
		for _, c := range order {
			allocation[c]++
			remainder--
			if remainder == 0 {
				break
			}
		}
	}
	return allocation, nil
}

// canonicalSubset dedupes categories and fixes their order to the canonical
// one: flights, hotels, trains, buses, attractions.
func canonicalSubset(categories []repositories.Category) []repositories.Category {
	requested := make(map[repositories.Category]bool, len(categories))
	for _, c := range categories {
		requested[c] = true
	}
	out := make([]repositories.Category, 0, len(requested))
	for _, c := range repositories.CanonicalOrder {
		if requested[c] {
			out = append(out, c)
		}
	}
	return out
}
