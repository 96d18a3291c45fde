package services

import (
	"strings"
	"time"

	"yatra/internal/models/request_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

const tripDateLayout = "2006-01-02"

// NormalizeTripRequest turns a trip request into per-category predicates.
// Pure: it does no I/O and touches no shared state.
//
// Route-based categories (flights, trains, buses) get the origin/destination
// pair and a departure window covering the trip dates; hotels and attractions
// are matched by destination city only. A zero MaxItemPrice means no price
// ceiling, never a ceiling of zero.
func NormalizeTripRequest(req request_models.TripRequest) (map[repositories.Category]repositories.Predicate, error) {
	start, err := parseTripDate(req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidDateRange
	}
	end, err := parseTripDate(req.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidDateRange
	}
	if start.After(end) {
		return nil, utils.ErrInvalidDateRange
	}

	categories, err := resolveCategories(req.Categories)
	if err != nil {
		return nil, err
	}

	origin := strings.TrimSpace(req.Origin)
	destination := strings.TrimSpace(req.Destination)

	var maxPrice *int64
	if req.MaxItemPrice > 0 {
		p := req.MaxItemPrice
		maxPrice = &p
	}

	// Departure must fall within the trip window; the end bound is exclusive
	// at the start of the day after the trip ends.
	windowEnd := end.AddDate(0, 0, 1)

	predicates := make(map[repositories.Category]repositories.Predicate, len(categories))
	for _, c := range categories {
		if c.RouteBased() {
			if origin == "" || destination == "" || strings.EqualFold(origin, destination) {
				return nil, utils.ErrInvalidRoute
			}
			predicates[c] = repositories.Predicate{
				Origin:      origin,
				Destination: destination,
				MaxPriceINR: maxPrice,
				DateFrom:    &start,
				DateTo:      &windowEnd,
			}
			continue
		}
		predicates[c] = repositories.Predicate{
			City:        destination,
			MaxPriceINR: maxPrice,
		}
	}
	return predicates, nil
}

func parseTripDate(s string) (time.Time, error) {
	if t, err := time.Parse(tripDateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// resolveCategories dedupes the requested names into canonical order; an
// empty request means all five categories.
func resolveCategories(names []string) ([]repositories.Category, error) {
	if len(names) == 0 {
		return repositories.CanonicalOrder, nil
	}
	requested := make(map[repositories.Category]bool, len(names))
	for _, n := range names {
		c, err := repositories.ParseCategory(strings.ToLower(strings.TrimSpace(n)))
		if err != nil {
			return nil, err
		}
		requested[c] = true
	}
	out := make([]repositories.Category, 0, len(requested))
	for _, c := range repositories.CanonicalOrder {
		if requested[c] {
			out = append(out, c)
		}
	}
	return out, nil
}
