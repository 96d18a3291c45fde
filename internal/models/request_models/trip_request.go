package request_models

// TripRequest is the payload the page layer posts to /api/search.
// Dates are "2006-01-02" (RFC 3339 also accepted). Destination may be empty
// when only hotels or attractions are requested. An empty Categories slice
// means all five categories.
type TripRequest struct {
	Origin         string           `json:"origin"`
	Destination    string           `json:"destination"`
	StartDate      string           `json:"startDate" binding:"required"`
	EndDate        string           `json:"endDate" binding:"required"`
	TotalBudget    int64            `json:"totalBudget" binding:"required,gt=0"`
	Categories     []string         `json:"categories"`
	SortKey        string           `json:"sortKey"`
	Weights        map[string]int64 `json:"weights"`
	MaxItemPrice   int64            `json:"maxItemPrice" binding:"omitempty,gte=0"`
	IncludeSoldOut bool             `json:"includeSoldOut"`
}
