package utils

import "errors"

var (
	ErrInvalidRoute     = errors.New("origin and destination must be distinct non-empty cities")
	ErrInvalidDateRange = errors.New("invalid trip date range")
	ErrInvalidSort      = errors.New("invalid sort key")
	ErrInvalidPage      = errors.New("invalid page parameters")
	ErrInvalidWeights   = errors.New("invalid allocation weights")
	ErrEmptyCategorySet = errors.New("empty category set")
	ErrInvalidExpense   = errors.New("expense amount must be positive")
	ErrCategoryNotFound = errors.New("unknown inventory category")
	ErrPlanNotFound     = errors.New("budget plan not found")
	ErrStoreTimeout     = errors.New("inventory store timed out")
	ErrDatabaseError    = errors.New("database error")
)
