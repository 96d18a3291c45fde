package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDFrom(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP status codes.
// Validation failures are 400, allocation-input failures are 422, lookups 404,
// a store timeout that survived the retry is 504.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidRoute),
		errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrInvalidSort),
		errors.Is(err, ErrInvalidPage),
		errors.Is(err, ErrInvalidExpense):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidWeights),
		errors.Is(err, ErrEmptyCategorySet):
		RespondError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrPlanNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrStoreTimeout):
		RespondError(c, http.StatusGatewayTimeout, err.Error())
	case errors.Is(err, ErrDatabaseError):
		RespondError(c, http.StatusInternalServerError, "internal server error")
	default:
		RespondError(c, http.StatusInternalServerError, "internal server error")
	}
}
