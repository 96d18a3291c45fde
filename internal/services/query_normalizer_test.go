package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatra/internal/models/request_models"
	"yatra/internal/repositories"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

func validTripRequest() request_models.TripRequest {
	return request_models.TripRequest{
		Origin:      "Mumbai",
		Destination: "Goa",
		StartDate:   "2026-10-01",
		EndDate:     "2026-10-07",
		TotalBudget: 50000,
	}
}

func TestNormalize_DefaultsToAllCategories(t *testing.T) {
	predicates, err := services.NormalizeTripRequest(validTripRequest())

	require.NoError(t, err)
	assert.Len(t, predicates, 5)
	for _, c := range repositories.CanonicalOrder {
		assert.Contains(t, predicates, c)
	}
}

func TestNormalize_RouteBasedPredicates(t *testing.T) {
	predicates, err := services.NormalizeTripRequest(validTripRequest())
	require.NoError(t, err)

	flights := predicates[repositories.CategoryFlights]
	assert.Equal(t, "Mumbai", flights.Origin)
	assert.Equal(t, "Goa", flights.Destination)
	require.NotNil(t, flights.DateFrom)
	require.NotNil(t, flights.DateTo)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), *flights.DateFrom)
	// Window end is exclusive: the day after the trip ends.
	assert.Equal(t, time.Date(2026, 10, 8, 0, 0, 0, 0, time.UTC), *flights.DateTo)
	assert.Nil(t, flights.MaxPriceINR)
}

func TestNormalize_StationaryCategoriesMatchDestinationCity(t *testing.T) {
	predicates, err := services.NormalizeTripRequest(validTripRequest())
	require.NoError(t, err)

	hotels := predicates[repositories.CategoryHotels]
	assert.Equal(t, "Goa", hotels.City)
	assert.Empty(t, hotels.Origin)
	assert.Nil(t, hotels.DateFrom)

	attractions := predicates[repositories.CategoryAttractions]
	assert.Equal(t, "Goa", attractions.City)
}

func TestNormalize_SameOriginAndDestination(t *testing.T) {
	req := validTripRequest()
	req.Destination = "Mumbai"

	_, err := services.NormalizeTripRequest(req)
	assert.ErrorIs(t, err, utils.ErrInvalidRoute)
}

func TestNormalize_MissingDestinationForRouteCategory(t *testing.T) {
	req := validTripRequest()
	req.Destination = ""
	req.Categories = []string{"flights"}

	_, err := services.NormalizeTripRequest(req)
	assert.ErrorIs(t, err, utils.ErrInvalidRoute)
}

func TestNormalize_MissingDestinationAllowedForAttractions(t *testing.T) {
	req := validTripRequest()
	req.Destination = ""
	req.Categories = []string{"attractions", "hotels"}

	predicates, err := services.NormalizeTripRequest(req)
	require.NoError(t, err)
	assert.Len(t, predicates, 2)
	assert.Empty(t, predicates[repositories.CategoryHotels].City)
}

func TestNormalize_EndBeforeStart(t *testing.T) {
	req := validTripRequest()
	req.StartDate = "2026-10-07"
	req.EndDate = "2026-10-01"

	_, err := services.NormalizeTripRequest(req)
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)
}

func TestNormalize_SingleDayTripIsValid(t *testing.T) {
	req := validTripRequest()
	req.EndDate = req.StartDate

	_, err := services.NormalizeTripRequest(req)
	assert.NoError(t, err)
}

func TestNormalize_UnparseableDate(t *testing.T) {
	req := validTripRequest()
	req.StartDate = "not-a-date"

	_, err := services.NormalizeTripRequest(req)
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)
}

func TestNormalize_UnknownCategory(t *testing.T) {
	req := validTripRequest()
	req.Categories = []string{"cruises"}

	_, err := services.NormalizeTripRequest(req)
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)
}

func TestNormalize_MaxItemPriceCeiling(t *testing.T) {
	req := validTripRequest()
	req.MaxItemPrice = 4000

	predicates, err := services.NormalizeTripRequest(req)
	require.NoError(t, err)

	hotels := predicates[repositories.CategoryHotels]
	require.NotNil(t, hotels.MaxPriceINR)
	assert.Equal(t, int64(4000), *hotels.MaxPriceINR)
}
