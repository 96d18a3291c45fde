package repositories

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"yatra/internal/models/db_models"
	"yatra/pkg/utils"
)

type Category string

const (
	CategoryFlights     Category = "flights"
	CategoryHotels      Category = "hotels"
	CategoryTrains      Category = "trains"
	CategoryBuses       Category = "buses"
	CategoryAttractions Category = "attractions"
)

// CanonicalOrder is the fixed tie-break ordering used by the allocator and
// the aggregator.
var CanonicalOrder = []Category{
	CategoryFlights,
	CategoryHotels,
	CategoryTrains,
	CategoryBuses,
	CategoryAttractions,
}

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryFlights, CategoryHotels, CategoryTrains, CategoryBuses, CategoryAttractions:
		return Category(s), nil
	}
	return "", utils.ErrCategoryNotFound
}

// RouteBased reports whether the category connects an origin to a
// destination (and therefore carries departure/arrival times).
func (c Category) RouteBased() bool {
	return c == CategoryFlights || c == CategoryTrains || c == CategoryBuses
}

// Predicate is a conjunction of field constraints; zero values mean
// "unconstrained". A nil MaxPriceINR deliberately differs from zero: a free
// attraction still matches a zero ceiling.
type Predicate struct {
	Origin      string
	Destination string
	City        string
	MaxPriceINR *int64
	DateFrom    *time.Time
	DateTo      *time.Time // exclusive
	MinCapacity int
}

// InventoryItem is the common search view over the five inventory tables.
// Fields that a category lacks stay at their zero value (hotels have no
// duration, flights no star rating).
type InventoryItem struct {
	ID              string    `json:"id"`
	Category        Category  `json:"category"`
	Name            string    `json:"name"`
	Location        string    `json:"location"`
	Destination     string    `json:"destination,omitempty"`
	PriceINR        int64     `json:"price_inr"`
	Capacity        int       `json:"capacity"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	Rating          float64   `json:"rating,omitempty"`
	DepartureTime   time.Time `json:"departure_time,omitzero"`
	ArrivalTime     time.Time `json:"arrival_time,omitzero"`
	Details         string    `json:"details,omitempty"`
}

// InventoryRepository is the read-only store boundary. Fetch returns every
// row matching the predicate plus a stable total count; it never mutates
// inventory. The configured timeout bounds each call and expires with
// ErrStoreTimeout instead of hanging.
type InventoryRepository interface {
	Fetch(ctx context.Context, category Category, predicate Predicate) ([]InventoryItem, int64, error)
}

type inventoryRepository struct {
	db      *gorm.DB
	timeout time.Duration
	logger  *zap.Logger
}

func NewInventoryRepository(db *gorm.DB, timeout time.Duration, logger *zap.Logger) InventoryRepository {
	return &inventoryRepository{db: db, timeout: timeout, logger: logger}
}

func (r *inventoryRepository) Fetch(ctx context.Context, category Category, predicate Predicate) ([]InventoryItem, int64, error) {
	if _, err := ParseCategory(string(category)); err != nil {
		return nil, 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var (
		items []InventoryItem
		err   error
	)
	switch category {
	case CategoryFlights:
		items, err = r.fetchFlights(ctx, predicate)
	case CategoryHotels:
		items, err = r.fetchHotels(ctx, predicate)
	case CategoryTrains:
		items, err = r.fetchTrains(ctx, predicate)
	case CategoryBuses:
		items, err = r.fetchBuses(ctx, predicate)
	case CategoryAttractions:
		items, err = r.fetchAttractions(ctx, predicate)
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, 0, utils.ErrStoreTimeout
		}
		return nil, 0, err
	}

	valid := items[:0]
	for _, it := range items {
		if r.wellFormed(it) {
			valid = append(valid, it)
		}
	}
	return valid, int64(len(valid)), nil
}

// wellFormed validates rows at the store boundary so malformed seed data
// never reaches the search engine.
func (r *inventoryRepository) wellFormed(it InventoryItem) bool {
	ok := it.ID != "" && it.PriceINR >= 0 && it.Capacity >= 0
	if ok && it.Category.RouteBased() {
		ok = it.ArrivalTime.After(it.DepartureTime)
	}
	if !ok {
		r.logger.Warn("dropping malformed inventory row",
			zap.String("category", string(it.Category)),
			zap.String("id", it.ID))
	}
	return ok
}

func applyRoutePredicate(q *gorm.DB, p Predicate, priceColumn string) *gorm.DB {
	if p.Origin != "" {
		q = q.Where("origin = ?", p.Origin)
	}
	if p.Destination != "" {
		q = q.Where("destination = ?", p.Destination)
	}
	if p.MaxPriceINR != nil {
		q = q.Where(priceColumn+" <= ?", *p.MaxPriceINR)
	}
	if p.DateFrom != nil {
		q = q.Where("departure_time >= ?", *p.DateFrom)
	}
	if p.DateTo != nil {
		q = q.Where("departure_time < ?", *p.DateTo)
	}
	return q
}

func (r *inventoryRepository) fetchFlights(ctx context.Context, p Predicate) ([]InventoryItem, error) {
	var rows []db_models.Flight
	q := applyRoutePredicate(r.db.WithContext(ctx), p, "price_inr")
	if p.MinCapacity > 0 {
		q = q.Where("seats_available >= ?", p.MinCapacity)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]InventoryItem, 0, len(rows))
	for _, f := range rows {
		items = append(items, InventoryItem{
			ID:              f.FlightID,
			Category:        CategoryFlights,
			Name:            f.Airline,
			Location:        f.Origin,
			Destination:     f.Destination,
			PriceINR:        f.PriceINR,
			Capacity:        f.SeatsAvailable,
			DurationMinutes: f.DurationMinutes,
			DepartureTime:   f.DepartureTime,
			ArrivalTime:     f.ArrivalTime,
		})
	}
	return items, nil
}

func (r *inventoryRepository) fetchHotels(ctx context.Context, p Predicate) ([]InventoryItem, error) {
	var rows []db_models.Hotel
	q := r.db.WithContext(ctx).Model(&db_models.Hotel{})
	if p.City != "" {
		q = q.Where("city = ?", p.City)
	}
	if p.MaxPriceINR != nil {
		q = q.Where("price_per_night_inr <= ?", *p.MaxPriceINR)
	}
	if p.MinCapacity > 0 {
		q = q.Where("available_rooms >= ?", p.MinCapacity)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]InventoryItem, 0, len(rows))
	for _, h := range rows {
		items = append(items, InventoryItem{
			ID:       h.HotelID,
			Category: CategoryHotels,
			Name:     h.Name,
			Location: h.City,
			PriceINR: h.PricePerNightINR,
			Capacity: h.AvailableRooms,
			Rating:   h.StarRating,
			Details:  h.Address,
		})
	}
	return items, nil
}

func (r *inventoryRepository) fetchTrains(ctx context.Context, p Predicate) ([]InventoryItem, error) {
	var rows []db_models.Train
	q := applyRoutePredicate(r.db.WithContext(ctx), p, "price_inr")
	if p.MinCapacity > 0 {
		q = q.Where("seats_available >= ?", p.MinCapacity)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]InventoryItem, 0, len(rows))
	for _, t := range rows {
		items = append(items, InventoryItem{
			ID:              t.TrainID,
			Category:        CategoryTrains,
			Name:            t.Name,
			Location:        t.Origin,
			Destination:     t.Destination,
			PriceINR:        t.PriceINR,
			Capacity:        t.SeatsAvailable,
			DurationMinutes: t.DurationMinutes,
			DepartureTime:   t.DepartureTime,
			ArrivalTime:     t.ArrivalTime,
		})
	}
	return items, nil
}

func (r *inventoryRepository) fetchBuses(ctx context.Context, p Predicate) ([]InventoryItem, error) {
	var rows []db_models.Bus
	q := applyRoutePredicate(r.db.WithContext(ctx), p, "price_inr")
	if p.MinCapacity > 0 {
		q = q.Where("seats_available >= ?", p.MinCapacity)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]InventoryItem, 0, len(rows))
	for _, b := range rows {
		items = append(items, InventoryItem{
			ID:              b.BusID,
			Category:        CategoryBuses,
			Name:            b.Operator + " " + b.BusType,
			Location:        b.Origin,
			Destination:     b.Destination,
			PriceINR:        b.PriceINR,
			Capacity:        b.SeatsAvailable,
			DurationMinutes: b.DurationMinutes,
			DepartureTime:   b.DepartureTime,
			ArrivalTime:     b.ArrivalTime,
		})
	}
	return items, nil
}

func (r *inventoryRepository) fetchAttractions(ctx context.Context, p Predicate) ([]InventoryItem, error) {
	var rows []db_models.Attraction
	q := r.db.WithContext(ctx).Model(&db_models.Attraction{})
	if p.City != "" {
		q = q.Where("city = ?", p.City)
	}
	if p.MaxPriceINR != nil {
		q = q.Where("entry_fee_inr <= ?", *p.MaxPriceINR)
	}
	if p.MinCapacity > 0 {
		q = q.Where("daily_capacity >= ?", p.MinCapacity)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]InventoryItem, 0, len(rows))
	for _, a := range rows {
		items = append(items, InventoryItem{
			ID:       a.AttractionID,
			Category: CategoryAttractions,
			Name:     a.Name,
			Location: a.City,
			PriceINR: a.EntryFeeINR,
			Capacity: a.DailyCapacity,
			Details:  a.Description,
		})
	}
	return items, nil
}
