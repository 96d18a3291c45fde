package db_models

import "time"

type Flight struct {
	BaseModel
	FlightID        string `gorm:"uniqueIndex;size:16"` // business id, e.g. "FL10042"
	Airline         string
	Origin          string `gorm:"index"`
	Destination     string `gorm:"index"`
	DepartureTime   time.Time
	ArrivalTime     time.Time
	DurationMinutes int
	PriceINR        int64
	SeatsAvailable  int
}
