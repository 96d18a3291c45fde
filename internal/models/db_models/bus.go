package db_models

import "time"

type Bus struct {
	BaseModel
	BusID           string `gorm:"uniqueIndex;size:16"` // e.g. "BUS8042"
	Operator        string
	BusType         string
	Origin          string `gorm:"index"`
	Destination     string `gorm:"index"`
	DepartureTime   time.Time
	ArrivalTime     time.Time
	DurationMinutes int
	PriceINR        int64
	SeatsAvailable  int
}
