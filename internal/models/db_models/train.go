package db_models

import "time"

type Train struct {
	BaseModel
	TrainID         string `gorm:"uniqueIndex;size:16"` // e.g. "TR12042"
	Name            string
	Origin          string `gorm:"index"`
	Destination     string `gorm:"index"`
	DepartureTime   time.Time
	ArrivalTime     time.Time
	DurationMinutes int
	PriceINR        int64
	SeatsAvailable  int
}
