package db_models

import "github.com/lib/pq"

type Hotel struct {
	BaseModel
	HotelID          string `gorm:"uniqueIndex;size:16"` // e.g. "HT1042"
	Name             string
	City             string `gorm:"index"`
	Address          string
	StarRating       float64        // 0–5
	PricePerNightINR int64          `gorm:"column:price_per_night_inr"`
	Amenities        pq.StringArray `gorm:"type:text[]"`
	AvailableRooms   int
}
