package db_models

type Attraction struct {
	BaseModel
	AttractionID string `gorm:"uniqueIndex;size:16"` // e.g. "AT2042"
	Name         string
	City         string `gorm:"index"`
	Category     string
	Description  string
	EntryFeeINR  int64
	OpeningHours string
	// Zero means sold out for the day but still displayable.
	DailyCapacity int
}
