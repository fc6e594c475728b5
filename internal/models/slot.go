package models

import "time"

// Slot is one dated window generated from a resource schedule. Rows are
// only inserted by the slot generator and never updated.
type Slot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Timestamp    time.Time `gorm:"not null;index" json:"timestamp"`
	TimestampEnd time.Time `gorm:"not null" json:"timestamp_end"`

	FormattedTimestamp    string `gorm:"size:64" json:"formatted_timestamp"`
	FormattedTimestampEnd string `gorm:"size:64" json:"formatted_timestamp_end"`

	Free bool `json:"free"`

	// Comma separated resource IDs. Not a foreign key.
	AvailableResources string `gorm:"size:255" json:"available_resources"`
	MaximumCapacity    int    `json:"maximum_capacity"`
}
