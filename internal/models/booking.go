package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ResourceID uint     `gorm:"not null;index" json:"resource_id"`
	Resource   Resource `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	BookedFrom time.Time `gorm:"not null" json:"booked_from"`
	BookedTo   time.Time `gorm:"not null" json:"booked_to"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
