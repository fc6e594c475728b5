package models

import "time"

type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Email       string `gorm:"size:100;not null" json:"email"`
	Phonenumber string `gorm:"size:20" json:"phonenumber"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
