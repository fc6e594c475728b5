package models

import "time"

type Resource struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Title  string `gorm:"size:100;not null" json:"title"`
	Active bool   `gorm:"not null" json:"active"`

	// Slot length in minutes.
	Intervals int `gorm:"not null;default:15" json:"intervals"`

	OpeningHoursMon string `gorm:"size:23" json:"opening_hours_mon"`
	OpeningHoursTue string `gorm:"size:23" json:"opening_hours_tue"`
	OpeningHoursWed string `gorm:"size:23" json:"opening_hours_wed"`
	OpeningHoursThu string `gorm:"size:23" json:"opening_hours_thu"`
	OpeningHoursFri string `gorm:"size:23" json:"opening_hours_fri"`
	OpeningHoursSat string `gorm:"size:23" json:"opening_hours_sat"`
	OpeningHoursSun string `gorm:"size:23" json:"opening_hours_sun"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OpeningHours returns the schedule string configured for the weekday.
func (r *Resource) OpeningHours(day time.Weekday) string {
	switch day {
	case time.Monday:
		return r.OpeningHoursMon
	case time.Tuesday:
		return r.OpeningHoursTue
	case time.Wednesday:
		return r.OpeningHoursWed
	case time.Thursday:
		return r.OpeningHoursThu
	case time.Friday:
		return r.OpeningHoursFri
	case time.Saturday:
		return r.OpeningHoursSat
	case time.Sunday:
		return r.OpeningHoursSun
	}
	return ""
}

// WeeklyOpeningHours lists the schedule of every weekday, Monday first.
func (r *Resource) WeeklyOpeningHours() []string {
	return []string{
		r.OpeningHoursMon,
		r.OpeningHoursTue,
		r.OpeningHoursWed,
		r.OpeningHoursThu,
		r.OpeningHoursFri,
		r.OpeningHoursSat,
		r.OpeningHoursSun,
	}
}
