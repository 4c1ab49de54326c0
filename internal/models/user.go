package models

import (
	"time"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"`
	City      *string   `json:"city"`
	Region    *string   `json:"region"`
	Country   *string   `json:"country"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasCountry reports whether the profile can drive a holiday lookup.
func (u *User) HasCountry() bool {
	return u.Country != nil && *u.Country != ""
}

// HasCoordinates reports whether the profile carries the full location
// quadruple needed for a weather lookup.
func (u *User) HasCoordinates() bool {
	return u.Latitude != nil && u.Longitude != nil &&
		u.City != nil && *u.City != "" &&
		u.Region != nil && *u.Region != ""
}
