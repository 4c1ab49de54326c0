package models

import (
	"time"
)

type Event struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"user_id" gorm:"not null;index"`
	Date      *time.Time `json:"date"`
	Title     string     `json:"event" gorm:"not null"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type EventRequest struct {
	Date  string `json:"date" validate:"required"`
	Title string `json:"event" validate:"required"`
}

// ExtractedEvent is a (date, label) candidate produced by the image
// extraction model. Date stays nil when the note carried no usable date.
type ExtractedEvent struct {
	Date  *string `json:"date"`
	Title string  `json:"event"`
}
