package repository

import (
	"time"

	"github.com/daypanel/daypanel-backend/internal/models"
	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *EventRepository) GetByUserID(userID uint) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("user_id = ?", userID).Find(&events).Error
	return events, err
}

// FindByNaturalKey looks up an event by its (user, date, title) triple,
// the dedup key for AI ingestion. gorm.ErrRecordNotFound means no match.
func (r *EventRepository) FindByNaturalKey(userID uint, date time.Time, title string) (*models.Event, error) {
	var event models.Event
	err := r.db.Where("user_id = ? AND date = ? AND title = ?", userID, date, title).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// DeleteOwned removes an event only when it belongs to userID and
// reports whether a row was actually deleted.
func (r *EventRepository) DeleteOwned(id, userID uint) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Event{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindInWindow returns every event dated inside [start, end), across all
// users. The daily digest groups the result per user.
func (r *EventRepository) FindInWindow(start, end time.Time) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("date >= ? AND date < ?", start, end).Find(&events).Error
	return events, err
}
