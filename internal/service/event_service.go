package service

import (
	"errors"
	"time"

	"github.com/daypanel/daypanel-backend/internal/models"
	"github.com/daypanel/daypanel-backend/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

// Accepted candidate date layouts; extraction usually emits plain dates
// but the model occasionally returns full timestamps.
var candidateDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
}

type EventService struct {
	eventRepo *repository.EventRepository
	logger    *zap.SugaredLogger
}

func NewEventService(eventRepo *repository.EventRepository, logger *zap.SugaredLogger) *EventService {
	return &EventService{eventRepo: eventRepo, logger: logger}
}

func (s *EventService) GetUserEvents(userID uint) ([]models.Event, error) {
	return s.eventRepo.GetByUserID(userID)
}

func (s *EventService) CreateEvent(userID uint, req models.EventRequest) (*models.Event, error) {
	date, ok := parseCandidateDate(req.Date)
	if !ok {
		return nil, errors.New("invalid date")
	}

	event := &models.Event{
		UserID: userID,
		Date:   &date,
		Title:  req.Title,
	}
	if err := s.eventRepo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent removes an event scoped to its owner. An event owned by
// another user is indistinguishable from a missing one.
func (s *EventService) DeleteEvent(id, userID uint) error {
	deleted, err := s.eventRepo.DeleteOwned(id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEventNotFound
	}
	return nil
}

// IngestExtracted persists AI-extracted candidates for a user,
// deduplicating on the (user, date, title) triple so re-ingesting the
// same photo is idempotent. Candidates without a usable date are
// dropped. Returns the user's full event list afterward.
func (s *EventService) IngestExtracted(candidates []models.ExtractedEvent, userID uint) ([]models.Event, error) {
	for _, candidate := range candidates {
		if candidate.Date == nil {
			continue
		}
		date, ok := parseCandidateDate(*candidate.Date)
		if !ok {
			s.logger.Warnw("dropping candidate with unusable date", "date", *candidate.Date, "event", candidate.Title)
			continue
		}

		_, err := s.eventRepo.FindByNaturalKey(userID, date, candidate.Title)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		event := &models.Event{
			UserID: userID,
			Date:   &date,
			Title:  candidate.Title,
		}
		if err := s.eventRepo.Create(event); err != nil {
			return nil, err
		}
	}

	return s.eventRepo.GetByUserID(userID)
}

func parseCandidateDate(value string) (time.Time, bool) {
	for _, layout := range candidateDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
