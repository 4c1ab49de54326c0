package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/daypanel/daypanel-backend/internal/models"
	"github.com/daypanel/daypanel-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupEventTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// unique in-memory DB per test name to avoid leakage via shared cache
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Event{}))
	return db
}

func newEventService(t *testing.T) *EventService {
	t.Helper()
	db := setupEventTestDB(t)
	return NewEventService(repository.NewEventRepository(db), zap.NewNop().Sugar())
}

func TestIngestExtractedIsIdempotent(t *testing.T) {
	svc := newEventService(t)

	date := "2025-07-04"
	candidates := []models.ExtractedEvent{
		{Date: &date, Title: "Fireworks"},
	}

	first, err := svc.IngestExtracted(candidates, 1)
	require.NoError(t, err)
	assert.Len(t, first, 1)

	// Re-ingesting the same photo must not duplicate the event.
	second, err := svc.IngestExtracted(candidates, 1)
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestIngestExtractedDropsNilDates(t *testing.T) {
	svc := newEventService(t)

	date := "2025-07-04"
	candidates := []models.ExtractedEvent{
		{Date: nil, Title: "Someday"},
		{Date: &date, Title: "Fireworks"},
	}

	events, err := svc.IngestExtracted(candidates, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Fireworks", events[0].Title)
}

func TestIngestExtractedScopedPerUser(t *testing.T) {
	svc := newEventService(t)

	date := "2025-07-04"
	candidates := []models.ExtractedEvent{{Date: &date, Title: "Fireworks"}}

	_, err := svc.IngestExtracted(candidates, 1)
	require.NoError(t, err)

	// The same (date, label) pair for another user is a distinct event.
	other, err := svc.IngestExtracted(candidates, 2)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, uint(2), other[0].UserID)
}

func TestIngestExtractedReturnsFullList(t *testing.T) {
	svc := newEventService(t)

	_, err := svc.CreateEvent(1, models.EventRequest{Date: "2025-01-01", Title: "Existing"})
	require.NoError(t, err)

	date := "2025-07-04"
	events, err := svc.IngestExtracted([]models.ExtractedEvent{{Date: &date, Title: "New"}}, 1)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestDeleteEventScopedToOwner(t *testing.T) {
	svc := newEventService(t)

	event, err := svc.CreateEvent(1, models.EventRequest{Date: "2025-03-10", Title: "Dentist"})
	require.NoError(t, err)

	// Another user cannot see or delete it.
	err = svc.DeleteEvent(event.ID, 2)
	assert.ErrorIs(t, err, ErrEventNotFound)

	require.NoError(t, svc.DeleteEvent(event.ID, 1))

	events, err := svc.GetUserEvents(1)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCreateEventParsesDate(t *testing.T) {
	svc := newEventService(t)

	event, err := svc.CreateEvent(1, models.EventRequest{Date: "2025-12-24", Title: "Christmas Eve"})
	require.NoError(t, err)
	require.NotNil(t, event.Date)
	assert.Equal(t, time.December, event.Date.Month())

	_, err = svc.CreateEvent(1, models.EventRequest{Date: "tomorrow-ish", Title: "Vague"})
	assert.Error(t, err)
}
