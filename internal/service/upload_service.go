package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/daypanel/daypanel-backend/internal/middleware"
	"github.com/daypanel/daypanel-backend/internal/models"
	"go.uber.org/zap"
)

// ErrExtractionDisabled means no AI key is configured; the upload
// feature is off while the rest of the process keeps serving.
var ErrExtractionDisabled = errors.New("image parsing is not configured")

// EventExtractor turns a note image into (date, event) candidates.
type EventExtractor interface {
	ExtractEvents(ctx context.Context, mimeType string, data []byte) ([]models.ExtractedEvent, error)
}

// UploadArchiver stores the raw uploaded image. Archival is
// best-effort: failures are logged and never fail the request.
type UploadArchiver interface {
	Upload(ctx context.Context, key, contentType string, data []byte) error
}

// UploadResult is the outcome of one image upload. Anonymous callers
// get the transient candidates back; authenticated callers get their
// full event list after ingestion.
type UploadResult struct {
	Authenticated bool
	Candidates    []models.ExtractedEvent
	Events        []models.Event
}

type UploadService struct {
	extractor    EventExtractor // nil when GEMINI_API_KEY is absent
	archiver     UploadArchiver // nil when R2 is not configured
	eventService *EventService
	logger       *zap.SugaredLogger
}

func NewUploadService(extractor EventExtractor, archiver UploadArchiver, eventService *EventService, logger *zap.SugaredLogger) *UploadService {
	return &UploadService{
		extractor:    extractor,
		archiver:     archiver,
		eventService: eventService,
		logger:       logger,
	}
}

func (s *UploadService) ProcessImage(ctx context.Context, filename, mimeType string, data []byte, principal *middleware.Principal) (*UploadResult, error) {
	if s.extractor == nil {
		return nil, ErrExtractionDisabled
	}

	if s.archiver != nil {
		key := fmt.Sprintf("uploads/%d-%s", time.Now().UnixNano(), filename)
		if err := s.archiver.Upload(ctx, key, mimeType, data); err != nil {
			s.logger.Warnw("failed to archive upload", "key", key, "error", err)
		}
	}

	candidates, err := s.extractor.ExtractEvents(ctx, mimeType, data)
	if err != nil {
		return nil, err
	}

	if principal == nil {
		return &UploadResult{Authenticated: false, Candidates: candidates}, nil
	}

	events, err := s.eventService.IngestExtracted(candidates, principal.ID)
	if err != nil {
		return nil, err
	}

	return &UploadResult{Authenticated: true, Events: events}, nil
}
