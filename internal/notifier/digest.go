// Package notifier mails each user the list of their events for the
// day, once a day at midnight.
package notifier

import (
	"time"

	"github.com/daypanel/daypanel-backend/internal/repository"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DigestMailer sends one digest mail. Satisfied by email.EmailService.
type DigestMailer interface {
	SendDailyDigest(to string, eventTitles []string) error
}

type DailyDigest struct {
	eventRepo *repository.EventRepository
	userRepo  *repository.UserRepository
	mailer    DigestMailer
	logger    *zap.SugaredLogger
	cron      *cron.Cron
	now       func() time.Time
}

func NewDailyDigest(eventRepo *repository.EventRepository, userRepo *repository.UserRepository, mailer DigestMailer, logger *zap.SugaredLogger) *DailyDigest {
	return &DailyDigest{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		mailer:    mailer,
		logger:    logger,
		cron:      cron.New(),
		now:       time.Now,
	}
}

// Start schedules the digest at midnight server time.
func (d *DailyDigest) Start() error {
	if _, err := d.cron.AddFunc("0 0 * * *", d.Run); err != nil {
		return err
	}
	d.cron.Start()
	return nil
}

func (d *DailyDigest) Stop() {
	d.cron.Stop()
}

// Run mails every user their events dated today. Send failures are
// logged per user and never abort the batch.
func (d *DailyDigest) Run() {
	now := d.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)

	events, err := d.eventRepo.FindInWindow(start, end)
	if err != nil {
		d.logger.Errorw("digest: failed to load today's events", "error", err)
		return
	}
	if len(events) == 0 {
		return
	}

	byUser := make(map[uint][]string)
	for _, event := range events {
		byUser[event.UserID] = append(byUser[event.UserID], event.Title)
	}

	for userID, titles := range byUser {
		user, err := d.userRepo.GetByID(userID)
		if err != nil {
			// Orphaned events keep their row but have nobody to mail.
			continue
		}

		if err := d.mailer.SendDailyDigest(user.Email, titles); err != nil {
			d.logger.Errorw("digest: send failed", "user_id", userID, "error", err)
		}
	}
}
