package email

import (
	"fmt"
	"strings"

	internalConfig "github.com/daypanel/daypanel-backend/internal/config"
	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
	logger   *zap.SugaredLogger
}

func NewEmailService(cfg *internalConfig.Config, logger *zap.SugaredLogger) *EmailService {
	return &EmailService{
		client:   resend.NewClient(cfg.Email.ResendAPIKey),
		from:     cfg.Email.FromAddress,
		fromName: cfg.Email.FromName,
		logger:   logger,
	}
}

// SendDailyDigest mails a user the plain-text list of today's events.
func (s *EmailService) SendDailyDigest(to string, eventTitles []string) error {
	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: "Today's events",
		Text:    strings.Join(eventTitles, "\n"),
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Errorw("failed to send daily digest", "to", to, "error", err)
		return fmt.Errorf("failed to send digest email: %w", err)
	}

	s.logger.Infow("sent daily digest", "to", to, "id", resp.Id)
	return nil
}
