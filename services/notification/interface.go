package notification

import (
	"context"
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// NotificationService sends one-off emails without blocking the caller.
type NotificationService interface {
	// Send starts delivery and returns immediately. It never fails: an empty
	// recipient is logged and skipped, transport errors are logged.
	Send(subject, message, recipient string)
	// Wait blocks until in-flight sends finish or ctx is done.
	Wait(ctx context.Context) error
}

// Mailer delivers a single HTML email.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

const defaultSendTimeout = 30 * time.Second

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	mailer      Mailer
	logger      *zap.Logger
	sendTimeout time.Duration
	wg          sync.WaitGroup
}

func NewDefaultNotificationService(mailer Mailer, logger *zap.Logger) (*DefaultNotificationService, error) {
	if mailer == nil || logger == nil {
		return nil, fmt.Errorf("notification service initialization error: mailer or logger is nil")
	}
	return &DefaultNotificationService{
		mailer:      mailer,
		logger:      logger,
		sendTimeout: defaultSendTimeout,
	}, nil
}

func (s *DefaultNotificationService) Send(subject, message, recipient string) {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		s.logger.Warn("notification skipped: no recipient", zap.String("subject", subject))
		return
	}

	body := "<p>" + html.EscapeString(message) + "</p>"

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("notification panicked", zap.String("to", recipient), zap.Any("panic", r))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), s.sendTimeout)
		defer cancel()

		if err := s.mailer.Send(ctx, recipient, subject, body); err != nil {
			s.logger.Error("failed to send email",
				zap.String("to", recipient),
				zap.String("subject", subject),
				zap.Error(err))
			return
		}
		s.logger.Info("email sent", zap.String("to", recipient), zap.String("subject", subject))
	}()
}

func (s *DefaultNotificationService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for notifications: %w", ctx.Err())
	}
}
