package booking

import (
	"context"
	"fmt"

	"aircnc/models"

	"go.uber.org/zap"
)

const (
	GuestConfirmationSubject = "Booking successful"
	HostConfirmationSubject  = "Your room got booked"
)

func (s *DefaultBookingService) CreateBooking(ctx context.Context, booking models.Booking) (*models.InsertResult, error) {
	if booking == nil {
		booking = models.Booking{}
	}

	result, err := s.Repo.Insert(ctx, booking)
	if err != nil {
		s.Logger.Error("failed to persist booking", zap.Error(err))
		return nil, fmt.Errorf("create booking: %w", err)
	}

	bookingID := models.IDString(result.InsertedID)
	message := confirmationMessage(bookingID, models.TransactionID(booking))
	s.Logger.Info("booking created",
		zap.String("bookingId", bookingID),
		zap.String("transactionId", models.TransactionID(booking)))

	s.Notification.Send(GuestConfirmationSubject, message, models.GuestEmail(booking))
	s.Notification.Send(HostConfirmationSubject, message, models.HostEmail(booking))

	return result, nil
}

func confirmationMessage(bookingID, transactionID string) string {
	return fmt.Sprintf("Booking Id : %s, Transaction Id : %s", bookingID, transactionID)
}

func (s *DefaultBookingService) ListByGuest(ctx context.Context, email string) ([]models.Booking, error) {
	if email == "" {
		return []models.Booking{}, nil
	}
	bookings, err := s.Repo.FindByGuestEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list guest bookings: %w", err)
	}
	return nonNil(bookings), nil
}

func (s *DefaultBookingService) ListByHost(ctx context.Context, email string) ([]models.Booking, error) {
	if email == "" {
		return []models.Booking{}, nil
	}
	bookings, err := s.Repo.FindByHost(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list host bookings: %w", err)
	}
	return nonNil(bookings), nil
}

func (s *DefaultBookingService) DeleteBooking(ctx context.Context, id string) (*models.DeleteResult, error) {
	result, err := s.Repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete booking: %w", err)
	}
	if result.DeletedCount == 0 {
		s.Logger.Info("delete matched no booking", zap.String("bookingId", id))
	}
	return result, nil
}

func nonNil(bookings []models.Booking) []models.Booking {
	if bookings == nil {
		return []models.Booking{}
	}
	return bookings
}
