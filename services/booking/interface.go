package booking

import (
	"context"

	bookingRepo "aircnc/database/repository/booking"
	"aircnc/models"
	"aircnc/services/notification"

	"go.uber.org/zap"
)

// BookingService coordinates booking persistence with guest and host notifications.
type BookingService interface {
	// CreateBooking persists the payload as submitted, then notifies guest and host.
	// Notification outcome never affects the result.
	CreateBooking(ctx context.Context, booking models.Booking) (*models.InsertResult, error)
	// ListByGuest returns an empty list when email is empty.
	ListByGuest(ctx context.Context, email string) ([]models.Booking, error)
	// ListByHost returns an empty list when email is empty.
	ListByHost(ctx context.Context, email string) ([]models.Booking, error)
	// DeleteBooking does not check existence; a missing id yields DeletedCount 0.
	DeleteBooking(ctx context.Context, id string) (*models.DeleteResult, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	Notification notification.NotificationService
	Logger       *zap.Logger
}
