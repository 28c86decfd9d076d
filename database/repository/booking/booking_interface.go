package bookingRepo

import (
	"context"

	"aircnc/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Insert persists the booking as submitted and returns the generated id.
	Insert(ctx context.Context, booking models.Booking) (*models.InsertResult, error)
	// FindByGuestEmail returns bookings whose guest.email matches.
	FindByGuestEmail(ctx context.Context, email string) ([]models.Booking, error)
	// FindByHost returns bookings whose host matches.
	FindByHost(ctx context.Context, email string) ([]models.Booking, error)
	// DeleteByID removes a booking; a missing id yields DeletedCount 0.
	DeleteByID(ctx context.Context, id string) (*models.DeleteResult, error)
}
