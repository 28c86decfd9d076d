package roomRepo

import (
	"context"

	"aircnc/models"
)

// RoomRepository defines methods for room data access.
type RoomRepository interface {
	Insert(ctx context.Context, room models.Room) (*models.InsertResult, error)
	FindAll(ctx context.Context) ([]models.Room, error)
	// FindByID returns nil, nil when no room has the id.
	FindByID(ctx context.Context, id string) (models.Room, error)
	FindByHostEmail(ctx context.Context, email string) ([]models.Room, error)
	// SetBooked unconditionally sets the booked flag.
	SetBooked(ctx context.Context, id string, booked bool) (*models.UpdateResult, error)
	DeleteByID(ctx context.Context, id string) (*models.DeleteResult, error)
}
