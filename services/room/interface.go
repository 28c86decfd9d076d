package room

import (
	"context"

	roomRepo "aircnc/database/repository/room"
	"aircnc/models"

	"go.uber.org/zap"
)

// RoomService manages listings and their booked flag. The flag is independent of
// booking records; callers sequence the two writes themselves.
type RoomService interface {
	CreateRoom(ctx context.Context, room models.Room) (*models.InsertResult, error)
	ListAll(ctx context.Context) ([]models.Room, error)
	// GetByID returns nil, nil when the room does not exist.
	GetByID(ctx context.Context, id string) (models.Room, error)
	ListByHostEmail(ctx context.Context, email string) ([]models.Room, error)
	SetBookedStatus(ctx context.Context, id string, booked bool) (*models.UpdateResult, error)
	DeleteRoom(ctx context.Context, id string) (*models.DeleteResult, error)
}

// DefaultRoomService implements RoomService.
type DefaultRoomService struct {
	Repo   roomRepo.RoomRepository
	Logger *zap.Logger
}
