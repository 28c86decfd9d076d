package room

import (
	"context"
	"fmt"

	"aircnc/models"

	"go.uber.org/zap"
)

func (s *DefaultRoomService) CreateRoom(ctx context.Context, room models.Room) (*models.InsertResult, error) {
	if room == nil {
		room = models.Room{}
	}
	result, err := s.Repo.Insert(ctx, room)
	if err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}
	s.Logger.Info("room created", zap.String("roomId", models.IDString(result.InsertedID)))
	return result, nil
}

func (s *DefaultRoomService) ListAll(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return nonNil(rooms), nil
}

func (s *DefaultRoomService) GetByID(ctx context.Context, id string) (models.Room, error) {
	room, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	return room, nil
}

func (s *DefaultRoomService) ListByHostEmail(ctx context.Context, email string) ([]models.Room, error) {
	rooms, err := s.Repo.FindByHostEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list host rooms: %w", err)
	}
	return nonNil(rooms), nil
}

// SetBookedStatus sets the flag without checking that the room or any booking exists.
func (s *DefaultRoomService) SetBookedStatus(ctx context.Context, id string, booked bool) (*models.UpdateResult, error) {
	result, err := s.Repo.SetBooked(ctx, id, booked)
	if err != nil {
		return nil, fmt.Errorf("set room status: %w", err)
	}
	if result.MatchedCount == 0 {
		s.Logger.Info("status update matched no room", zap.String("roomId", id))
	}
	return result, nil
}

func (s *DefaultRoomService) DeleteRoom(ctx context.Context, id string) (*models.DeleteResult, error) {
	result, err := s.Repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete room: %w", err)
	}
	return result, nil
}

func nonNil(rooms []models.Room) []models.Room {
	if rooms == nil {
		return []models.Room{}
	}
	return rooms
}
