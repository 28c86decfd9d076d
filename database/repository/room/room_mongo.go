package roomRepo

import (
	"context"
	"fmt"
	"time"

	"aircnc/database/repository"
	"aircnc/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MongoRoomRepo implements RoomRepository using MongoDB.
type MongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo creates a new instance of RoomRepository using MongoDB.
func NewMongoRoomRepo(db *mongo.Database, logger *zap.Logger) RoomRepository {
	repo := &MongoRoomRepo{coll: db.Collection(repository.RoomsCollection)}
	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("failed to create room indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoRoomRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: models.RoomHostEmailField, Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoRoomRepo) Insert(ctx context.Context, room models.Room) (*models.InsertResult, error) {
	ctx, cancel := repository.NewContext(ctx)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, room)
	if err != nil {
		return nil, fmt.Errorf("failed to insert room: %w", err)
	}
	return repository.InsertResult(res), nil
}

func (r *MongoRoomRepo) FindAll(ctx context.Context) ([]models.Room, error) {
	ctx, cancel := repository.NewContext(ctx)
	defer cancel()

	rooms, err := repository.FindDocuments(ctx, r.coll, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

func (r *MongoRoomRepo) FindByID(ctx context.Context, id string) (models.Room, error) {
	oid, err := repository.ObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := repository.NewContext(ctx)
	defer cancel()

	room, err := repository.FindDocument(ctx, r.coll, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room %s: %w", id, err)
	}
	return room, nil
}

func (r *MongoRoomRepo) FindByHostEmail(ctx context.Context, email string) ([]models.Room, error) {
	ctx, cancel := repository.NewContext(ctx)
	defer cancel()

	rooms, err := repository.FindDocuments(ctx, r.coll, bson.M{models.RoomHostEmailField: email})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms for host %s: %w", email, err)
	}
	return rooms, nil
}

func (r *MongoRoomRepo) SetBooked(ctx context.Context, id string, booked bool) (*models.UpdateResult, error) {
	oid, err := repository.ObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := repository.NewContext(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{models.RoomBookedField: booked}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update room %s status: %w", id, err)
	}
	return repository.UpdateResult(res), nil
}

func (r *MongoRoomRepo) DeleteByID(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := repository.ObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := repository.NewContext(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to delete room %s: %w", id, err)
	}
	return repository.DeleteResult(res), nil
}
