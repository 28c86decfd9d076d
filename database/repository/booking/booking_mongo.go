package bookingRepo

import (
	"context"
	"fmt"

	"aircnc/database/repository"
	"aircnc/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo(db *mongo.Database, logger *zap.Logger) BookingRepository {
	repo := &MongoBookingRepo{coll: db.Collection(repository.BookingsCollection)}
	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("failed to create booking indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoBookingRepo) Insert(ctx context.Context, booking models.Booking) (*models.InsertResult, error) {
	ctx, cancel := repository.NewContext(ctx)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}
	return repository.InsertResult(res), nil
}

func (r *MongoBookingRepo) FindByGuestEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{models.BookingGuestEmailField: email})
}

func (r *MongoBookingRepo) FindByHost(ctx context.Context, email string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{models.BookingHostField: email})
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := repository.NewContext(ctx)
	defer cancel()

	bookings, err := repository.FindDocuments(ctx, r.coll, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) DeleteByID(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := repository.ObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := repository.NewContext(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to delete booking %s: %w", id, err)
	}
	return repository.DeleteResult(res), nil
}
