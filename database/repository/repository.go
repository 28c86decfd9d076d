package repository

import (
	"context"
	"errors"
	"fmt"

	"aircnc/models"
	"aircnc/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names.
const (
	UsersCollection    = "users"
	RoomsCollection    = "rooms"
	BookingsCollection = "bookings"
)

// ErrInvalidID is returned when an identifier is not a valid ObjectID hex string.
var ErrInvalidID = errors.New("invalid document id")

// NewContext bounds a store call by StoreTimeout. The parent's cancellation is
// deliberately dropped: a write that has been issued runs to completion.
func NewContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(parent), utils.StoreTimeout)
}

// ObjectID parses a hex identifier.
func ObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

// FindDocuments runs a find and decodes every match as an opaque document.
// The result is never nil so it serializes as [].
func FindDocuments(ctx context.Context, coll *mongo.Collection, filter interface{}) ([]models.Document, error) {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}
	docs := make([]models.Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, models.Document(m))
	}
	return docs, nil
}

// FindDocument returns the first match, or nil when nothing matches.
func FindDocument(ctx context.Context, coll *mongo.Collection, filter interface{}) (models.Document, error) {
	var m bson.M
	if err := coll.FindOne(ctx, filter).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return models.Document(m), nil
}

func InsertResult(res *mongo.InsertOneResult) *models.InsertResult {
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}
}

func UpdateResult(res *mongo.UpdateResult) *models.UpdateResult {
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func DeleteResult(res *mongo.DeleteResult) *models.DeleteResult {
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}
