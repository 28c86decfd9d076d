package userRepo

import (
	"context"
	"fmt"

	"aircnc/database/repository"
	"aircnc/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo(db *mongo.Database, logger *zap.Logger) UserRepository {
	repo := &MongoUserRepo{coll: db.Collection(repository.UsersCollection)}

	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("failed to create user indexes", zap.Error(err))
	}
	return repo
}

// UpsertByEmail applies fields with $set; the email key always wins over any email in fields.
func (r *MongoUserRepo) UpsertByEmail(ctx context.Context, email string, fields models.User) (*models.UpdateResult, error) {
	ctx, cancel := repository.NewContext(ctx)
	defer cancel()

	set := bson.M{}
	for k, v := range fields {
		if k == "_id" {
			continue
		}
		set[k] = v
	}
	set[models.UserEmailField] = email

	filter := bson.M{models.UserEmailField: email}
	opts := options.Update().SetUpsert(true)
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user %s: %w", email, err)
	}
	return repository.UpdateResult(res), nil
}

func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	ctx, cancel := repository.NewContext(ctx)
	defer cancel()

	user, err := repository.FindDocument(ctx, r.coll, bson.M{models.UserEmailField: email})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	return user, nil
}
