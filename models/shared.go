package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is an opaque JSON/BSON object persisted as submitted.
type Document map[string]interface{}

// String walks nested objects along path and returns the string found there, or "".
func (d Document) String(path ...string) string {
	var cur interface{} = map[string]interface{}(d)
	for _, key := range path {
		switch m := cur.(type) {
		case map[string]interface{}:
			cur = m[key]
		case Document:
			cur = m[key]
		case bson.M:
			cur = m[key]
		case bson.D:
			cur = m.Map()[key]
		default:
			return ""
		}
	}
	switch v := cur.(type) {
	case string:
		return v
	case primitive.ObjectID:
		return v.Hex()
	default:
		return ""
	}
}

// InsertResult mirrors the store's insertOne acknowledgement.
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

// UpdateResult mirrors the store's updateOne acknowledgement.
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

// DeleteResult mirrors the store's deleteOne acknowledgement. A zero DeletedCount
// means nothing matched; it is not an error.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// IDString renders a generated identifier for messages and logs.
func IDString(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
