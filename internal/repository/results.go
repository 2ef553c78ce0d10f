package repository

import (
	"github.com/Mohib75/study-syncer-server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// idString renders a driver-generated identifier for JSON clients.
func idString(id interface{}) string {
	switch v := id.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return ""
	}
}

func toInsertResult(res *mongo.InsertOneResult) *models.InsertResult {
	return &models.InsertResult{
		Acknowledged: true,
		InsertedID:   idString(res.InsertedID),
	}
}

func toUpdateResult(res *mongo.UpdateResult) *models.UpdateResult {
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    idString(res.UpsertedID),
	}
}

func toDeleteResult(res *mongo.DeleteResult) *models.DeleteResult {
	return &models.DeleteResult{
		Acknowledged: true,
		DeletedCount: res.DeletedCount,
	}
}

func byID(id primitive.ObjectID) bson.M {
	return bson.M{"_id": id}
}

// pageOptions orders by _id so consecutive pages never overlap.
func pageOptions(page *models.Page) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if page != nil {
		opts.SetSkip(page.Skip()).SetLimit(page.Size)
	}
	return opts
}

func upsertOptions() *options.UpdateOptions {
	return options.Update().SetUpsert(true)
}
