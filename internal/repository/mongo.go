package repository

import (
	"context"

	mongoInfra "github.com/Mohib75/study-syncer-server/internal/infra/mongo"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CountCache stores estimated collection counts between reads.
type CountCache interface {
	Get(ctx context.Context, collection string) (int64, bool)
	Set(ctx context.Context, collection string, n int64)
	Invalidate(ctx context.Context, collection string)
}

type MongoRepository struct {
	db     *mongo.Database
	counts CountCache
}

func NewMongoRepository(client *mongoInfra.Client) *MongoRepository {
	return &MongoRepository{
		db: client.Database,
	}
}

// WithCountCache enables caching of estimated counts. Writes through this
// repository invalidate the cached value of the touched collection.
func (r *MongoRepository) WithCountCache(cache CountCache) *MongoRepository {
	r.counts = cache
	return r
}

func (r *MongoRepository) InsertOne(ctx context.Context, collection string, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	res, err := r.GetCollection(collection).InsertOne(ctx, document, opts...)
	if err != nil {
		return nil, err
	}
	r.invalidateCount(ctx, collection)
	return res, nil
}

func (r *MongoRepository) FindOne(ctx context.Context, collection string, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	return r.GetCollection(collection).FindOne(ctx, filter, opts...)
}

func (r *MongoRepository) FindMany(ctx context.Context, collection string, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	return r.GetCollection(collection).Find(ctx, filter, opts...)
}

func (r *MongoRepository) UpdateOne(ctx context.Context, collection string, filter, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	res, err := r.GetCollection(collection).UpdateOne(ctx, filter, update, opts...)
	if err != nil {
		return nil, err
	}
	if res.UpsertedCount > 0 {
		r.invalidateCount(ctx, collection)
	}
	return res, nil
}

func (r *MongoRepository) DeleteOne(ctx context.Context, collection string, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	res, err := r.GetCollection(collection).DeleteOne(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	if res.DeletedCount > 0 {
		r.invalidateCount(ctx, collection)
	}
	return res, nil
}

// EstimatedCount returns the collection's metadata count, not a scan.
func (r *MongoRepository) EstimatedCount(ctx context.Context, collection string) (int64, error) {
	if r.counts != nil {
		if n, ok := r.counts.Get(ctx, collection); ok {
			return n, nil
		}
	}

	n, err := r.GetCollection(collection).EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, err
	}

	if r.counts != nil {
		r.counts.Set(ctx, collection, n)
	}
	return n, nil
}

func (r *MongoRepository) GetCollection(collectionName string) *mongo.Collection {
	return r.db.Collection(collectionName)
}

func (r *MongoRepository) invalidateCount(ctx context.Context, collection string) {
	if r.counts != nil {
		r.counts.Invalidate(ctx, collection)
	}
}
