// internal/repository/mongo_product.go
package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/javajoker/launchpad-backend/internal/models"
	"github.com/javajoker/launchpad-backend/internal/moderation"
)

type MongoProductStore struct {
	coll    *mongo.Collection
	timeout time.Duration
	now     func() time.Time
}

func NewMongoProductStore(coll *mongo.Collection, timeout time.Duration) *MongoProductStore {
	return &MongoProductStore{
		coll:    coll,
		timeout: timeout,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *MongoProductStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *MongoProductStore) Create(ctx context.Context, product *models.Product) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	product.ID = primitive.NewObjectID()
	product.ApplyDefaults(s.now())

	if _, err := s.coll.InsertOne(ctx, product); err != nil {
		return "", storeError("insert product", err)
	}
	return product.ID.Hex(), nil
}

func (s *MongoProductStore) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var product models.Product
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrProductNotFound
		}
		return nil, storeError("find product", err)
	}
	return &product, nil
}

func (s *MongoProductStore) Search(ctx context.Context, query SearchQuery) (*models.ProductPage, error) {
	query = query.Normalize()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	filter := searchFilter(query.Text)

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, storeError("count products", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(query.Skip())).
		SetLimit(int64(query.Limit))

	items, err := s.find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	return &models.ProductPage{Items: items, TotalCount: total}, nil
}

func (s *MongoProductStore) ListAll(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
}

func (s *MongoProductStore) ListReported(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	// An element at index 0 exists only for a non-empty array.
	filter := bson.M{"reportedUsers.0": bson.M{"$exists": true}}
	return s.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
}

func (s *MongoProductStore) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return storeError("delete product", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrProductNotFound
	}
	return nil
}

func (s *MongoProductStore) SetStatus(ctx context.Context, id string, status models.ProductStatus) error {
	return s.setFields(ctx, id, bson.M{"status": status})
}

func (s *MongoProductStore) MarkFeatured(ctx context.Context, id string) error {
	return s.setFields(ctx, id, bson.M{"isFeatured": true})
}

func (s *MongoProductStore) Engage(ctx context.Context, id string, kind moderation.Engagement, email string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	// The membership test lives in the filter so that check and write are one
	// atomic document update.
	filter := bson.M{"_id": oid, kind.SetField: bson.M{"$ne": email}}
	update := bson.M{"$push": bson.M{kind.SetField: email}}
	if kind.CounterField != "" {
		update["$inc"] = bson.M{kind.CounterField: 1}
	}

	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return storeError(kind.Name+" product", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	exists, err := s.exists(ctx, oid)
	if err != nil {
		return err
	}
	if !exists {
		return models.ErrProductNotFound
	}
	return kind.Duplicate
}

func (s *MongoProductStore) Statuses(ctx context.Context) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"status": 1}))
	if err != nil {
		return nil, storeError("scan statuses", err)
	}
	defer cursor.Close(ctx)

	statuses := []string{}
	for cursor.Next(ctx) {
		status, _ := cursor.Current.Lookup("status").StringValueOK()
		statuses = append(statuses, status)
	}
	if err := cursor.Err(); err != nil {
		return nil, storeError("scan statuses", err)
	}
	return statuses, nil
}

func (s *MongoProductStore) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.coll.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return storeError("ping", err)
	}
	return nil
}

func (s *MongoProductStore) setFields(ctx context.Context, id string, fields bson.M) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return storeError("update product", err)
	}
	// Matched, not modified: re-applying the same value is not an error.
	if res.MatchedCount == 0 {
		return models.ErrProductNotFound
	}
	return nil
}

func (s *MongoProductStore) exists(ctx context.Context, oid primitive.ObjectID) (bool, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{"_id": oid}, options.Count().SetLimit(1))
	if err != nil {
		return false, storeError("count product", err)
	}
	return n > 0, nil
}

func (s *MongoProductStore) find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Product, error) {
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, storeError("find products", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, storeError("decode products", err)
	}
	return products, nil
}

func searchFilter(text string) bson.M {
	if text == "" {
		return bson.M{}
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
	return bson.M{
		"$or": bson.A{
			bson.M{"name": pattern},
			bson.M{"tag": pattern},
			bson.M{"description": pattern},
		},
	}
}
