// internal/repository/document_repository.go
package repository

import (
	"context"
	"reflect"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/javajoker/launchpad-backend/internal/models"
)

// WriteResult mirrors the counters the store reports for a write.
type WriteResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	DeletedCount  int64 `json:"deletedCount"`
}

// DocumentStore is plain CRUD over one schemaless collection.
type DocumentStore interface {
	Insert(ctx context.Context, doc models.Document) (string, error)
	List(ctx context.Context) ([]models.Document, error)
	SetByID(ctx context.Context, id string, fields models.Document) (*WriteResult, error)
	SetWhere(ctx context.Context, field string, value interface{}, fields models.Document) (*WriteResult, error)
	DeleteByID(ctx context.Context, id string) (*WriteResult, error)
}

type MongoDocumentStore struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoDocumentStore(coll *mongo.Collection, timeout time.Duration) *MongoDocumentStore {
	return &MongoDocumentStore{coll: coll, timeout: timeout}
}

func (s *MongoDocumentStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *MongoDocumentStore) Insert(ctx context.Context, doc models.Document) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	oid := primitive.NewObjectID()
	record := bson.M(doc.Without("_id"))
	record["_id"] = oid

	if _, err := s.coll.InsertOne(ctx, record); err != nil {
		return "", storeError("insert "+s.coll.Name(), err)
	}
	return oid.Hex(), nil
}

func (s *MongoDocumentStore) List(ctx context.Context) ([]models.Document, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, storeError("find "+s.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, storeError("decode "+s.coll.Name(), err)
	}

	docs := make([]models.Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, models.Document(m))
	}
	return docs, nil
}

func (s *MongoDocumentStore) SetByID(ctx context.Context, id string, fields models.Document) (*WriteResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.set(ctx, bson.M{"_id": oid}, fields)
}

func (s *MongoDocumentStore) SetWhere(ctx context.Context, field string, value interface{}, fields models.Document) (*WriteResult, error) {
	return s.set(ctx, bson.M{field: value}, fields)
}

func (s *MongoDocumentStore) DeleteByID(ctx context.Context, id string) (*WriteResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, storeError("delete "+s.coll.Name(), err)
	}
	return &WriteResult{DeletedCount: res.DeletedCount}, nil
}

func (s *MongoDocumentStore) set(ctx context.Context, filter bson.M, fields models.Document) (*WriteResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M(fields.Without("_id"))})
	if err != nil {
		return nil, storeError("update "+s.coll.Name(), err)
	}
	return &WriteResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// MemoryDocumentStore is the in-process DocumentStore used with
// STORE_DRIVER=memory.
type MemoryDocumentStore struct {
	mu   sync.RWMutex
	docs []models.Document
}

func NewMemoryDocumentStore() *MemoryDocumentStore {
	return &MemoryDocumentStore{}
}

func (s *MemoryDocumentStore) Insert(ctx context.Context, doc models.Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := primitive.NewObjectID().Hex()
	record := doc.Without("_id")
	record["_id"] = id
	s.docs = append(s.docs, record)
	return id, nil
}

func (s *MemoryDocumentStore) List(ctx context.Context) ([]models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Document, 0, len(s.docs))
	for _, d := range s.docs {
		out = append(out, d.Without())
	}
	return out, nil
}

func (s *MemoryDocumentStore) SetByID(ctx context.Context, id string, fields models.Document) (*WriteResult, error) {
	if _, err := ParseID(id); err != nil {
		return nil, err
	}
	return s.SetWhere(ctx, "_id", id, fields)
}

func (s *MemoryDocumentStore) SetWhere(ctx context.Context, field string, value interface{}, fields models.Document) (*WriteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := &WriteResult{}
	for _, d := range s.docs {
		if !reflect.DeepEqual(d[field], value) {
			continue
		}
		res.MatchedCount = 1
		for k, v := range fields.Without("_id") {
			if !reflect.DeepEqual(d[k], v) {
				d[k] = v
				res.ModifiedCount = 1
			}
		}
		break
	}
	return res, nil
}

func (s *MemoryDocumentStore) DeleteByID(ctx context.Context, id string) (*WriteResult, error) {
	if _, err := ParseID(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.docs {
		if d["_id"] == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return &WriteResult{DeletedCount: 1}, nil
		}
	}
	return &WriteResult{}, nil
}
