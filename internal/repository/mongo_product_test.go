package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/javajoker/launchpad-backend/internal/models"
	"github.com/javajoker/launchpad-backend/internal/moderation"
)

func productDoc(oid primitive.ObjectID, name, status string, voters ...string) bson.D {
	voted := bson.A{}
	for _, v := range voters {
		voted = append(voted, v)
	}
	return bson.D{
		{Key: "_id", Value: oid},
		{Key: "name", Value: name},
		{Key: "status", Value: status},
		{Key: "isFeatured", Value: false},
		{Key: "upvotes", Value: int64(len(voters))},
		{Key: "votedUsers", Value: voted},
		{Key: "reportedUsers", Value: bson.A{}},
	}
}

func countResponse(ns string, n int32) bson.D {
	return mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: n}})
}

func TestMongoProductStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create applies defaults", func(mt *mtest.T) {
		store := NewMongoProductStore(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		product := &models.Product{Name: "Widget", Status: models.ProductStatusAccepted, Upvotes: 7}
		id, err := store.Create(context.Background(), product)
		require.NoError(mt, err)
		assert.Equal(mt, product.ID.Hex(), id)
		assert.Equal(mt, models.ProductStatusPending, product.Status)
		assert.Zero(mt, product.Upvotes)
	})

	mt.Run("get by id", func(mt *mtest.T) {
		store := NewMongoProductStore(mt.Coll, time.Second)
		oid := primitive.NewObjectID()
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, productDoc(oid, "Widget", "accepted", "a@x.io")))

		p, err := store.GetByID(context.Background(), oid.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, "Widget", p.Name)
		assert.Equal(mt, models.ProductStatusAccepted, p.Status)
		assert.Equal(mt, int64(1), p.Upvotes)
		assert.Equal(mt, []string{"a@x.io"}, p.VotedUsers)
	})

	mt.Run("get by id not found", func(mt *mtest.T) {
		store := NewMongoProductStore(mt.Coll, time.Second)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := store.GetByID(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, models.ErrProductNotFound)
	})

	mt.Run("invalid id never reaches the store", func(mt *mtest.T) {
		store := NewMongoProductStore(mt.Coll, time.Second)

		_, err := store.GetByID(context.Background(), "xyz")
		assert.ErrorIs(mt, err, models.ErrInvalidIdentifier)
		assert.ErrorIs(mt, store.Delete(context.Background(), "xyz"), models.ErrInvalidIdentifier)
		assert.ErrorIs(mt, store.Engage(context.Background(), "xyz", moderation.Upvote, "a@x.io"), models.ErrInvalidIdentifier)
	})

	mt.Run("search returns page and total", func(mt *mtest.T) {
		store := NewMongoProductStore(mt.Coll, time.Second)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			countResponse(ns, 10),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				productDoc(primitive.NewObjectID(), "Widget 6", "pending"),
				productDoc(primitive.NewObjectID(), "Widget 7", "pending"),
				productDoc(primitive.NewObjectID(), "Widget 8", "pending"),
				productDoc(primitive.NewObjectID(), "Widget 9", "pending"),
			),
		)

		page, err := store.Search(context.Background(), SearchQuery{Text: "widget", Page: 2, Limit: 6})
		require.NoError(mt, err)
		assert.Equal(mt, int64(10), page.TotalCount)
		require.Len(mt, page.Items, 4)
		assert.Equal(mt, "Widget 6", page.Items[0].Name)
	})

	mt.Run("search past the end", func(mt *mtest.T) {
		store := NewMongoProductStore(mt.Coll, time.Second)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(countResponse(ns, 3), mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		page, err := store.Search(context.Background(), SearchQuery{Page: 9})
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), page.TotalCount)
		assert.NotNil(mt, page.Items)
		assert.Empty(mt, page.Items)
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		store := NewMongoProductStore(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}))

		err := store.Delete(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, models.ErrProductNotFound)
	})

	mt.Run("set status on missing product", func(mt *mtest.T) {
		store := NewMongoProductStore(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: int32(0)},
			bson.E{Key: "nModified", Value: int32(0)},
		))

		err := store.SetStatus(context.Background(), primitive.NewObjectID().Hex(), models.ProductStatusAccepted)
		assert.ErrorIs(mt, err, models.ErrProductNotFound)
	})

	mt.Run("re-applying featured is not an error", func(mt *mtest.T) {
		store := NewMongoProductStore(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: int32(1)},
			bson.E{Key: "nModified", Value: int32(0)},
		))

		assert.NoError(mt, store.MarkFeatured(context.Background(), primitive.NewObjectID().Hex()))
	})

	mt.Run("engage records first vote", func(mt *mtest.T) {
		store := NewMongoProductStore(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: int32(1)},
			bson.E{Key: "nModified", Value: int32(1)},
		))

		assert.NoError(mt, store.Engage(context.Background(), primitive.NewObjectID().Hex(), moderation.Upvote, "a@x.io"))
	})

	mt.Run("engage duplicate vote", func(mt *mtest.T) {
		store := NewMongoProductStore(mt.Coll, time.Second)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}, bson.E{Key: "nModified", Value: int32(0)}),
			countResponse(ns, 1),
		)

		err := store.Engage(context.Background(), primitive.NewObjectID().Hex(), moderation.Upvote, "a@x.io")
		assert.ErrorIs(mt, err, models.ErrAlreadyVoted)
	})

	mt.Run("engage duplicate report", func(mt *mtest.T) {
		store := NewMongoProductStore(mt.Coll, time.Second)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}, bson.E{Key: "nModified", Value: int32(0)}),
			countResponse(ns, 1),
		)

		err := store.Engage(context.Background(), primitive.NewObjectID().Hex(), moderation.Report, "a@x.io")
		assert.ErrorIs(mt, err, models.ErrAlreadyReported)
	})

	mt.Run("engage missing product", func(mt *mtest.T) {
		store := NewMongoProductStore(mt.Coll, time.Second)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}, bson.E{Key: "nModified", Value: int32(0)}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch),
		)

		err := store.Engage(context.Background(), primitive.NewObjectID().Hex(), moderation.Upvote, "a@x.io")
		assert.ErrorIs(mt, err, models.ErrProductNotFound)
	})

	mt.Run("statuses keeps missing fields", func(mt *mtest.T) {
		store := NewMongoProductStore(mt.Coll, time.Second)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "status", Value: "accepted"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "status", Value: "Under Review"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}},
		))

		statuses, err := store.Statuses(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, []string{"accepted", "Under Review", ""}, statuses)
	})

	mt.Run("command failure maps to store unavailable", func(mt *mtest.T) {
		store := NewMongoProductStore(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Name:    "InterruptedAtShutdown",
			Message: "shutting down",
		}))

		_, err := store.ListAll(context.Background())
		assert.ErrorIs(mt, err, models.ErrStoreUnavailable)
	})
}

func TestSearchFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, searchFilter(""))

	filter := searchFilter("a.i")
	clauses, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, clauses, 3)
	assert.Equal(t, bson.M{"name": primitive.Regex{Pattern: `a\.i`, Options: "i"}}, clauses[0])
}

func TestMongoDocumentStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("list", func(mt *mtest.T) {
		store := NewMongoDocumentStore(mt.Coll, time.Second)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "email", Value: "a@x.io"}},
		))

		docs, err := store.List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, docs, 1)
		assert.Equal(mt, "a@x.io", docs[0].String("email"))
	})

	mt.Run("set where reports counts", func(mt *mtest.T) {
		store := NewMongoDocumentStore(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: int32(1)},
			bson.E{Key: "nModified", Value: int32(0)},
		))

		res, err := store.SetWhere(context.Background(), "email", "a@x.io", models.Document{"role": "admin"})
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.MatchedCount)
		assert.Zero(mt, res.ModifiedCount)
	})

	mt.Run("delete by id", func(mt *mtest.T) {
		store := NewMongoDocumentStore(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}))

		res, err := store.DeleteByID(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.DeletedCount)

		_, err = store.DeleteByID(context.Background(), "nope")
		assert.ErrorIs(mt, err, models.ErrInvalidIdentifier)
	})
}

func TestMemoryDocumentStore(t *testing.T) {
	s := NewMemoryDocumentStore()
	ctx := context.Background()

	id, err := s.Insert(ctx, models.Document{"_id": "ignored", "email": "a@x.io", "role": "user"})
	require.NoError(t, err)
	assert.NotEqual(t, "ignored", id)

	res, err := s.SetWhere(ctx, "email", "a@x.io", models.Document{"role": "admin"})
	require.NoError(t, err)
	assert.Equal(t, &WriteResult{MatchedCount: 1, ModifiedCount: 1}, res)

	res, err = s.SetByID(ctx, id, models.Document{"role": "admin"})
	require.NoError(t, err)
	assert.Equal(t, &WriteResult{MatchedCount: 1}, res)

	res, err = s.SetWhere(ctx, "email", "nobody@x.io", models.Document{"role": "admin"})
	require.NoError(t, err)
	assert.Zero(t, res.MatchedCount)

	docs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "admin", docs[0].String("role"))

	docs[0]["role"] = "mutated"
	again, _ := s.List(ctx)
	assert.Equal(t, "admin", again[0].String("role"))

	res, err = s.DeleteByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeletedCount)

	res, err = s.DeleteByID(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, res.DeletedCount)
}
