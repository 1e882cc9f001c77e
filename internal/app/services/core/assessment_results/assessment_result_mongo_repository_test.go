package assessmentResults

import (
	"context"
	"sensus-service/internal/pkg/constvars"
	"sensus-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newRepository(mt *mtest.T) *assessmentResultMongoRepository {
	return &assessmentResultMongoRepository{Collection: mt.DB.Collection(constvars.MongoCollectionAssessmentResults)}
}

func namespace(repo *assessmentResultMongoRepository) string {
	return repo.Collection.Database().Name() + "." + repo.Collection.Name()
}

func resultDocument(id primitive.ObjectID, userID string, score int) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "userId", Value: userID},
		{Key: "instrumentCode", Value: "gad7"},
		{Key: "score", Value: score},
		{Key: "maxScore", Value: 21},
		{Key: "category", Value: "mild"},
		{Key: "answers", Value: bson.A{1, 1, 1, 1, 1, 1, 1}},
		{Key: "createdAt", Value: time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)},
	}
}

func TestAssessmentResultMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("find by id decodes the result", func(mt *mtest.T) {
		repo := newRepository(mt)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(repo), mtest.FirstBatch, resultDocument(id, "u1", 7)))

		result, err := repo.FindByID(ctx, id.Hex())
		require.NoError(mt, err)
		require.NotNil(mt, result)
		assert.Equal(mt, id.Hex(), result.ID)
		assert.Equal(mt, 7, result.Score)
		assert.Len(mt, result.Answers, 7)
	})

	mt.Run("find by id with malformed id is a miss", func(mt *mtest.T) {
		repo := newRepository(mt)

		result, err := repo.FindByID(ctx, "zzz")
		require.NoError(mt, err)
		assert.Nil(mt, result)
		assert.Nil(mt, mt.GetStartedEvent(), "no query is sent")
	})

	mt.Run("find by id with unknown id is a miss", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(repo), mtest.FirstBatch))

		result, err := repo.FindByID(ctx, primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.Nil(mt, result)
	})

	mt.Run("find by user pages newest first", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(repo), mtest.FirstBatch,
			resultDocument(primitive.NewObjectID(), "u1", 12),
			resultDocument(primitive.NewObjectID(), "u1", 3),
		))

		results, err := repo.FindByUserID(ctx, "u1", 20, 10)
		require.NoError(mt, err)
		assert.Len(mt, results, 2)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "find", started.CommandName)
		assert.Equal(mt, int64(20), started.Command.Lookup("skip").AsInt64())
		assert.Equal(mt, int64(10), started.Command.Lookup("limit").AsInt64())
		assert.Equal(mt, int64(-1), started.Command.Lookup("sort", "createdAt").AsInt64())
		assert.Equal(mt, "u1", started.Command.Lookup("filter", "userId").StringValue())
	})

	mt.Run("find all by user returns empty slice", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(repo), mtest.FirstBatch))

		results, err := repo.FindAllByUserID(ctx, "u2")
		require.NoError(mt, err)
		assert.NotNil(mt, results)
		assert.Empty(mt, results)
	})

	mt.Run("count by user", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(repo), mtest.FirstBatch, bson.D{{Key: "n", Value: 3}}))

		count, err := repo.CountByUserID(ctx, "u1")
		require.NoError(mt, err)
		assert.Equal(mt, 3, count)
	})

	mt.Run("count failure is wrapped", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad query"}))

		_, err := repo.CountByUserID(ctx, "u1")
		var customErr *exceptions.CustomError
		require.ErrorAs(mt, err, &customErr)
		assert.Equal(mt, constvars.StatusInternalServerError, customErr.StatusCode)
	})

	mt.Run("delete by id", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}})

		require.NoError(mt, repo.DeleteByID(ctx, primitive.NewObjectID().Hex()))
		assert.Error(mt, repo.DeleteByID(ctx, "zzz"))
	})
}
