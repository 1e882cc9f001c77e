package assessmentResults

import (
	"context"
	"errors"
	"sensus-service/internal/app/contracts"
	"sensus-service/internal/app/models"
	"sensus-service/internal/pkg/constvars"
	"sensus-service/internal/pkg/exceptions"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type assessmentResultMongoRepository struct {
	Collection *mongo.Collection
}

var (
	assessmentResultMongoRepositoryInstance contracts.AssessmentResultRepository
	onceAssessmentResultMongoRepository     sync.Once
)

func NewAssessmentResultMongoRepository(db *mongo.Database) contracts.AssessmentResultRepository {
	onceAssessmentResultMongoRepository.Do(func() {
		assessmentResultMongoRepositoryInstance = &assessmentResultMongoRepository{
			Collection: db.Collection(constvars.MongoCollectionAssessmentResults),
		}
	})
	return assessmentResultMongoRepositoryInstance
}

// EnsureIndexes creates the history index used by every per-user query.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(constvars.MongoCollectionAssessmentResults).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

func (r *assessmentResultMongoRepository) Save(ctx context.Context, result *models.AssessmentResult) (string, error) {
	inserted, err := r.Collection.InsertOne(ctx, result)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return inserted.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindByID returns nil, nil when no result has that id, including ids that
// are not valid object ids.
func (r *assessmentResultMongoRepository) FindByID(ctx context.Context, resultID string) (*models.AssessmentResult, error) {
	objectID, err := primitive.ObjectIDFromHex(resultID)
	if err != nil {
		return nil, nil
	}

	var result models.AssessmentResult
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &result, nil
}

func (r *assessmentResultMongoRepository) FindByUserID(ctx context.Context, userID string, offset, limit int) ([]models.AssessmentResult, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{"userId": userID}, findOptions)
}

func (r *assessmentResultMongoRepository) FindAllByUserID(ctx context.Context, userID string) ([]models.AssessmentResult, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{"userId": userID}, findOptions)
}

func (r *assessmentResultMongoRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return int(count), nil
}

func (r *assessmentResultMongoRepository) DeleteByID(ctx context.Context, resultID string) error {
	objectID, err := primitive.ObjectIDFromHex(resultID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *assessmentResultMongoRepository) find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]models.AssessmentResult, error) {
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	results := make([]models.AssessmentResult, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return results, nil
}
