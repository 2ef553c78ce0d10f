package repository

import (
	"context"
	"fmt"

	"github.com/Mohib75/study-syncer-server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const submissionsCollection = "submittedAssignment"

type SubmissionsRepository struct {
	mongoRepo *MongoRepository
}

func NewSubmissionsRepository(mongoRepo *MongoRepository) *SubmissionsRepository {
	return &SubmissionsRepository{
		mongoRepo: mongoRepo,
	}
}

func (r *SubmissionsRepository) List(ctx context.Context) ([]models.SubmittedAssignment, error) {
	return r.find(ctx, bson.M{})
}

func (r *SubmissionsRepository) ListByEmail(ctx context.Context, email string) ([]models.SubmittedAssignment, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *SubmissionsRepository) find(ctx context.Context, filter bson.M) ([]models.SubmittedAssignment, error) {
	cursor, err := r.mongoRepo.FindMany(ctx, submissionsCollection, filter, pageOptions(nil))
	if err != nil {
		return nil, fmt.Errorf("failed to find submissions: %w", err)
	}
	defer cursor.Close(ctx)

	submissions := make([]models.SubmittedAssignment, 0)
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, fmt.Errorf("failed to decode submissions: %w", err)
	}

	return submissions, nil
}

func (r *SubmissionsRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.SubmittedAssignment, error) {
	var submission models.SubmittedAssignment
	err := r.mongoRepo.FindOne(ctx, submissionsCollection, byID(id)).Decode(&submission)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find submission: %w", err)
	}

	return &submission, nil
}

func (r *SubmissionsRepository) Create(ctx context.Context, submission *models.SubmittedAssignment) (*models.InsertResult, error) {
	submission.ID = primitive.NilObjectID

	res, err := r.mongoRepo.InsertOne(ctx, submissionsCollection, submission)
	if err != nil {
		return nil, fmt.Errorf("failed to insert submission: %w", err)
	}

	return toInsertResult(res), nil
}

// Grade records the examiner's mark and feedback. Grading races with other
// writers to the same submission are last-write-wins.
func (r *SubmissionsRepository) Grade(ctx context.Context, id primitive.ObjectID, grade models.GradeUpdate) (*models.UpdateResult, error) {
	res, err := r.mongoRepo.UpdateOne(ctx, submissionsCollection, byID(id), bson.M{"$set": grade}, upsertOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to grade submission: %w", err)
	}

	return toUpdateResult(res), nil
}
