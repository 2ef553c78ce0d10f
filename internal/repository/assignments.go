package repository

import (
	"context"
	"fmt"

	"github.com/Mohib75/study-syncer-server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const assignmentsCollection = "assignment"

type AssignmentsRepository struct {
	mongoRepo *MongoRepository
}

func NewAssignmentsRepository(mongoRepo *MongoRepository) *AssignmentsRepository {
	return &AssignmentsRepository{
		mongoRepo: mongoRepo,
	}
}

// List returns assignments in insertion order; a nil page returns all of them.
func (r *AssignmentsRepository) List(ctx context.Context, page *models.Page) ([]models.Assignment, error) {
	cursor, err := r.mongoRepo.FindMany(ctx, assignmentsCollection, bson.M{}, pageOptions(page))
	if err != nil {
		return nil, fmt.Errorf("failed to find assignments: %w", err)
	}
	defer cursor.Close(ctx)

	assignments := make([]models.Assignment, 0)
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, fmt.Errorf("failed to decode assignments: %w", err)
	}

	return assignments, nil
}

func (r *AssignmentsRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.mongoRepo.FindOne(ctx, assignmentsCollection, byID(id)).Decode(&assignment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}

	return &assignment, nil
}

func (r *AssignmentsRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.mongoRepo.EstimatedCount(ctx, assignmentsCollection)
	if err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}

	return count, nil
}

func (r *AssignmentsRepository) Create(ctx context.Context, assignment *models.Assignment) (*models.InsertResult, error) {
	assignment.ID = primitive.NilObjectID

	res, err := r.mongoRepo.InsertOne(ctx, assignmentsCollection, assignment)
	if err != nil {
		return nil, fmt.Errorf("failed to insert assignment: %w", err)
	}

	return toInsertResult(res), nil
}

// Update sets the provided fields, inserting the document when id is unknown.
func (r *AssignmentsRepository) Update(ctx context.Context, id primitive.ObjectID, update models.AssignmentUpdate) (*models.UpdateResult, error) {
	res, err := r.mongoRepo.UpdateOne(ctx, assignmentsCollection, byID(id), bson.M{"$set": update}, upsertOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}

	return toUpdateResult(res), nil
}

func (r *AssignmentsRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	res, err := r.mongoRepo.DeleteOne(ctx, assignmentsCollection, byID(id))
	if err != nil {
		return nil, fmt.Errorf("failed to delete assignment: %w", err)
	}

	return toDeleteResult(res), nil
}
