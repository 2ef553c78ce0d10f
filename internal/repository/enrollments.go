package repository

import (
	"context"
	"fmt"

	"github.com/Mohib75/study-syncer-server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const enrollmentsCollection = "enrolledCourses"

type EnrollmentsRepository struct {
	mongoRepo *MongoRepository
}

func NewEnrollmentsRepository(mongoRepo *MongoRepository) *EnrollmentsRepository {
	return &EnrollmentsRepository{
		mongoRepo: mongoRepo,
	}
}

func (r *EnrollmentsRepository) ListByEmail(ctx context.Context, email string) ([]models.EnrolledCourse, error) {
	filter := bson.M{"email": email}

	cursor, err := r.mongoRepo.FindMany(ctx, enrollmentsCollection, filter, pageOptions(nil))
	if err != nil {
		return nil, fmt.Errorf("failed to find enrollments: %w", err)
	}
	defer cursor.Close(ctx)

	enrollments := make([]models.EnrolledCourse, 0)
	if err := cursor.All(ctx, &enrollments); err != nil {
		return nil, fmt.Errorf("failed to decode enrollments: %w", err)
	}

	return enrollments, nil
}

func (r *EnrollmentsRepository) Create(ctx context.Context, enrollment *models.EnrolledCourse) (*models.InsertResult, error) {
	enrollment.ID = primitive.NilObjectID

	res, err := r.mongoRepo.InsertOne(ctx, enrollmentsCollection, enrollment)
	if err != nil {
		return nil, fmt.Errorf("failed to insert enrollment: %w", err)
	}

	return toInsertResult(res), nil
}
