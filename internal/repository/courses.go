package repository

import (
	"context"
	"fmt"

	"github.com/Mohib75/study-syncer-server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const coursesCollection = "courses"

type CoursesRepository struct {
	mongoRepo *MongoRepository
}

func NewCoursesRepository(mongoRepo *MongoRepository) *CoursesRepository {
	return &CoursesRepository{
		mongoRepo: mongoRepo,
	}
}

func (r *CoursesRepository) List(ctx context.Context, page *models.Page) ([]models.Course, error) {
	cursor, err := r.mongoRepo.FindMany(ctx, coursesCollection, bson.M{}, pageOptions(page))
	if err != nil {
		return nil, fmt.Errorf("failed to find courses: %w", err)
	}
	defer cursor.Close(ctx)

	courses := make([]models.Course, 0)
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode courses: %w", err)
	}

	return courses, nil
}

func (r *CoursesRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	var course models.Course
	err := r.mongoRepo.FindOne(ctx, coursesCollection, byID(id)).Decode(&course)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find course: %w", err)
	}

	return &course, nil
}

func (r *CoursesRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.mongoRepo.EstimatedCount(ctx, coursesCollection)
	if err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}

	return count, nil
}

func (r *CoursesRepository) Create(ctx context.Context, course *models.Course) (*models.InsertResult, error) {
	course.ID = primitive.NilObjectID

	res, err := r.mongoRepo.InsertOne(ctx, coursesCollection, course)
	if err != nil {
		return nil, fmt.Errorf("failed to insert course: %w", err)
	}

	return toInsertResult(res), nil
}
