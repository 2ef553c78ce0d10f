package api

import (
	"context"

	"github.com/Mohib75/study-syncer-server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The handlers depend on these narrow interfaces rather than on the Mongo
// repositories so tests can substitute in-memory stores.

type AssignmentStore interface {
	List(ctx context.Context, page *models.Page) ([]models.Assignment, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Assignment, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, assignment *models.Assignment) (*models.InsertResult, error)
	Update(ctx context.Context, id primitive.ObjectID, update models.AssignmentUpdate) (*models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

type SubmissionStore interface {
	List(ctx context.Context) ([]models.SubmittedAssignment, error)
	ListByEmail(ctx context.Context, email string) ([]models.SubmittedAssignment, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.SubmittedAssignment, error)
	Create(ctx context.Context, submission *models.SubmittedAssignment) (*models.InsertResult, error)
	Grade(ctx context.Context, id primitive.ObjectID, grade models.GradeUpdate) (*models.UpdateResult, error)
}

type CourseStore interface {
	List(ctx context.Context, page *models.Page) ([]models.Course, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, course *models.Course) (*models.InsertResult, error)
}

type EnrollmentStore interface {
	ListByEmail(ctx context.Context, email string) ([]models.EnrolledCourse, error)
	Create(ctx context.Context, enrollment *models.EnrolledCourse) (*models.InsertResult, error)
}

// PaymentProvider creates a payment intent for amount minor units and
// returns its client secret.
type PaymentProvider interface {
	CreatePaymentIntent(ctx context.Context, amount int64) (string, error)
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Stores bundles the data-access objects handed to the handlers.
type Stores struct {
	Assignments AssignmentStore
	Submissions SubmissionStore
	Courses     CourseStore
	Enrollments EnrollmentStore
}
