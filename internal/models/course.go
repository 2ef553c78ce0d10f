package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Course struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Image       string             `bson:"image" json:"image"`
	Description string             `bson:"description" json:"description"`
	Price       Number             `bson:"price" json:"price"`
	Instructor  string             `bson:"instructor" json:"instructor"`
	Duration    string             `bson:"duration" json:"duration"`
	Date        string             `bson:"date" json:"date"`
}

// EnrolledCourse links a student email to a purchased course.
type EnrolledCourse struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email" binding:"required"`
	CourseID      string             `bson:"courseId" json:"courseId" binding:"required"`
	Title         string             `bson:"title" json:"title"`
	Image         string             `bson:"image" json:"image"`
	Price         Number             `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Date          string             `bson:"date" json:"date"`
}
