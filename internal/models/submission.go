package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SubmittedAssignment is a student's answer to an assignment plus its grade.
type SubmittedAssignment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	AssignmentID  string             `bson:"assignmentId" json:"assignmentId"`
	Title         string             `bson:"title" json:"title"`
	Marks         Number             `bson:"marks" json:"marks"`
	Email         string             `bson:"email" json:"email"`
	Name          string             `bson:"name" json:"name"`
	PDFLink       string             `bson:"pdfLink" json:"pdfLink"`
	Note          string             `bson:"note" json:"note"`
	Status        string             `bson:"status" json:"status"`
	ObtainedMarks *Number            `bson:"obtainedMarks,omitempty" json:"obtainedMarks,omitempty"`
	Feedback      string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
}

// GradeUpdate is the examiner's mark and feedback for a submission.
type GradeUpdate struct {
	ObtainedMarks *Number `bson:"obtainedMarks,omitempty" json:"obtainedMarks"`
	Feedback      *string `bson:"feedback,omitempty" json:"feedback"`
}

func (u GradeUpdate) IsEmpty() bool {
	return u.ObtainedMarks == nil && u.Feedback == nil
}
