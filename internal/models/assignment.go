package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Assignment is a task published for students to submit against.
type Assignment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Image       string             `bson:"image" json:"image"`
	Description string             `bson:"description" json:"description"`
	Marks       Number             `bson:"marks" json:"marks"`
	Difficulty  string             `bson:"difficulty" json:"difficulty"`
	Date        string             `bson:"date" json:"date"`
}

// AssignmentUpdate carries the fields an edit may change. Nil fields are
// left untouched.
type AssignmentUpdate struct {
	Title       *string `bson:"title,omitempty" json:"title"`
	Image       *string `bson:"image,omitempty" json:"image"`
	Description *string `bson:"description,omitempty" json:"description"`
	Marks       *Number `bson:"marks,omitempty" json:"marks"`
	Difficulty  *string `bson:"difficulty,omitempty" json:"difficulty"`
	Date        *string `bson:"date,omitempty" json:"date"`
}

func (u AssignmentUpdate) IsEmpty() bool {
	return u.Title == nil && u.Image == nil && u.Description == nil &&
		u.Marks == nil && u.Difficulty == nil && u.Date == nil
}
