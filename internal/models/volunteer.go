package models

import "time"

type Volunteer struct {
	RollNumber string    `json:"rollNumber" bson:"rollNumber"`
	Name       string    `json:"name" bson:"name"`
	Email      string    `json:"email" bson:"email"`
	AddedAt    time.Time `json:"added_at" bson:"added_at"`
	AddedBy    string    `json:"added_by,omitempty" bson:"added_by,omitempty"`
}
