package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// WeightEntry is the standalone weight journal kept alongside daily logs.
type WeightEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      primitive.ObjectID `bson:"user" json:"userId"`
	Date        string             `bson:"dateISO" json:"date"`
	DisplayDate string             `bson:"date" json:"displayDate"`
	Weight      float64            `bson:"weight" json:"weight"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
}
