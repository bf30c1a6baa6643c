package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DailyLog is one wellness record per user per calendar day. Date is the
// YYYY-MM-DD key of the unique (user, date) index; DisplayDate is the
// human-readable label the client submitted alongside it.
type DailyLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      primitive.ObjectID `bson:"user" json:"userId"`
	Date        string             `bson:"date" json:"date"`
	DisplayDate string             `bson:"displayDate,omitempty" json:"displayDate,omitempty"`
	Weight      *float64           `bson:"weight,omitempty" json:"weight,omitempty"`
	Calories    *float64           `bson:"calories,omitempty" json:"calories,omitempty"`
	Water       *float64           `bson:"water,omitempty" json:"water,omitempty"`
	Mood        *string            `bson:"mood,omitempty" json:"mood,omitempty"`
	Sleep       *float64           `bson:"sleep,omitempty" json:"sleep,omitempty"`
	Notes       *string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DailyLogUpdate carries the fields of one submission. Nil fields are left
// untouched on an existing record and absent on a fresh insert.
type DailyLogUpdate struct {
	DisplayDate string
	Weight      *float64
	Calories    *float64
	Water       *float64
	Mood        *string
	Sleep       *float64
	Notes       *string
}
