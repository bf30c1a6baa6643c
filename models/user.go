package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User defines an account entity. Streak and LastLogDate are mutated only
// through the streak evaluator path; LastLogDate is a YYYY-MM-DD string and
// empty when the user has never completed a goal day.
type User struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Email        string              `bson:"email" json:"email"`
	Name         string              `bson:"name" json:"name"`
	PasswordHash string              `bson:"password" json:"-"`
	ProfileID    *primitive.ObjectID `bson:"profile,omitempty" json:"profileId,omitempty"`
	Streak       int                 `bson:"streak" json:"streak"`
	LastLogDate  string              `bson:"lastLogDate,omitempty" json:"lastLogDate,omitempty"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
}
