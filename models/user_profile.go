package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserProfile holds the biometric attributes used to derive calorie and
// water targets. All fields are optional until onboarding completes.
type UserProfile struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID                 primitive.ObjectID `bson:"user" json:"userId"`
	Age                    *int               `bson:"age,omitempty" json:"age,omitempty"`
	InitialWeight          *float64           `bson:"initialWeight,omitempty" json:"initialWeight,omitempty"`
	CurrentWeight          *float64           `bson:"currentWeight,omitempty" json:"currentWeight,omitempty"`
	Height                 *float64           `bson:"height,omitempty" json:"height,omitempty"`
	BiologicalSex          string             `bson:"biologicalSex,omitempty" json:"biologicalSex,omitempty"`
	City                   string             `bson:"city,omitempty" json:"city,omitempty"`
	ActivityLevel          string             `bson:"activityLevel,omitempty" json:"activityLevel,omitempty"`
	WeightGoal             *float64           `bson:"weightGoal,omitempty" json:"weightGoal,omitempty"`
	GoalType               string             `bson:"goalType,omitempty" json:"goalType,omitempty"`
	HasCompletedOnboarding bool               `bson:"hasCompletedOnboarding" json:"hasCompletedOnboarding"`
}

// ValidActivityLevels mirrors the values the frontend offers.
var ValidActivityLevels = map[string]bool{
	"sedentary":   true,
	"light":       true,
	"moderate":    true,
	"active":      true,
	"very_active": true,
}

// ValidGoalTypes are the supported weight-goal directions.
var ValidGoalTypes = map[string]bool{
	"lose":     true,
	"maintain": true,
	"gain":     true,
}
