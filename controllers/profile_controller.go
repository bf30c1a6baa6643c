package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/overstimulation/wellness-dashboard-team-project/apperror"
	"github.com/overstimulation/wellness-dashboard-team-project/models"
	"github.com/overstimulation/wellness-dashboard-team-project/store"
)

// ProfileController serves the biometric profile used to derive goals.
type ProfileController struct {
	users    *store.UserStore
	profiles *store.ProfileStore
}

func NewProfileController(users *store.UserStore, profiles *store.ProfileStore) *ProfileController {
	return &ProfileController{users: users, profiles: profiles}
}

// Get returns the profile plus a user summary including the streak.
func (p *ProfileController) Get(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	user, err := p.users.FindByID(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := p.profiles.FindByUser(ctx, userID)
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
		"user": gin.H{
			"id":     user.ID.Hex(),
			"email":  user.Email,
			"name":   user.Name,
			"streak": user.Streak,
		},
	})
}

type saveProfileRequest struct {
	Age                    *int     `json:"age"`
	InitialWeight          *float64 `json:"initialWeight"`
	CurrentWeight          *float64 `json:"currentWeight"`
	Height                 *float64 `json:"height"`
	BiologicalSex          *string  `json:"biologicalSex"`
	City                   *string  `json:"city"`
	ActivityLevel          *string  `json:"activityLevel"`
	WeightGoal             *float64 `json:"weightGoal"`
	GoalType               *string  `json:"goalType"`
	HasCompletedOnboarding *bool    `json:"hasCompletedOnboarding"`
}

// Save merges the supplied profile fields; omitted fields are untouched.
// Enum fields are validated before the write.
func (p *ProfileController) Save(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)

	var req saveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userData required", "details": err.Error()})
		return
	}

	fields := bson.M{"user": userID}
	if req.Age != nil {
		fields["age"] = *req.Age
	}
	if req.InitialWeight != nil {
		fields["initialWeight"] = *req.InitialWeight
	}
	if req.CurrentWeight != nil {
		fields["currentWeight"] = *req.CurrentWeight
	}
	if req.Height != nil {
		fields["height"] = *req.Height
	}
	if req.BiologicalSex != nil {
		if *req.BiologicalSex != "male" && *req.BiologicalSex != "female" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid biologicalSex"})
			return
		}
		fields["biologicalSex"] = *req.BiologicalSex
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.ActivityLevel != nil {
		if !models.ValidActivityLevels[*req.ActivityLevel] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activityLevel"})
			return
		}
		fields["activityLevel"] = *req.ActivityLevel
	}
	if req.WeightGoal != nil {
		fields["weightGoal"] = *req.WeightGoal
	}
	if req.GoalType != nil {
		if !models.ValidGoalTypes[*req.GoalType] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goalType"})
			return
		}
		fields["goalType"] = *req.GoalType
	}
	if req.HasCompletedOnboarding != nil {
		fields["hasCompletedOnboarding"] = *req.HasCompletedOnboarding
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	profile, err := p.profiles.Upsert(ctx, userID, fields)
	if err != nil {
		respondError(c, err)
		return
	}

	// Keep the user -> profile link fresh for first-time saves.
	if err := p.users.SetProfileID(ctx, userID, profile.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile saved", "profile": profile})
}
