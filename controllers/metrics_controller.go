package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/overstimulation/wellness-dashboard-team-project/store"
	"github.com/overstimulation/wellness-dashboard-team-project/utils"
)

// MetricsController derives BMI, BMR and the daily calorie/water targets
// from the stored profile.
type MetricsController struct {
	profiles *store.ProfileStore
}

func NewMetricsController(profiles *store.ProfileStore) *MetricsController {
	return &MetricsController{profiles: profiles}
}

// Get computes the caller's health metrics. Requires a completed profile
// (age, height, current weight); the derived calorie/water targets feed the
// daily-log goals on the client.
func (m *MetricsController) Get(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	profile, err := m.profiles.FindByUser(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if profile.Age == nil || profile.Height == nil || profile.CurrentWeight == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Profile incomplete: age, height and currentWeight are required"})
		return
	}

	height := *profile.Height
	weight := *profile.CurrentWeight

	bmi, err := utils.CalculateBMI(height, weight)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bmr, err := utils.CalculateBMR(height, weight, *profile.Age, profile.BiologicalSex)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bmi":          bmi,
		"bmiCategory":  utils.BMICategory(bmi),
		"bmr":          bmr,
		"caloriesGoal": utils.CalorieTarget(bmr, profile.ActivityLevel, profile.GoalType),
		"waterGoal":    utils.WaterTargetMl(weight),
	})
}
