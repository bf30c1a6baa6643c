package controllers

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/overstimulation/wellness-dashboard-team-project/apperror"
	"github.com/overstimulation/wellness-dashboard-team-project/models"
	"github.com/overstimulation/wellness-dashboard-team-project/store"
	"github.com/overstimulation/wellness-dashboard-team-project/utils"
)

const (
	demoEmail    = "demo@wellness.com"
	demoPassword = "demo123"
	demoDays     = 30
	// The generated tail always clears any plausible calorie/water target,
	// so the seeded streak matches the log history.
	demoStreakDays = 15
)

// SeedController recreates the demo account with a month of history.
type SeedController struct {
	users    *store.UserStore
	profiles *store.ProfileStore
	logs     *store.DailyLogStore
	weights  *store.WeightEntryStore
	enabled  bool
}

func NewSeedController(users *store.UserStore, profiles *store.ProfileStore, logs *store.DailyLogStore, weights *store.WeightEntryStore, enabled bool) *SeedController {
	return &SeedController{users: users, profiles: profiles, logs: logs, weights: weights, enabled: enabled}
}

// Seed wipes any existing demo data and rebuilds the account, profile and
// 30 days of logs whose last 15 days form a goal-meeting streak.
func (s *SeedController) Seed(c *gin.Context) {
	if !s.enabled {
		c.JSON(http.StatusForbidden, gin.H{"error": "Seeding is disabled"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	if err := s.purgeExisting(ctx); err != nil {
		respondError(c, err)
		return
	}

	hash, err := utils.HashPassword(demoPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	today := utils.TodayISO()
	user := &models.User{
		Email:        demoEmail,
		Name:         "Demo User",
		PasswordHash: hash,
		Streak:       demoStreakDays,
		LastLogDate:  today,
	}
	if err := s.users.Create(ctx, user); err != nil {
		respondError(c, err)
		return
	}

	age := 28
	initialWeight := 85.0
	currentWeight := 78.0
	height := 180.0
	weightGoal := 75.0
	profile, err := s.profiles.Upsert(ctx, user.ID, bson.M{
		"user":                   user.ID,
		"age":                    age,
		"initialWeight":          initialWeight,
		"currentWeight":          currentWeight,
		"height":                 height,
		"biologicalSex":          "male",
		"city":                   "Demo City",
		"activityLevel":          "moderate",
		"weightGoal":             weightGoal,
		"goalType":               "lose",
		"hasCompletedOnboarding": true,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if err := s.users.SetProfileID(ctx, user.ID, profile.ID); err != nil {
		respondError(c, err)
		return
	}

	if err := s.generateHistory(ctx, user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Demo account seeded",
		"email":    demoEmail,
		"password": demoPassword,
		"streak":   user.Streak,
	})
}

func (s *SeedController) purgeExisting(ctx context.Context) error {
	existing, err := s.users.FindByEmail(ctx, demoEmail)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := s.logs.DeleteByUser(ctx, existing.ID); err != nil {
		return err
	}
	if err := s.profiles.DeleteByUser(ctx, existing.ID); err != nil {
		return err
	}
	if err := s.weights.DeleteByUser(ctx, existing.ID); err != nil {
		return err
	}
	return s.users.DeleteByEmail(ctx, demoEmail)
}

// generateHistory writes 30 days of logs: a simulated weight-loss curve,
// goal-clearing intake on the streak tail and spotty intake before it.
func (s *SeedController) generateHistory(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	simWeight := 85.0

	for i := demoDays - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(utils.ISODateLayout)

		// Trend down slightly on average
		simWeight += rand.Float64()*0.4 - 0.3

		var calories, water float64
		if i < demoStreakDays {
			calories = 3200
			water = 3000
		} else {
			calories = 1500 + float64(rand.Intn(1000))
			water = 1000 + float64(rand.Intn(1200))
		}

		weight := float64(int(simWeight*10)) / 10
		mood := "happy"
		sleep := float64(7 + rand.Intn(2))

		_, err := s.logs.Upsert(ctx, user.ID, date, models.DailyLogUpdate{
			Weight:   &weight,
			Calories: &calories,
			Water:    &water,
			Mood:     &mood,
			Sleep:    &sleep,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
