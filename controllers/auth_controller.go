package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/overstimulation/wellness-dashboard-team-project/models"
	"github.com/overstimulation/wellness-dashboard-team-project/store"
	"github.com/overstimulation/wellness-dashboard-team-project/utils"
)

// AuthController handles registration, login and account deletion.
type AuthController struct {
	users    *store.UserStore
	profiles *store.ProfileStore
	logs     *store.DailyLogStore
	weights  *store.WeightEntryStore
}

func NewAuthController(users *store.UserStore, profiles *store.ProfileStore, logs *store.DailyLogStore, weights *store.WeightEntryStore) *AuthController {
	return &AuthController{users: users, profiles: profiles, logs: logs, weights: weights}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register creates the account and its empty profile document.
func (a *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email, name, and password are required", "details": err.Error()})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
	}
	if err := a.users.Create(ctx, user); err != nil {
		respondError(c, err)
		return
	}

	profile, err := a.profiles.Upsert(ctx, user.ID, bson.M{"user": user.ID})
	if err != nil {
		respondError(c, err)
		return
	}
	if err := a.users.SetProfileID(ctx, user.ID, profile.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues a JWT.
func (a *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	user, err := a.users.FindByEmail(ctx, req.Email)
	if err != nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateJWTToken(user.ID.Hex(), user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": token,
		"user": gin.H{
			"id":     user.ID.Hex(),
			"email":  user.Email,
			"name":   user.Name,
			"streak": user.Streak,
		},
	})
}

// DeleteAccount removes the user and everything they own: profile, daily
// logs and weight entries.
func (a *AuthController) DeleteAccount(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	if err := a.users.Delete(ctx, userID); err != nil {
		respondError(c, err)
		return
	}
	if err := a.profiles.DeleteByUser(ctx, userID); err != nil {
		respondError(c, err)
		return
	}
	if err := a.logs.DeleteByUser(ctx, userID); err != nil {
		respondError(c, err)
		return
	}
	if err := a.weights.DeleteByUser(ctx, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
