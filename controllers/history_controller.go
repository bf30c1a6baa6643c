package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/overstimulation/wellness-dashboard-team-project/services"
)

// HistoryController exposes the daily-log operations: list, submit (upsert +
// streak), delete.
type HistoryController struct {
	service *services.DailyLogService
}

func NewHistoryController(service *services.DailyLogService) *HistoryController {
	return &HistoryController{service: service}
}

// List returns all of the caller's log entries, newest date first.
func (h *HistoryController) List(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	entries, err := h.service.ListHistory(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

type submitLogRequest struct {
	Date         string   `json:"date" binding:"required"`
	DisplayDate  string   `json:"displayDate"`
	Weight       *float64 `json:"weight"`
	Calories     *float64 `json:"calories"`
	Water        *float64 `json:"water"`
	Mood         *string  `json:"mood"`
	Sleep        *float64 `json:"sleep"`
	Notes        *string  `json:"notes"`
	CaloriesGoal *float64 `json:"caloriesGoal"`
	WaterGoal    *float64 `json:"waterGoal"`
}

// Submit upserts the day's entry and runs the streak side effect.
func (h *HistoryController) Submit(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)

	var req submitLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	entry, err := h.service.SubmitDailyLog(ctx, services.SubmitDailyLogInput{
		UserID:       userID,
		Date:         req.Date,
		DisplayDate:  req.DisplayDate,
		Weight:       req.Weight,
		Calories:     req.Calories,
		Water:        req.Water,
		Mood:         req.Mood,
		Sleep:        req.Sleep,
		Notes:        req.Notes,
		CaloriesGoal: req.CaloriesGoal,
		WaterGoal:    req.WaterGoal,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

type deleteEntryRequest struct {
	EntryID string `json:"entryId" binding:"required"`
}

// Delete removes one log entry by id.
func (h *HistoryController) Delete(c *gin.Context) {
	var req deleteEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entryId required"})
		return
	}

	entryID, err := primitive.ObjectIDFromHex(req.EntryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entryId"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	deleted, err := h.service.DeleteEntry(ctx, entryID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted", "entry": deleted})
}
