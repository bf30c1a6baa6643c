package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/overstimulation/wellness-dashboard-team-project/apperror"
	"github.com/overstimulation/wellness-dashboard-team-project/models"
	"github.com/overstimulation/wellness-dashboard-team-project/utils"
)

// DailyLogStore is the persistence surface the service needs for log
// entries.
type DailyLogStore interface {
	Upsert(ctx context.Context, userID primitive.ObjectID, date string, update models.DailyLogUpdate) (*models.DailyLog, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.DailyLog, error)
	Delete(ctx context.Context, entryID primitive.ObjectID) (*models.DailyLog, error)
}

// UserStreakStore reads and conditionally writes the streak fields on the
// user record.
type UserStreakStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateStreakIf(ctx context.Context, userID primitive.ObjectID, priorLastLogDate string, streak int, lastLogDate string) (bool, error)
}

// StreakNotifier receives streak-change events. Implementations must not
// block; delivery is best effort.
type StreakNotifier interface {
	NotifyStreakUpdated(event models.StreakEvent)
}

// streakUpdateAttempts bounds the optimistic-concurrency retry loop when a
// concurrent submission wins the conditional streak write.
const streakUpdateAttempts = 3

// DailyLogService orchestrates the per-submission unit of work: upsert the
// entry, evaluate the streak, persist a changed streak. At most one write to
// the log store and one to the user record happen per call.
type DailyLogService struct {
	logs     DailyLogStore
	users    UserStreakStore
	notifier StreakNotifier
}

func NewDailyLogService(logs DailyLogStore, users UserStreakStore, notifier StreakNotifier) *DailyLogService {
	return &DailyLogService{logs: logs, users: users, notifier: notifier}
}

// SubmitDailyLogInput is one day's submission. Nil numeric fields are left
// untouched in the stored entry; the goal fields feed only the streak
// evaluation and are never persisted on the entry.
type SubmitDailyLogInput struct {
	UserID       primitive.ObjectID
	Date         string // YYYY-MM-DD
	DisplayDate  string
	Weight       *float64
	Calories     *float64
	Water        *float64
	Mood         *string
	Sleep        *float64
	Notes        *string
	CaloriesGoal *float64
	WaterGoal    *float64
}

// SubmitDailyLog upserts the entry and, when a goal judgment is possible,
// advances the user's streak. The returned entry is the merged record; the
// streak update is a side effect read separately by clients.
func (s *DailyLogService) SubmitDailyLog(ctx context.Context, in SubmitDailyLogInput) (*models.DailyLog, error) {
	if in.UserID.IsZero() {
		return nil, apperror.ValidationFailed("userId", "userId is required")
	}
	if in.Date == "" {
		return nil, apperror.ValidationFailed("date", "date is required")
	}
	if _, err := utils.ParseISODate(in.Date); err != nil {
		return nil, apperror.ValidationFailed("date", err.Error())
	}

	entry, err := s.logs.Upsert(ctx, in.UserID, in.Date, models.DailyLogUpdate{
		DisplayDate: in.DisplayDate,
		Weight:      in.Weight,
		Calories:    in.Calories,
		Water:       in.Water,
		Mood:        in.Mood,
		Sleep:       in.Sleep,
		Notes:       in.Notes,
	})
	if err != nil {
		return nil, err
	}

	// The streak path only runs when a judgment is possible. A failure here
	// leaves the entry correctly persisted; the next qualifying submission
	// recovers the streak per the gap rules.
	if in.Calories != nil && in.Water != nil && in.CaloriesGoal != nil && in.WaterGoal != nil {
		if err := s.updateStreak(ctx, in); err != nil {
			log.Printf("streak update failed for user %s date %s: %v", in.UserID.Hex(), in.Date, err)
		}
	}

	return entry, nil
}

// updateStreak runs the read-evaluate-write cycle. The write is conditional
// on the lastLogDate observed during the read, so a lost race re-reads and
// re-evaluates instead of clobbering a concurrent update.
func (s *DailyLogService) updateStreak(ctx context.Context, in SubmitDailyLogInput) error {
	for attempt := 0; attempt < streakUpdateAttempts; attempt++ {
		user, err := s.users.FindByID(ctx, in.UserID)
		if err != nil {
			return err
		}

		result, err := EvaluateStreak(in.Date, in.Calories, in.CaloriesGoal, in.Water, in.WaterGoal, user.Streak, user.LastLogDate)
		if err != nil {
			return err
		}
		if !result.Changed {
			return nil
		}

		ok, err := s.users.UpdateStreakIf(ctx, in.UserID, user.LastLogDate, result.Streak, result.LastLogDate)
		if err != nil {
			return err
		}
		if ok {
			if s.notifier != nil {
				s.notifier.NotifyStreakUpdated(models.StreakEvent{
					Type:        "streak_updated",
					UserID:      in.UserID.Hex(),
					Streak:      result.Streak,
					LastLogDate: result.LastLogDate,
					Timestamp:   time.Now(),
				})
			}
			return nil
		}
		// Another submission advanced the streak first; re-read and retry.
	}
	return apperror.Conflict("streak", "concurrent update, retries exhausted")
}

// ListHistory returns the user's logs, newest first.
func (s *DailyLogService) ListHistory(ctx context.Context, userID primitive.ObjectID) ([]models.DailyLog, error) {
	if userID.IsZero() {
		return nil, apperror.ValidationFailed("userId", "userId is required")
	}
	return s.logs.ListByUser(ctx, userID)
}

// DeleteEntry removes one log entry by id.
func (s *DailyLogService) DeleteEntry(ctx context.Context, entryID primitive.ObjectID) (*models.DailyLog, error) {
	if entryID.IsZero() {
		return nil, apperror.ValidationFailed("entryId", "entryId is required")
	}
	return s.logs.Delete(ctx, entryID)
}
