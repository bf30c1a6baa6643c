package models

import "time"

// StreakEvent is broadcast to connected dashboard clients when a user's
// streak changes.
type StreakEvent struct {
	Type        string    `json:"type"` // "streak_updated"
	UserID      string    `json:"userId"`
	Streak      int       `json:"streak"`
	LastLogDate string    `json:"lastLogDate"`
	Timestamp   time.Time `json:"timestamp"`
}
