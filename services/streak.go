package services

import (
	"github.com/overstimulation/wellness-dashboard-team-project/utils"
)

// StreakReason tags the outcome of a streak evaluation so callers can tell
// apart "nothing to judge" from "already counted" from a real transition.
type StreakReason string

const (
	// Changed outcomes.
	StreakStarted  StreakReason = "started"
	StreakExtended StreakReason = "extended"
	StreakReset    StreakReason = "reset"

	// Unchanged outcomes.
	SkipNoGoalData     StreakReason = "no_goal_data"
	SkipGoalNotMet     StreakReason = "goal_not_met"
	SkipAlreadyCounted StreakReason = "already_counted"
	SkipBackdated      StreakReason = "backdated"
)

// StreakResult is the evaluator's outcome. When Changed is false, Streak and
// LastLogDate echo the prior state untouched.
type StreakResult struct {
	Streak      int
	LastLogDate string
	Changed     bool
	Reason      StreakReason
}

// EvaluateStreak decides the new streak state for a goal submission on the
// given date. All date arithmetic is relative to the submitted date in UTC,
// never to the server clock, so the result does not depend on when the
// request arrives.
//
// priorLastLogDate is empty when no day has ever been counted.
func EvaluateStreak(date string, calories, caloriesGoal, water, waterGoal *float64, priorStreak int, priorLastLogDate string) (StreakResult, error) {
	unchanged := StreakResult{
		Streak:      priorStreak,
		LastLogDate: priorLastLogDate,
		Changed:     false,
	}

	if _, err := utils.ParseISODate(date); err != nil {
		return StreakResult{}, err
	}

	// No judgment without both goals and both consumption figures.
	if calories == nil || water == nil || caloriesGoal == nil || waterGoal == nil {
		unchanged.Reason = SkipNoGoalData
		return unchanged, nil
	}

	if *calories < *caloriesGoal || *water < *waterGoal {
		unchanged.Reason = SkipGoalNotMet
		return unchanged, nil
	}

	// Re-submitting an already-counted day must not increment twice.
	if date == priorLastLogDate {
		unchanged.Reason = SkipAlreadyCounted
		return unchanged, nil
	}

	yesterday, err := utils.PreviousDay(date)
	if err != nil {
		return StreakResult{}, err
	}

	switch {
	case priorLastLogDate == "":
		return StreakResult{Streak: 1, LastLogDate: date, Changed: true, Reason: StreakStarted}, nil
	case priorLastLogDate == yesterday:
		return StreakResult{Streak: priorStreak + 1, LastLogDate: date, Changed: true, Reason: StreakExtended}, nil
	case priorLastLogDate < yesterday:
		// Gap in coverage: the streak restarts at this date.
		return StreakResult{Streak: 1, LastLogDate: date, Changed: true, Reason: StreakReset}, nil
	default:
		// priorLastLogDate > yesterday: the submission is backdated relative
		// to the streak already recorded. Never regress.
		unchanged.Reason = SkipBackdated
		return unchanged, nil
	}
}
