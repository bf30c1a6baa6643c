package services

import (
	"testing"
)

func fp(v float64) *float64 {
	return &v
}

func TestStreakIncrementOnConsecutiveDay(t *testing.T) {
	res, err := EvaluateStreak("2024-01-11", fp(2500), fp(2400), fp(2100), fp(2000), 5, "2024-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Changed {
		t.Fatalf("expected a changed streak, got reason %s", res.Reason)
	}
	if res.Streak != 6 {
		t.Errorf("expected streak 6, got %d", res.Streak)
	}
	if res.LastLogDate != "2024-01-11" {
		t.Errorf("expected lastLogDate 2024-01-11, got %s", res.LastLogDate)
	}
	if res.Reason != StreakExtended {
		t.Errorf("expected reason %s, got %s", StreakExtended, res.Reason)
	}
}

func TestStreakResetOnGap(t *testing.T) {
	res, err := EvaluateStreak("2024-01-13", fp(2500), fp(2400), fp(2100), fp(2000), 5, "2024-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Changed {
		t.Fatalf("expected a changed streak, got reason %s", res.Reason)
	}
	if res.Streak != 1 {
		t.Errorf("expected streak reset to 1, got %d", res.Streak)
	}
	if res.Reason != StreakReset {
		t.Errorf("expected reason %s, got %s", StreakReset, res.Reason)
	}
}

func TestStreakUnaffectedByAlreadyCountedDate(t *testing.T) {
	res, err := EvaluateStreak("2024-01-11", fp(2500), fp(2400), fp(2100), fp(2000), 6, "2024-01-11")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Changed {
		t.Fatal("resubmitting a counted date must not change the streak")
	}
	if res.Streak != 6 {
		t.Errorf("expected streak to stay 6, got %d", res.Streak)
	}
	if res.Reason != SkipAlreadyCounted {
		t.Errorf("expected reason %s, got %s", SkipAlreadyCounted, res.Reason)
	}
}

func TestBackdatedEntryDoesNotRegressStreak(t *testing.T) {
	res, err := EvaluateStreak("2024-01-05", fp(2500), fp(2400), fp(2100), fp(2000), 6, "2024-01-11")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Changed {
		t.Fatal("backdated entry must not change the streak")
	}
	if res.Streak != 6 || res.LastLogDate != "2024-01-11" {
		t.Errorf("expected state (6, 2024-01-11) preserved, got (%d, %s)", res.Streak, res.LastLogDate)
	}
	if res.Reason != SkipBackdated {
		t.Errorf("expected reason %s, got %s", SkipBackdated, res.Reason)
	}
}

func TestNoJudgmentWithoutGoals(t *testing.T) {
	cases := []struct {
		name                                   string
		calories, caloriesGoal, water, waterGoal *float64
	}{
		{"no goals at all", fp(9999), nil, fp(9999), nil},
		{"missing calories goal", fp(9999), nil, fp(9999), fp(2000)},
		{"missing water goal", fp(9999), fp(2400), fp(9999), nil},
		{"missing calories", nil, fp(2400), fp(9999), fp(2000)},
		{"missing water", fp(9999), fp(2400), nil, fp(2000)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := EvaluateStreak("2024-01-11", tc.calories, tc.caloriesGoal, tc.water, tc.waterGoal, 5, "2024-01-10")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Changed {
				t.Fatal("expected no judgment without complete goal data")
			}
			if res.Reason != SkipNoGoalData {
				t.Errorf("expected reason %s, got %s", SkipNoGoalData, res.Reason)
			}
			if res.Streak != 5 || res.LastLogDate != "2024-01-10" {
				t.Errorf("prior state must be untouched, got (%d, %s)", res.Streak, res.LastLogDate)
			}
		})
	}
}

func TestGoalNotMetLeavesStreakUnchanged(t *testing.T) {
	cases := []struct {
		name            string
		calories, water float64
	}{
		{"calories short", 2399, 2100},
		{"water short", 2500, 1999},
		{"both short", 100, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := EvaluateStreak("2024-01-11", fp(tc.calories), fp(2400), fp(tc.water), fp(2000), 5, "2024-01-10")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Changed {
				t.Fatal("unmet goals must not change the streak")
			}
			if res.Reason != SkipGoalNotMet {
				t.Errorf("expected reason %s, got %s", SkipGoalNotMet, res.Reason)
			}
		})
	}
}

func TestFirstEverLogStartsStreak(t *testing.T) {
	res, err := EvaluateStreak("2024-01-11", fp(2500), fp(2400), fp(2100), fp(2000), 0, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Changed || res.Streak != 1 {
		t.Errorf("expected first counted day to set streak 1, got changed=%v streak=%d", res.Changed, res.Streak)
	}
	if res.LastLogDate != "2024-01-11" {
		t.Errorf("expected lastLogDate 2024-01-11, got %s", res.LastLogDate)
	}
	if res.Reason != StreakStarted {
		t.Errorf("expected reason %s, got %s", StreakStarted, res.Reason)
	}
}

func TestExactGoalValuesCount(t *testing.T) {
	// Meeting the goal exactly qualifies; the comparison is >=.
	res, err := EvaluateStreak("2024-01-11", fp(2400), fp(2400), fp(2000), fp(2000), 5, "2024-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Changed || res.Streak != 6 {
		t.Errorf("exact goal values must count, got changed=%v streak=%d", res.Changed, res.Streak)
	}
}

func TestStreakAcrossMonthBoundary(t *testing.T) {
	res, err := EvaluateStreak("2024-03-01", fp(2500), fp(2400), fp(2100), fp(2000), 3, "2024-02-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Changed || res.Streak != 4 {
		t.Errorf("leap-day to March 1st is consecutive, got changed=%v streak=%d", res.Changed, res.Streak)
	}
}

func TestInvalidDateIsAnError(t *testing.T) {
	if _, err := EvaluateStreak("11-01-2024", fp(2500), fp(2400), fp(2100), fp(2000), 5, "2024-01-10"); err == nil {
		t.Fatal("expected an error for a non-ISO date")
	}
}
