package utils

import "testing"

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(180, 78)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 78 / 1.8^2 = 24.07...
	if bmi != 24.1 {
		t.Errorf("expected BMI 24.1, got %v", bmi)
	}

	for _, tc := range []struct{ h, w float64 }{{0, 70}, {180, 0}, {30, 70}, {180, 500}} {
		if _, err := CalculateBMI(tc.h, tc.w); err == nil {
			t.Errorf("CalculateBMI(%v, %v) expected an error", tc.h, tc.w)
		}
	}
}

func TestBMICategory(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{17.0, "Underweight"},
		{22.0, "Normal weight"},
		{27.5, "Overweight"},
		{32.0, "Obesity"},
	}
	for _, tc := range cases {
		if got := BMICategory(tc.bmi); got != tc.want {
			t.Errorf("BMICategory(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}

func TestCalculateBMR(t *testing.T) {
	// Mifflin-St Jeor: 10*85 + 6.25*180 - 5*28 + 5 = 1840 for a male.
	bmr, err := CalculateBMR(180, 85, 28, "male")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bmr != 1840 {
		t.Errorf("expected BMR 1840, got %v", bmr)
	}

	// Female variant subtracts 161 instead of adding 5.
	bmr, err = CalculateBMR(165, 60, 30, "female")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 600 + 1031.25 - 150 - 161 = 1320.25 -> 1320
	if bmr != 1320 {
		t.Errorf("expected BMR 1320, got %v", bmr)
	}

	if _, err := CalculateBMR(180, 85, 0, "male"); err == nil {
		t.Error("expected an error for zero age")
	}
}

func TestCalorieTarget(t *testing.T) {
	// 1840 * 1.55 = 2852; lose goal shaves 300.
	if got := CalorieTarget(1840, "moderate", "lose"); got != 2552 {
		t.Errorf("expected 2552 for moderate/lose, got %v", got)
	}
	if got := CalorieTarget(1840, "moderate", "gain"); got != 3152 {
		t.Errorf("expected 3152 for moderate/gain, got %v", got)
	}
	if got := CalorieTarget(2000, "sedentary", "maintain"); got != 2400 {
		t.Errorf("expected 2400 for sedentary/maintain, got %v", got)
	}
	// Unknown activity level falls back to sedentary.
	if got := CalorieTarget(2000, "extreme", "maintain"); got != 2400 {
		t.Errorf("expected 2400 for unknown level, got %v", got)
	}
}

func TestWaterTargetMl(t *testing.T) {
	if got := WaterTargetMl(78); got != 2730 {
		t.Errorf("expected 2730 ml for 78 kg, got %v", got)
	}
	if got := WaterTargetMl(0); got != 0 {
		t.Errorf("expected 0 for non-positive weight, got %v", got)
	}
}
