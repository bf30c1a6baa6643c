package utils

import (
	"errors"
	"math"
)

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return math.Round(bmi*10) / 10, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obesity"
	}
}

// CalculateBMR uses the Mifflin-St Jeor equation. Height in cm, weight in
// kg, age in years. Sex is "male" or "female".
func CalculateBMR(heightCm, weightKg float64, age int, sex string) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 || age <= 0 {
		return 0, errors.New("height, weight and age must be positive")
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == "female" {
		bmr -= 161
	} else {
		bmr += 5
	}
	return math.Round(bmr), nil
}

// ActivityMultiplier maps an activity level to its TDEE factor.
func ActivityMultiplier(level string) float64 {
	switch level {
	case "sedentary":
		return 1.2
	case "light":
		return 1.375
	case "moderate":
		return 1.55
	case "active":
		return 1.725
	case "very_active":
		return 1.9
	default:
		return 1.2
	}
}

// CalorieTarget derives the daily calorie goal from BMR, activity level and
// goal type: TDEE minus 300 kcal to lose, plus 300 to gain.
func CalorieTarget(bmr float64, activityLevel, goalType string) float64 {
	tdee := bmr * ActivityMultiplier(activityLevel)
	switch goalType {
	case "lose":
		tdee -= 300
	case "gain":
		tdee += 300
	}
	return math.Round(tdee)
}

// WaterTargetMl recommends 35 ml of water per kilogram of body weight.
func WaterTargetMl(weightKg float64) float64 {
	if weightKg <= 0 {
		return 0
	}
	return math.Round(weightKg * 35)
}
