// Package diet derives daily calorie and macro targets from the user's
// onboarding metrics. The estimate is intentionally simple: Mifflin-St Jeor
// BMR, an activity multiplier, then a goal adjustment.
package diet

import "pulsefit/fitness-app/internal/domain"

// Targets is the daily intake recommendation shown on the profile screen.
type Targets struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"proteinG"`
	CarbsG   float64 `json:"carbsG"`
	FatG     float64 `json:"fatG"`
}

var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityVeryActive: 1.725,
}

// goal adjustments in kcal relative to maintenance
var goalAdjustments = map[domain.Goal]float64{
	domain.GoalWeightLoss: -500,
	domain.GoalMuscleGain: 300,
	domain.GoalStrength:   150,
}

// protein grams per kg of body weight, by goal
var proteinPerKg = map[domain.Goal]float64{
	domain.GoalWeightLoss: 2.0,
	domain.GoalMuscleGain: 1.8,
	domain.GoalStrength:   1.8,
}

const (
	defaultProteinPerKg = 1.4
	fatShareOfCalories  = 0.25
	minCalories         = 1200
)

// TargetsFor computes the daily targets for a user. Missing metrics fall back
// to a middle-of-the-road estimate instead of failing: onboarding allows
// skipping the body-metrics step.
func TargetsFor(u *domain.User) Targets {
	weight := u.WeightKg
	if weight <= 0 {
		weight = 70
	}
	height := u.HeightCm
	if height <= 0 {
		height = 170
	}
	age := u.Age
	if age <= 0 {
		age = 30
	}

	bmr := 10*weight + 6.25*height - 5*float64(age)
	switch u.Gender {
	case domain.GenderFemale:
		bmr -= 161
	default:
		bmr += 5
	}

	multiplier, ok := activityMultipliers[u.ActivityLevel]
	if !ok {
		multiplier = activityMultipliers[domain.ActivityModerate]
	}
	calories := bmr*multiplier + goalAdjustments[u.Preferences.Goal]
	if calories < minCalories {
		calories = minCalories
	}

	perKg, ok := proteinPerKg[u.Preferences.Goal]
	if !ok {
		perKg = defaultProteinPerKg
	}
	protein := perKg * weight
	fat := calories * fatShareOfCalories / 9
	carbs := (calories - protein*4 - fat*9) / 4
	if carbs < 0 {
		carbs = 0
	}

	return Targets{
		Calories: int(calories + 0.5),
		ProteinG: round1(protein),
		CarbsG:   round1(carbs),
		FatG:     round1(fat),
	}
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
