package diet

import (
	"testing"

	"pulsefit/fitness-app/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestTargetsFor_MuscleGainMale(t *testing.T) {
	u := &domain.User{
		Gender:        domain.GenderMale,
		Age:           25,
		WeightKg:      80,
		HeightCm:      180,
		ActivityLevel: domain.ActivityModerate,
		Preferences:   domain.Preferences{Goal: domain.GoalMuscleGain},
	}

	got := TargetsFor(u)

	// BMR = 10*80 + 6.25*180 - 5*25 + 5 = 1805; TDEE = 1805*1.55 = 2797.75; +300 surplus.
	assert.Equal(t, 3098, got.Calories)
	assert.Equal(t, 144.0, got.ProteinG) // 1.8 g/kg
	assert.Greater(t, got.CarbsG, got.FatG)
}

func TestTargetsFor_WeightLossDeficit(t *testing.T) {
	base := &domain.User{
		Gender:        domain.GenderFemale,
		Age:           40,
		WeightKg:      65,
		HeightCm:      165,
		ActivityLevel: domain.ActivityLight,
	}
	maintenance := TargetsFor(base)

	cutting := *base
	cutting.Preferences.Goal = domain.GoalWeightLoss
	got := TargetsFor(&cutting)

	assert.Equal(t, maintenance.Calories-500, got.Calories)
	assert.Equal(t, 130.0, got.ProteinG) // 2.0 g/kg while cutting
}

func TestTargetsFor_MissingMetricsUseDefaults(t *testing.T) {
	got := TargetsFor(&domain.User{})

	assert.Greater(t, got.Calories, minCalories)
	assert.Greater(t, got.ProteinG, 0.0)
	assert.Greater(t, got.FatG, 0.0)
}

func TestTargetsFor_CalorieFloor(t *testing.T) {
	u := &domain.User{
		Gender:        domain.GenderFemale,
		Age:           70,
		WeightKg:      45,
		HeightCm:      150,
		ActivityLevel: domain.ActivitySedentary,
		Preferences:   domain.Preferences{Goal: domain.GoalWeightLoss},
	}

	got := TargetsFor(u)
	assert.Equal(t, minCalories, got.Calories)
}
