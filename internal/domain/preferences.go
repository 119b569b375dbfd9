package domain

// Goal is the user's primary training goal, chosen during onboarding.
type Goal string

const (
	GoalWeightLoss  Goal = "weight loss"
	GoalMuscleGain  Goal = "muscle gain"
	GoalStrength    Goal = "strength"
	GoalEndurance   Goal = "endurance"
	GoalFlexibility Goal = "flexibility"
)

// Level is the user's self-reported experience level.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelExpert       Level = "expert"
)

// ActivityLevel describes how active the user is outside of training.
// Used for diet target estimation.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Preferences holds the onboarding choices that drive plan generation.
// Read-only input to the plan generator.
type Preferences struct {
	Goal        Goal     `bson:"goal" json:"goal"`
	Level       Level    `bson:"level" json:"level"`
	DaysPerWeek int      `bson:"daysPerWeek" json:"daysPerWeek"` // 3, 4 or 5
	Equipment   []string `bson:"equipment" json:"equipment"`     // e.g. "Dumbbell", "Barbell"
}

// HasEquipment reports whether the given equipment name is in the user's set.
// Comparison is done on the raw catalog strings.
func (p Preferences) HasEquipment(name string) bool {
	for _, e := range p.Equipment {
		if e == name {
			return true
		}
	}
	return false
}
