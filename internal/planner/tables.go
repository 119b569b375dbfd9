package planner

import (
	"time"

	"pulsefit/fitness-app/internal/domain"
)

// maxExercisesPerDay is the policy cap on exercises in a single session.
const maxExercisesPerDay = 6

// defaultPlanWeeks is the fallback duration for (goal, level) pairs missing
// from the lookup table. Kept as an explicit policy constant.
const defaultPlanWeeks = 4

// TrainingParams is the per-set prescription for a goal. Flexibility plans use
// a time-hold convention: HoldSeconds is set and the rep range is unused.
type TrainingParams struct {
	Sets        int
	RepsLow     int
	RepsHigh    int
	RestSeconds int
	HoldSeconds int
}

// goalCategories maps a training goal to the catalog categories it draws from.
var goalCategories = map[domain.Goal][]string{
	domain.GoalWeightLoss:  {"cardio", "plyometrics", "strength"},
	domain.GoalMuscleGain:  {"strength", "powerlifting", "strongman"},
	domain.GoalStrength:    {"strength", "powerlifting", "olympic weightlifting"},
	domain.GoalEndurance:   {"cardio", "plyometrics"},
	domain.GoalFlexibility: {"stretching"},
}

var goalParams = map[domain.Goal]TrainingParams{
	domain.GoalWeightLoss:  {Sets: 3, RepsLow: 12, RepsHigh: 15, RestSeconds: 45},
	domain.GoalMuscleGain:  {Sets: 4, RepsLow: 8, RepsHigh: 12, RestSeconds: 90},
	domain.GoalStrength:    {Sets: 5, RepsLow: 3, RepsHigh: 5, RestSeconds: 180},
	domain.GoalEndurance:   {Sets: 3, RepsLow: 15, RepsHigh: 20, RestSeconds: 60},
	domain.GoalFlexibility: {Sets: 3, HoldSeconds: 30},
}

// acceptedLevels is the level-priority cascade: more experienced users also
// get exercises rated below their level, never above.
var acceptedLevels = map[domain.Level][]string{
	domain.LevelBeginner:     {"beginner"},
	domain.LevelIntermediate: {"intermediate", "beginner"},
	domain.LevelExpert:       {"expert", "intermediate", "beginner"},
}

// planWeeks is the (goal, level) duration lookup. Pairs not listed here fall
// back to defaultPlanWeeks.
var planWeeks = map[domain.Goal]map[domain.Level]int{
	domain.GoalMuscleGain: {
		domain.LevelBeginner:     8,
		domain.LevelIntermediate: 12,
		domain.LevelExpert:       16,
	},
	domain.GoalStrength: {
		domain.LevelBeginner:     8,
		domain.LevelIntermediate: 12,
		domain.LevelExpert:       16,
	},
	domain.GoalWeightLoss: {
		domain.LevelBeginner:     8,
		domain.LevelIntermediate: 8,
		domain.LevelExpert:       12,
	},
	domain.GoalEndurance: {
		domain.LevelBeginner:     8,
		domain.LevelIntermediate: 8,
		domain.LevelExpert:       12,
	},
	// Flexibility intentionally unlisted: falls back to defaultPlanWeeks.
}

// splitDay is one day-key of a muscle-group split.
type splitDay struct {
	Key     string
	Name    string
	Muscles []string
}

// splits maps daysPerWeek to its muscle-group split, in day-index order.
// Muscle names follow the catalog's vocabulary.
var splits = map[int][]splitDay{
	3: {
		{Key: "Day_1_push", Name: "Push Day", Muscles: []string{"chest", "shoulders", "triceps"}},
		{Key: "Day_2_pull", Name: "Pull Day", Muscles: []string{"lats", "middle back", "biceps"}},
		{Key: "Day_3_legs", Name: "Leg Day", Muscles: []string{"quadriceps", "hamstrings", "glutes", "calves"}},
	},
	4: {
		{Key: "Day_1_upper", Name: "Upper Body", Muscles: []string{"chest", "lats", "shoulders"}},
		{Key: "Day_2_lower", Name: "Lower Body", Muscles: []string{"quadriceps", "hamstrings", "calves"}},
		{Key: "Day_3_arms", Name: "Arms", Muscles: []string{"biceps", "triceps", "forearms"}},
		{Key: "Day_4_core", Name: "Core & Posterior", Muscles: []string{"abdominals", "lower back", "glutes"}},
	},
	5: {
		{Key: "Day_1_chest", Name: "Chest Day", Muscles: []string{"chest"}},
		{Key: "Day_2_back", Name: "Back Day", Muscles: []string{"lats", "middle back", "lower back"}},
		{Key: "Day_3_shoulders", Name: "Shoulder Day", Muscles: []string{"shoulders", "traps"}},
		{Key: "Day_4_legs", Name: "Leg Day", Muscles: []string{"quadriceps", "hamstrings", "glutes", "calves"}},
		{Key: "Day_5_arms", Name: "Arm Day", Muscles: []string{"biceps", "triceps", "abdominals"}},
	},
}

// splitWeekdays fixes the weekday of each day-index for a given daysPerWeek.
var splitWeekdays = map[int][]time.Weekday{
	3: {time.Monday, time.Wednesday, time.Friday},
	4: {time.Monday, time.Tuesday, time.Thursday, time.Friday},
	5: {time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
}
