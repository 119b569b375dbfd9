package domain

// ExerciseRecord is a single entry from the external exercise catalog.
// Immutable; the catalog is a read-only data source for plan generation.
type ExerciseRecord struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	PrimaryMuscles   []string `json:"primaryMuscles"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Equipment        string   `json:"equipment"` // "none" / "body only" mean no equipment needed
	Category         string   `json:"category"`  // e.g. "strength", "cardio", "stretching"
	Level            string   `json:"level"`     // "beginner", "intermediate", "expert"
	Instructions     []string `json:"instructions"`
	Images           []string `json:"images,omitempty"` // object keys of demo media, if any
}

// TargetsPrimary reports whether the exercise lists muscle as a primary target.
func (e ExerciseRecord) TargetsPrimary(muscle string) bool {
	for _, m := range e.PrimaryMuscles {
		if m == muscle {
			return true
		}
	}
	return false
}

// TargetsSecondary reports whether the exercise lists muscle as a secondary target.
func (e ExerciseRecord) TargetsSecondary(muscle string) bool {
	for _, m := range e.SecondaryMuscles {
		if m == muscle {
			return true
		}
	}
	return false
}
