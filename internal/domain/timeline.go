package domain

// CompletionStatus of a dated timeline entry.
type CompletionStatus string

const (
	StatusIncomplete CompletionStatus = "incomplete"
	StatusComplete   CompletionStatus = "complete"
)

// EntryInstructions is the per-exercise prescription shown to the user.
type EntryInstructions struct {
	Sets int `bson:"sets" json:"sets"`
	Reps int `bson:"reps" json:"reps"` // hold seconds for flexibility plans
}

// DatedExerciseEntry is one exercise on one calendar day of the user's
// timeline. The timeline is the collection of these entries spanning the
// active plan; the sync engine rewrites Date when the schedule rolls forward.
type DatedExerciseEntry struct {
	ID           string            `bson:"_id" json:"id"`
	UserID       string            `bson:"userId" json:"userId"`
	Date         string            `bson:"date" json:"date"` // YYYY-MM-DD, local calendar day
	ExerciseName string            `bson:"exerciseName" json:"exerciseName"`
	Instructions EntryInstructions `bson:"instructions" json:"instructions"`
	Status       CompletionStatus  `bson:"completionStatus" json:"completionStatus"`
	WorkoutTitle string            `bson:"workoutTitle" json:"workoutTitle"`
	MediaKey     string            `bson:"mediaKey,omitempty" json:"mediaKey,omitempty"` // S3 object key of demo media
}
