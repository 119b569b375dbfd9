package domain

import "time"

// Weekday names as stored in session documents, Sunday first to match the
// mobile client's calendar component.
type DayOfWeek string

const (
	Sunday    DayOfWeek = "Sunday"
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
)

// DayOfWeekFromTime maps a time.Weekday to the stored representation.
func DayOfWeekFromTime(wd time.Weekday) DayOfWeek {
	switch wd {
	case time.Sunday:
		return Sunday
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	default:
		return Saturday
	}
}

// WorkoutSession is one scheduled day of a workout plan, repeated weekly for
// the plan's duration. Exactly one document exists per (userId, sessionId);
// the session id is a stable function of the plan day-key, so regenerating a
// plan updates sessions in place instead of duplicating them.
type WorkoutSession struct {
	SessionID     string    `bson:"_id" json:"sessionId"`
	UserID        string    `bson:"userId" json:"userId"`
	SessionName   string    `bson:"sessionName" json:"sessionName"`
	ExerciseIDs   []string  `bson:"exerciseIds" json:"exerciseIds"`
	ExerciseNames []string  `bson:"exerciseNames" json:"exerciseNames"`
	WorkoutPlanID string    `bson:"workoutPlanId" json:"workoutPlanId"`
	DayOfWeek     DayOfWeek `bson:"dayOfWeek" json:"dayOfWeek"`
	Dates         []string  `bson:"dates" json:"dates"` // YYYY-MM-DD, one per plan week
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
