package domain

import "time"

// Streak tracks the user's run of completed workout days. One document per
// user; the sync engine resets it to zero when a workout is missed, recording
// the start of the week in which the reset happened.
type Streak struct {
	UserID          string    `bson:"_id" json:"userId"`
	Count           int       `bson:"count" json:"count"`
	StreakResetDate string    `bson:"streakResetDate,omitempty" json:"streakResetDate,omitempty"` // YYYY-MM-DD
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
