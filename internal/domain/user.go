package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender as collected during onboarding; used for diet target estimation.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// User represents an app user together with their onboarding metrics.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON

	Gender              Gender        `bson:"gender,omitempty" json:"gender,omitempty"`
	Age                 int           `bson:"age,omitempty" json:"age,omitempty"`
	WeightKg            float64       `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	HeightCm            float64       `bson:"heightCm,omitempty" json:"heightCm,omitempty"`
	ActivityLevel       ActivityLevel `bson:"activityLevel,omitempty" json:"activityLevel,omitempty"`
	DietaryRestrictions []string      `bson:"dietaryRestrictions,omitempty" json:"dietaryRestrictions,omitempty"`

	Preferences Preferences `bson:"preferences" json:"preferences"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
