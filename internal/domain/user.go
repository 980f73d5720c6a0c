package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registrant who owns zero or more exercises.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username  string             `bson:"username" json:"username"` // Not unique; duplicates are allowed.
	CreatedAt time.Time          `bson:"createdAt" json:"-"`
}
