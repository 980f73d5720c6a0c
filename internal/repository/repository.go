package repository

import (
	"alcyxob/exercise-tracker/internal/domain"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// LogFilter describes the optional constraints on a user's exercise log.
// From and To are inclusive calendar-day bounds; a nil bound is absent.
type LogFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int64 // Result cap; callers must set a positive value.
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
}

// ExerciseRepository defines the interface for interacting with exercise data.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID, filter LogFilter) ([]domain.Exercise, error)
}
