package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultLogLimit caps log retrieval when the caller supplies no limit.
const DefaultLogLimit = 500

// DateDisplayLayout is the human-readable date shape used in responses,
// e.g. "Sun Jan 15 2023".
const DateDisplayLayout = "Mon Jan 02 2006"

// dateInputLayouts are the accepted shapes for date, from and to inputs,
// tried in order.
var dateInputLayouts = []string{time.DateOnly, time.RFC3339}

// LogResult is the outcome of a log retrieval: the owning user plus the
// filtered, capped entries.
type LogResult struct {
	User    *domain.User
	Entries []domain.Exercise
}

// --- Service Interface ---
type ExerciseService interface {
	AddExercise(ctx context.Context, userID primitive.ObjectID, description string, duration int, date string) (*domain.User, *domain.Exercise, error)
	GetLog(ctx context.Context, userID primitive.ObjectID, from, to, limit string) (*LogResult, error)
}

// --- Service Implementation ---

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
	now          func() time.Time
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(userRepo repository.UserRepository, exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		now:          time.Now,
	}
}

// AddExercise creates an exercise entry for an existing user. The date
// defaults to the current service-clock time when empty. Returns the owning
// user together with the stored exercise.
func (s *exerciseService) AddExercise(ctx context.Context, userID primitive.ObjectID, description string, duration int, date string) (*domain.User, *domain.Exercise, error) {
	if description == "" {
		return nil, nil, fmt.Errorf("%w: description is required", ErrValidationFailed)
	}
	if duration <= 0 {
		return nil, nil, fmt.Errorf("%w: duration must be a positive number of minutes", ErrValidationFailed)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	when := s.now().UTC()
	if date != "" {
		when, err = ParseDate(date)
		if err != nil {
			return nil, nil, err
		}
	}

	exercise := &domain.Exercise{
		UserID:      user.ID,
		Description: description,
		Duration:    duration,
		Date:        when,
	}

	exerciseID, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, nil, err
	}
	exercise.ID = exerciseID

	return user, exercise, nil
}

// GetLog retrieves a user's exercise log, constrained by the optional
// inclusive from/to date bounds and capped at limit (DefaultLogLimit when
// empty).
func (s *exerciseService) GetLog(ctx context.Context, userID primitive.ObjectID, from, to, limit string) (*LogResult, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	filter := repository.LogFilter{Limit: DefaultLogLimit}

	if from != "" {
		t, err := ParseDate(from)
		if err != nil {
			return nil, err
		}
		filter.From = &t
	}
	if to != "" {
		t, err := ParseDate(to)
		if err != nil {
			return nil, err
		}
		filter.To = &t
	}
	if limit != "" {
		n, err := parseLimit(limit)
		if err != nil {
			return nil, err
		}
		filter.Limit = n
	}

	entries, err := s.exerciseRepo.GetByUserID(ctx, user.ID, filter)
	if err != nil {
		return nil, err
	}

	return &LogResult{User: user, Entries: entries}, nil
}

// ParseDate parses a date input, accepting "2006-01-02" and RFC 3339.
// Day-only inputs resolve to UTC midnight, which keeps the from/to bounds
// inclusive of the named day.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrValidationFailed, value)
}

// FormatDate renders a date the way responses expose it, e.g. "Sun Jan 15 2023".
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateDisplayLayout)
}

func parseLimit(value string) (int64, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: limit must be a positive integer", ErrValidationFailed)
	}
	return n, nil
}
