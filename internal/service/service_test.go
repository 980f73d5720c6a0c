package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes used by the service tests. They honor the same
// contracts as the mongo implementations: ErrNotFound for absent users,
// empty slices for empty results, date bounds inclusive, results capped at
// the filter limit and sorted by date ascending.

type memUserRepo struct {
	users []domain.User
	err   error
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	r.users = append(r.users, *user)
	return user.ID, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetAll(_ context.Context) ([]domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []domain.User{}
	out = append(out, r.users...)
	return out, nil
}

type memExerciseRepo struct {
	exercises []domain.Exercise
	err       error
}

func (r *memExerciseRepo) Create(_ context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	exercise.ID = primitive.NewObjectID()
	exercise.CreatedAt = time.Now().UTC()
	r.exercises = append(r.exercises, *exercise)
	return exercise.ID, nil
}

func (r *memExerciseRepo) GetByUserID(_ context.Context, userID primitive.ObjectID, filter repository.LogFilter) ([]domain.Exercise, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []domain.Exercise{}
	for _, e := range r.exercises {
		if e.UserID != userID {
			continue
		}
		if filter.From != nil && e.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.Date.After(*filter.To) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if filter.Limit > 0 && int64(len(out)) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}
