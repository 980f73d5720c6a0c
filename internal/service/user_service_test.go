package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateUser(t *testing.T) {
	repo := &memUserRepo{}
	svc := NewUserService(repo)

	user, err := svc.CreateUser(context.Background(), "fcc_test")
	assert.NoError(t, err)
	assert.Equal(t, "fcc_test", user.Username)
	assert.NotEqual(t, primitive.NilObjectID, user.ID)

	// A subsequent listing includes exactly that pair.
	users, err := svc.ListUsers(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, user.ID, users[0].ID)
	assert.Equal(t, "fcc_test", users[0].Username)
}

func TestCreateUser_EmptyUsername(t *testing.T) {
	svc := NewUserService(&memUserRepo{})

	_, err := svc.CreateUser(context.Background(), "")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestCreateUser_DuplicatesAllowed(t *testing.T) {
	svc := NewUserService(&memUserRepo{})

	first, err := svc.CreateUser(context.Background(), "twin")
	assert.NoError(t, err)
	second, err := svc.CreateUser(context.Background(), "twin")
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestListUsers_Empty(t *testing.T) {
	svc := NewUserService(&memUserRepo{})

	users, err := svc.ListUsers(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListUsers_Idempotent(t *testing.T) {
	repo := &memUserRepo{}
	svc := NewUserService(repo)
	_, _ = svc.CreateUser(context.Background(), "a")
	_, _ = svc.CreateUser(context.Background(), "b")

	first, err := svc.ListUsers(context.Background())
	assert.NoError(t, err)
	second, err := svc.ListUsers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetUserByID_NotFound(t *testing.T) {
	svc := NewUserService(&memUserRepo{})

	_, err := svc.GetUserByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateUser_RepoFailure(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewUserService(&memUserRepo{err: boom})

	_, err := svc.CreateUser(context.Background(), "fcc_test")
	assert.ErrorIs(t, err, boom)
}
