package service

import (
	"testing"

	"quiz_portal_backend/internal/model"
	"quiz_portal_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	user := &model.User{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
		Role:     model.Student,
	}
	require.NoError(t, env.auth.Register(user))
	assert.NotEqual(t, "s3cret", user.Password, "password must be stored hashed")

	token, logged, err := env.auth.Login("alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)

	claims, err := util.ParseJWT(token, testConfig().JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.Student, claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	env.createUser(t, "alice", model.Student)

	err := env.auth.Register(&model.User{
		Name:     "alice2",
		Email:    "alice@example.com",
		Password: "pw",
		Role:     model.Student,
	})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestRegisterDuplicateName(t *testing.T) {
	env := newTestEnv(t)

	env.createUser(t, "alice", model.Student)

	err := env.auth.Register(&model.User{
		Name:     "alice",
		Email:    "other@example.com",
		Password: "pw",
		Role:     model.Student,
	})
	assert.ErrorIs(t, err, util.ErrNameTaken)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)

	err := env.auth.Register(&model.User{
		Name:     "eve",
		Email:    "eve@example.com",
		Password: "pw",
		Role:     model.UserRole("superuser"),
	})
	assert.ErrorIs(t, err, util.ErrInvalidRole)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	env.createUser(t, "alice", model.Student)

	_, _, err := env.auth.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.auth.Login("ghost@example.com", "pw")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}
